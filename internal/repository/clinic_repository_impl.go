package repository

import (
	"context"
	"encoding/json"

	"maternacare/internal/domain/entity"
	domainRepo "maternacare/internal/domain/repository"
	"maternacare/internal/infrastructure/kv"

	"github.com/pkg/errors"
)

type clinicRepository struct {
	store kv.Store
	locks *keyMutex
}

func NewClinicRepository(store kv.Store) domainRepo.ClinicRepository {
	return &clinicRepository{store: store, locks: newKeyMutex()}
}

func (r *clinicRepository) Find(ctx context.Context, userID string) (*entity.ClinicProfile, error) {
	var profile entity.ClinicProfile
	found, err := getJSON(ctx, r.store, clinicKey(userID), &profile)
	if err != nil || !found {
		return nil, err
	}
	return &profile, nil
}

func (r *clinicRepository) Save(ctx context.Context, profile *entity.ClinicProfile) error {
	return setJSON(ctx, r.store, clinicKey(profile.UserID), profile)
}

func (r *clinicRepository) Delete(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, clinicKey(userID))
}

func (r *clinicRepository) All(ctx context.Context) ([]*entity.ClinicProfile, error) {
	entries, err := r.store.GetByPrefix(ctx, clinicKeyPrefix)
	if err != nil {
		return nil, err
	}
	profiles := make([]*entity.ClinicProfile, 0, len(entries))
	for _, e := range entries {
		var profile entity.ClinicProfile
		if err := json.Unmarshal(e.Value, &profile); err != nil {
			return nil, errors.Wrapf(err, "decode %s", e.Key)
		}
		profiles = append(profiles, &profile)
	}
	return profiles, nil
}

func (r *clinicRepository) PendingIDs(ctx context.Context) ([]string, error) {
	return getIDList(ctx, r.store, pendingClinicsKey)
}

func (r *clinicRepository) AddPending(ctx context.Context, userID string) error {
	mu := r.locks.Lock(pendingClinicsKey)
	defer mu.Unlock()
	return appendToList(ctx, r.store, pendingClinicsKey, userID)
}

func (r *clinicRepository) RemovePending(ctx context.Context, userID string) error {
	mu := r.locks.Lock(pendingClinicsKey)
	defer mu.Unlock()
	return removeFromList(ctx, r.store, pendingClinicsKey, userID)
}

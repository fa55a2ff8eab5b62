package repository

import (
	"context"

	"maternacare/internal/domain/entity"
	domainRepo "maternacare/internal/domain/repository"
	"maternacare/internal/infrastructure/kv"
)

type motherRepository struct {
	store kv.Store
	locks *keyMutex
}

func NewMotherRepository(store kv.Store) domainRepo.MotherRepository {
	return &motherRepository{store: store, locks: newKeyMutex()}
}

func (r *motherRepository) Find(ctx context.Context, userID string) (*entity.MotherProfile, error) {
	var profile entity.MotherProfile
	found, err := getJSON(ctx, r.store, motherKey(userID), &profile)
	if err != nil || !found {
		return nil, err
	}
	return &profile, nil
}

func (r *motherRepository) Save(ctx context.Context, profile *entity.MotherProfile) error {
	return setJSON(ctx, r.store, motherKey(profile.UserID), profile)
}

func (r *motherRepository) Delete(ctx context.Context, userID string) error {
	if err := r.store.Delete(ctx, measurementsKey(userID)); err != nil {
		return err
	}
	return r.store.Delete(ctx, motherKey(userID))
}

func (r *motherRepository) Measurements(ctx context.Context, userID string) ([]entity.Measurement, error) {
	var measurements []entity.Measurement
	if _, err := getJSON(ctx, r.store, measurementsKey(userID), &measurements); err != nil {
		return nil, err
	}
	return measurements, nil
}

func (r *motherRepository) AppendMeasurement(ctx context.Context, userID string, m entity.Measurement) error {
	key := measurementsKey(userID)
	mu := r.locks.Lock(key)
	defer mu.Unlock()

	var measurements []entity.Measurement
	if _, err := getJSON(ctx, r.store, key, &measurements); err != nil {
		return err
	}
	return setJSON(ctx, r.store, key, append(measurements, m))
}

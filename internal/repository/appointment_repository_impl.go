package repository

import (
	"context"
	"encoding/json"

	"maternacare/internal/domain/entity"
	domainRepo "maternacare/internal/domain/repository"
	"maternacare/internal/infrastructure/kv"

	"github.com/pkg/errors"
)

type appointmentRepository struct {
	store kv.Store
	locks *keyMutex
}

func NewAppointmentRepository(store kv.Store) domainRepo.AppointmentRepository {
	return &appointmentRepository{store: store, locks: newKeyMutex()}
}

func (r *appointmentRepository) Create(ctx context.Context, appt *entity.Appointment) error {
	if err := setJSON(ctx, r.store, appointmentKey(appt.ID), appt); err != nil {
		return err
	}
	if err := r.appendOwner(ctx, motherApptsKey(appt.MotherID), appt.ID); err != nil {
		return err
	}
	return r.appendOwner(ctx, clinicApptsKey(appt.ClinicID), appt.ID)
}

func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	var appt entity.Appointment
	found, err := getJSON(ctx, r.store, appointmentKey(id), &appt)
	if err != nil || !found {
		return nil, err
	}
	return &appt, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appt *entity.Appointment) error {
	return setJSON(ctx, r.store, appointmentKey(appt.ID), appt)
}

// Delete prunes both owner lists before removing the record. If a prune
// fails the record is left in place, so the system never reports an
// appointment deleted while an index still references it.
func (r *appointmentRepository) Delete(ctx context.Context, appt *entity.Appointment) error {
	if err := r.removeOwner(ctx, motherApptsKey(appt.MotherID), appt.ID); err != nil {
		return err
	}
	if err := r.removeOwner(ctx, clinicApptsKey(appt.ClinicID), appt.ID); err != nil {
		return err
	}
	return r.store.Delete(ctx, appointmentKey(appt.ID))
}

func (r *appointmentRepository) FindByMother(ctx context.Context, motherID string) ([]*entity.Appointment, error) {
	return r.findByOwner(ctx, motherApptsKey(motherID))
}

func (r *appointmentRepository) FindByClinic(ctx context.Context, clinicID string) ([]*entity.Appointment, error) {
	return r.findByOwner(ctx, clinicApptsKey(clinicID))
}

func (r *appointmentRepository) All(ctx context.Context) ([]*entity.Appointment, error) {
	entries, err := r.store.GetByPrefix(ctx, appointmentKeyPrefix)
	if err != nil {
		return nil, err
	}
	appts := make([]*entity.Appointment, 0, len(entries))
	for _, e := range entries {
		var appt entity.Appointment
		if err := json.Unmarshal(e.Value, &appt); err != nil {
			return nil, errors.Wrapf(err, "decode %s", e.Key)
		}
		appts = append(appts, &appt)
	}
	return appts, nil
}

func (r *appointmentRepository) findByOwner(ctx context.Context, listKey string) ([]*entity.Appointment, error) {
	ids, err := getIDList(ctx, r.store, listKey)
	if err != nil {
		return nil, err
	}
	appts := make([]*entity.Appointment, 0, len(ids))
	for _, id := range ids {
		appt, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if appt != nil {
			appts = append(appts, appt)
		}
	}
	return appts, nil
}

func (r *appointmentRepository) appendOwner(ctx context.Context, listKey, id string) error {
	mu := r.locks.Lock(listKey)
	defer mu.Unlock()
	return appendToList(ctx, r.store, listKey, id)
}

func (r *appointmentRepository) removeOwner(ctx context.Context, listKey, id string) error {
	mu := r.locks.Lock(listKey)
	defer mu.Unlock()
	return removeFromList(ctx, r.store, listKey, id)
}

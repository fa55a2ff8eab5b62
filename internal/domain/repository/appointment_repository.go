package repository

import (
	"context"

	"maternacare/internal/domain/entity"
)

// AppointmentRepository manages appointment records together with the two
// owner lists that reference them. Create appends the id to both lists;
// Delete prunes both before removing the record, so an id never dangles in
// an index after a successful delete.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *entity.Appointment) error
	FindByID(ctx context.Context, id string) (*entity.Appointment, error)
	Update(ctx context.Context, appt *entity.Appointment) error
	Delete(ctx context.Context, appt *entity.Appointment) error
	FindByMother(ctx context.Context, motherID string) ([]*entity.Appointment, error)
	FindByClinic(ctx context.Context, clinicID string) ([]*entity.Appointment, error)
	All(ctx context.Context) ([]*entity.Appointment, error)
}

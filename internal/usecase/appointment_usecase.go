package usecase

import (
	"context"
	"fmt"
	"time"

	"maternacare/internal/delivery/dto"
	"maternacare/internal/domain/entity"
	"maternacare/internal/domain/repository"
	"maternacare/pkg/apperr"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AppointmentUsecase interface {
	List(ctx context.Context, caller *entity.User) ([]*entity.Appointment, error)
	Create(ctx context.Context, caller *entity.User, req *dto.CreateAppointmentRequest) (*entity.Appointment, error)
	Update(ctx context.Context, caller *entity.User, id string, req *dto.UpdateAppointmentRequest) (*entity.Appointment, error)
	Delete(ctx context.Context, caller *entity.User, id string) error
}

type appointmentUsecase struct {
	log          *logrus.Logger
	appointments repository.AppointmentRepository
	clinics      repository.ClinicRepository
	notifier     Notifier
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointments repository.AppointmentRepository,
	clinics repository.ClinicRepository,
	notifier Notifier,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:          log,
		appointments: appointments,
		clinics:      clinics,
		notifier:     notifier,
	}
}

func (u *appointmentUsecase) List(ctx context.Context, caller *entity.User) ([]*entity.Appointment, error) {
	var (
		appts []*entity.Appointment
		err   error
	)
	switch caller.Role {
	case entity.RoleMother:
		appts, err = u.appointments.FindByMother(ctx, caller.ID)
	case entity.RoleClinic:
		appts, err = u.appointments.FindByClinic(ctx, caller.ID)
	case entity.RoleAdmin:
		appts, err = u.appointments.All(ctx)
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to get appointments", err)
	}
	return appts, nil
}

func (u *appointmentUsecase) Create(ctx context.Context, caller *entity.User, req *dto.CreateAppointmentRequest) (*entity.Appointment, error) {
	clinic, err := u.clinics.Find(ctx, req.ClinicID)
	if err != nil {
		u.log.Warnf("Failed to load clinic profile: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to create appointment", err)
	}
	if clinic == nil {
		return nil, apperr.NotFoundf("Clinic not found")
	}

	appt := &entity.Appointment{
		ID:        uuid.NewString(),
		MotherID:  caller.ID,
		ClinicID:  req.ClinicID,
		Date:      req.Date,
		Time:      req.Time,
		Type:      req.Type,
		Reason:    req.Reason,
		Status:    entity.AppointmentStatusPending,
		CreatedAt: time.Now(),
	}
	if err := u.appointments.Create(ctx, appt); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to create appointment", err)
	}

	if err := u.notifier.Notify(ctx, req.ClinicID,
		"New appointment request",
		fmt.Sprintf("New appointment request for %s at %s", req.Date, req.Time),
		entity.NotificationTypeAppointment,
	); err != nil {
		return nil, err
	}

	return appt, nil
}

func (u *appointmentUsecase) Update(ctx context.Context, caller *entity.User, id string, req *dto.UpdateAppointmentRequest) (*entity.Appointment, error) {
	appt, err := u.appointments.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to update appointment", err)
	}
	if appt == nil {
		return nil, apperr.NotFoundf("Appointment not found")
	}

	// Only a clinic or an admin may act on an appointment.
	if caller.IsMother() {
		return nil, apperr.Forbiddenf("Forbidden")
	}

	statusChanged := false
	if req.Date != nil {
		appt.Date = *req.Date
	}
	if req.Time != nil {
		appt.Time = *req.Time
	}
	if req.Type != nil {
		appt.Type = *req.Type
	}
	if req.Reason != nil {
		appt.Reason = *req.Reason
	}
	if req.Notes != nil {
		appt.Notes = *req.Notes
	}
	if req.Status != nil && entity.AppointmentStatus(*req.Status) != appt.Status {
		appt.Status = entity.AppointmentStatus(*req.Status)
		statusChanged = true
	}
	appt.UpdatedAt = time.Now()

	if err := u.appointments.Update(ctx, appt); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to update appointment", err)
	}

	if statusChanged {
		if err := u.notifier.Notify(ctx, appt.MotherID,
			"Appointment updated",
			fmt.Sprintf("Your appointment status: %s", appt.Status),
			entity.NotificationTypeAppointment,
		); err != nil {
			return nil, err
		}
	}

	return appt, nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, caller *entity.User, id string) error {
	appt, err := u.appointments.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return apperr.Wrap(apperr.Unexpected, "failed to delete appointment", err)
	}
	if appt == nil {
		return apperr.NotFoundf("Appointment not found")
	}

	// A mother may only delete her own appointment.
	if caller.IsMother() && appt.MotherID != caller.ID {
		return apperr.Forbiddenf("Forbidden")
	}

	if err := u.appointments.Delete(ctx, appt); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return apperr.Wrap(apperr.Unexpected, "failed to delete appointment", err)
	}
	return nil
}

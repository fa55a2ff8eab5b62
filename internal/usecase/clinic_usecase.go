package usecase

import (
	"context"
	"time"

	"maternacare/internal/converter"
	"maternacare/internal/delivery/dto"
	"maternacare/internal/domain/entity"
	"maternacare/internal/domain/repository"
	"maternacare/pkg/apperr"

	"github.com/sirupsen/logrus"
)

type ClinicUsecase interface {
	ListClinics(ctx context.Context) ([]*dto.ClinicResponse, error)
	ListPatients(ctx context.Context, caller *entity.User) ([]*dto.UserResponse, error)
}

type clinicUsecase struct {
	log          *logrus.Logger
	users        repository.UserRepository
	mothers      repository.MotherRepository
	clinics      repository.ClinicRepository
	appointments repository.AppointmentRepository
}

func NewClinicUsecase(
	log *logrus.Logger,
	users repository.UserRepository,
	mothers repository.MotherRepository,
	clinics repository.ClinicRepository,
	appointments repository.AppointmentRepository,
) ClinicUsecase {
	return &clinicUsecase{
		log:          log,
		users:        users,
		mothers:      mothers,
		clinics:      clinics,
		appointments: appointments,
	}
}

// ListClinics returns the public directory of approved clinics.
func (u *clinicUsecase) ListClinics(ctx context.Context) ([]*dto.ClinicResponse, error) {
	profiles, err := u.clinics.All(ctx)
	if err != nil {
		u.log.Warnf("Failed to list clinic profiles: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to get clinics", err)
	}

	clinics := make([]*dto.ClinicResponse, 0, len(profiles))
	for _, profile := range profiles {
		if !profile.Approved {
			continue
		}
		user, err := u.users.FindByID(ctx, profile.UserID)
		if err != nil {
			u.log.Warnf("Failed to load clinic user: %+v", err)
			return nil, apperr.Wrap(apperr.Unexpected, "failed to get clinics", err)
		}
		if user == nil {
			continue
		}
		clinics = append(clinics, converter.ClinicToResponse(user))
	}
	return clinics, nil
}

// ListPatients returns every mother who has an appointment with the calling
// clinic, deduplicated and enriched with pregnancy data.
func (u *clinicUsecase) ListPatients(ctx context.Context, caller *entity.User) ([]*dto.UserResponse, error) {
	appts, err := u.appointments.FindByClinic(ctx, caller.ID)
	if err != nil {
		u.log.Warnf("Failed to list clinic appointments: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to get patients", err)
	}

	seen := make(map[string]bool)
	patients := make([]*dto.UserResponse, 0, len(appts))
	for _, appt := range appts {
		if seen[appt.MotherID] {
			continue
		}
		seen[appt.MotherID] = true

		user, err := u.users.FindByID(ctx, appt.MotherID)
		if err != nil {
			u.log.Warnf("Failed to load patient: %+v", err)
			return nil, apperr.Wrap(apperr.Unexpected, "failed to get patients", err)
		}
		if user == nil {
			continue
		}
		profile, err := u.mothers.Find(ctx, appt.MotherID)
		if err != nil {
			u.log.Warnf("Failed to load patient profile: %+v", err)
			return nil, apperr.Wrap(apperr.Unexpected, "failed to get patients", err)
		}
		patients = append(patients, converter.EnrichMother(converter.UserToResponse(user), profile, time.Now()))
	}
	return patients, nil
}

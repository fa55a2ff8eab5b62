package usecase

import (
	"context"
	"time"

	"maternacare/internal/delivery/dto"
	"maternacare/internal/domain/entity"
	"maternacare/internal/domain/repository"
	"maternacare/pkg/apperr"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PregnancyUsecase interface {
	Get(ctx context.Context, caller *entity.User, motherID string) (*dto.PregnancyResponse, error)
	AddMeasurement(ctx context.Context, caller *entity.User, motherID string, data map[string]any) (*entity.Measurement, error)
}

type pregnancyUsecase struct {
	log          *logrus.Logger
	mothers      repository.MotherRepository
	appointments repository.AppointmentRepository
}

func NewPregnancyUsecase(
	log *logrus.Logger,
	mothers repository.MotherRepository,
	appointments repository.AppointmentRepository,
) PregnancyUsecase {
	return &pregnancyUsecase{log: log, mothers: mothers, appointments: appointments}
}

func (u *pregnancyUsecase) Get(ctx context.Context, caller *entity.User, motherID string) (*dto.PregnancyResponse, error) {
	// Mothers may only view their own record; clinics and admins may view any.
	if caller.IsMother() && caller.ID != motherID {
		return nil, apperr.Forbiddenf("Forbidden")
	}

	profile, err := u.mothers.Find(ctx, motherID)
	if err != nil {
		u.log.Warnf("Failed to load mother profile: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to get pregnancy data", err)
	}
	if profile == nil {
		return nil, apperr.NotFoundf("Mother data not found")
	}

	measurements, err := u.mothers.Measurements(ctx, motherID)
	if err != nil {
		u.log.Warnf("Failed to load measurements: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to get pregnancy data", err)
	}
	appointments, err := u.appointments.FindByMother(ctx, motherID)
	if err != nil {
		u.log.Warnf("Failed to load appointments: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to get pregnancy data", err)
	}

	if measurements == nil {
		measurements = []entity.Measurement{}
	}

	return &dto.PregnancyResponse{
		UserID:         profile.UserID,
		LMP:            profile.LMP,
		DueDate:        profile.DueDate,
		PregnancyStage: entity.PregnancyStage(profile.LMP, time.Now()),
		HasBaby:        profile.HasBaby,
		BabyBirthDate:  profile.BabyBirthDate,
		Measurements:   measurements,
		Appointments:   appointments,
	}, nil
}

func (u *pregnancyUsecase) AddMeasurement(ctx context.Context, caller *entity.User, motherID string, data map[string]any) (*entity.Measurement, error) {
	// A mother records only her own measurements; clinics and admins may
	// record for any mother.
	if caller.IsMother() && caller.ID != motherID {
		return nil, apperr.Forbiddenf("Forbidden")
	}

	profile, err := u.mothers.Find(ctx, motherID)
	if err != nil {
		u.log.Warnf("Failed to load mother profile: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to add measurement", err)
	}
	if profile == nil {
		return nil, apperr.NotFoundf("Mother data not found")
	}

	m := entity.Measurement{
		ID:         uuid.NewString(),
		Data:       data,
		RecordedBy: caller.ID,
		RecordedAt: time.Now(),
	}
	if err := u.mothers.AppendMeasurement(ctx, motherID, m); err != nil {
		u.log.Warnf("Failed to append measurement: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to add measurement", err)
	}
	return &m, nil
}

package repository

import (
	"context"

	"maternacare/internal/domain/entity"
)

// MotherRepository manages mother profiles and their append-only
// measurement lists.
type MotherRepository interface {
	Find(ctx context.Context, userID string) (*entity.MotherProfile, error)
	Save(ctx context.Context, profile *entity.MotherProfile) error
	Delete(ctx context.Context, userID string) error
	Measurements(ctx context.Context, userID string) ([]entity.Measurement, error)
	AppendMeasurement(ctx context.Context, userID string, m entity.Measurement) error
}

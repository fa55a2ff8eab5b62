package repository

import (
	"context"

	"maternacare/internal/domain/entity"
)

// ClinicRepository manages clinic profiles and the system-wide pending
// approval list.
type ClinicRepository interface {
	Find(ctx context.Context, userID string) (*entity.ClinicProfile, error)
	Save(ctx context.Context, profile *entity.ClinicProfile) error
	Delete(ctx context.Context, userID string) error
	All(ctx context.Context) ([]*entity.ClinicProfile, error)
	PendingIDs(ctx context.Context) ([]string, error)
	AddPending(ctx context.Context, userID string) error
	RemovePending(ctx context.Context, userID string) error
}

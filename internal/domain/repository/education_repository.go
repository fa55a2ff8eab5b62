package repository

import (
	"context"

	"maternacare/internal/domain/entity"
)

// EducationRepository manages education articles and the per-category
// index. Delete removes the id from its category list; Update moves the id
// between category lists when the category changed.
type EducationRepository interface {
	Create(ctx context.Context, content *entity.Education) error
	FindByID(ctx context.Context, id string) (*entity.Education, error)
	Update(ctx context.Context, content *entity.Education, previousCategory string) error
	Delete(ctx context.Context, content *entity.Education) error
	FindByCategory(ctx context.Context, category string) ([]*entity.Education, error)
	All(ctx context.Context) ([]*entity.Education, error)
}

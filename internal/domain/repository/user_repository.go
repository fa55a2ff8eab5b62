package repository

import (
	"context"

	"maternacare/internal/domain/entity"
)

// UserRepository manages user records and the by-email index. Create and
// Delete keep both in sync; lookups return (nil, nil) / ("", nil) when the
// entity is absent.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindIDByEmail(ctx context.Context, email string) (string, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, user *entity.User) error
	All(ctx context.Context) ([]*entity.User, error)
}

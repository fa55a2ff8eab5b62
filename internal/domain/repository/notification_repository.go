package repository

import (
	"context"

	"maternacare/internal/domain/entity"
)

// NotificationRepository manages notification records and the per-user
// index list.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	FindByID(ctx context.Context, id string) (*entity.Notification, error)
	Update(ctx context.Context, n *entity.Notification) error
	FindByUser(ctx context.Context, userID string) ([]*entity.Notification, error)
}

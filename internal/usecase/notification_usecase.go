package usecase

import (
	"context"
	"sort"
	"time"

	"maternacare/internal/domain/entity"
	"maternacare/internal/domain/repository"
	"maternacare/pkg/apperr"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Notifier is the notification fanout: creating the record and appending
// it to the recipient's index. It is invoked synchronously by the other
// usecases; a fanout failure fails the primary operation.
type Notifier interface {
	Notify(ctx context.Context, userID, title, message string, typ entity.NotificationType) error
}

type NotificationUsecase interface {
	Notifier
	List(ctx context.Context, caller *entity.User) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, caller *entity.User, id string) (*entity.Notification, error)
}

type notificationUsecase struct {
	log           *logrus.Logger
	notifications repository.NotificationRepository
}

func NewNotificationUsecase(log *logrus.Logger, notifications repository.NotificationRepository) NotificationUsecase {
	return &notificationUsecase{log: log, notifications: notifications}
}

func (u *notificationUsecase) Notify(ctx context.Context, userID, title, message string, typ entity.NotificationType) error {
	n := &entity.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: time.Now(),
	}
	if err := u.notifications.Create(ctx, n); err != nil {
		u.log.Warnf("Failed to create notification: %+v", err)
		return apperr.Wrap(apperr.Unexpected, "failed to create notification", err)
	}
	return nil
}

func (u *notificationUsecase) List(ctx context.Context, caller *entity.User) ([]*entity.Notification, error) {
	notifications, err := u.notifications.FindByUser(ctx, caller.ID)
	if err != nil {
		u.log.Warnf("Failed to list notifications: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to get notifications", err)
	}
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (u *notificationUsecase) MarkRead(ctx context.Context, caller *entity.User, id string) (*entity.Notification, error) {
	n, err := u.notifications.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find notification: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to get notification", err)
	}
	if n == nil {
		return nil, apperr.NotFoundf("Notification not found")
	}
	if n.UserID != caller.ID {
		return nil, apperr.Forbiddenf("Forbidden")
	}

	now := time.Now()
	n.Read = true
	n.ReadAt = &now
	if err := u.notifications.Update(ctx, n); err != nil {
		u.log.Warnf("Failed to update notification: %+v", err)
		return nil, apperr.Wrap(apperr.Unexpected, "failed to mark notification as read", err)
	}
	return n, nil
}

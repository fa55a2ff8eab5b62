package repository

import (
	"context"

	"maternacare/internal/domain/entity"
	domainRepo "maternacare/internal/domain/repository"
	"maternacare/internal/infrastructure/kv"
)

type notificationRepository struct {
	store kv.Store
	locks *keyMutex
}

func NewNotificationRepository(store kv.Store) domainRepo.NotificationRepository {
	return &notificationRepository{store: store, locks: newKeyMutex()}
}

func (r *notificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	if err := setJSON(ctx, r.store, notificationKey(n.ID), n); err != nil {
		return err
	}
	key := userNotifsKey(n.UserID)
	mu := r.locks.Lock(key)
	defer mu.Unlock()
	return appendToList(ctx, r.store, key, n.ID)
}

func (r *notificationRepository) FindByID(ctx context.Context, id string) (*entity.Notification, error) {
	var n entity.Notification
	found, err := getJSON(ctx, r.store, notificationKey(id), &n)
	if err != nil || !found {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) Update(ctx context.Context, n *entity.Notification) error {
	return setJSON(ctx, r.store, notificationKey(n.ID), n)
}

func (r *notificationRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Notification, error) {
	ids, err := getIDList(ctx, r.store, userNotifsKey(userID))
	if err != nil {
		return nil, err
	}
	notifications := make([]*entity.Notification, 0, len(ids))
	for _, id := range ids {
		n, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if n != nil {
			notifications = append(notifications, n)
		}
	}
	return notifications, nil
}

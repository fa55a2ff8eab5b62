package repository

import (
	"context"
	"strings"

	"maternacare/internal/domain/entity"
	domainRepo "maternacare/internal/domain/repository"
	"maternacare/internal/infrastructure/kv"
)

type userRepository struct {
	store kv.Store
}

func NewUserRepository(store kv.Store) domainRepo.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := setJSON(ctx, r.store, userKey(user.ID), user); err != nil {
		return err
	}
	return setJSON(ctx, r.store, emailIndexKey(user.Email), user.ID)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	found, err := getJSON(ctx, r.store, userKey(id), &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindIDByEmail(ctx context.Context, email string) (string, error) {
	var id string
	found, err := getJSON(ctx, r.store, emailIndexKey(email), &id)
	if err != nil || !found {
		return "", err
	}
	return id, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return setJSON(ctx, r.store, userKey(user.ID), user)
}

func (r *userRepository) Delete(ctx context.Context, user *entity.User) error {
	if err := r.store.Delete(ctx, emailIndexKey(user.Email)); err != nil {
		return err
	}
	return r.store.Delete(ctx, userKey(user.ID))
}

func (r *userRepository) All(ctx context.Context) ([]*entity.User, error) {
	entries, err := r.store.GetByPrefix(ctx, userKeyPrefix)
	if err != nil {
		return nil, err
	}
	users := make([]*entity.User, 0, len(entries))
	for _, e := range entries {
		// The email index shares the user: prefix; skip it.
		if strings.HasPrefix(e.Key, emailIndexPrefix) {
			continue
		}
		var user entity.User
		found, err := getJSON(ctx, r.store, e.Key, &user)
		if err != nil {
			return nil, err
		}
		if found {
			users = append(users, &user)
		}
	}
	return users, nil
}

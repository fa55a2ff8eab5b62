package repository

import (
	"context"
	"encoding/json"
	"strings"

	"maternacare/internal/domain/entity"
	domainRepo "maternacare/internal/domain/repository"
	"maternacare/internal/infrastructure/kv"

	"github.com/pkg/errors"
)

type educationRepository struct {
	store kv.Store
	locks *keyMutex
}

func NewEducationRepository(store kv.Store) domainRepo.EducationRepository {
	return &educationRepository{store: store, locks: newKeyMutex()}
}

func (r *educationRepository) Create(ctx context.Context, content *entity.Education) error {
	if err := setJSON(ctx, r.store, educationKey(content.ID), content); err != nil {
		return err
	}
	if content.Category == "" {
		return nil
	}
	key := categoryIndexKey(content.Category)
	mu := r.locks.Lock(key)
	defer mu.Unlock()
	return appendToList(ctx, r.store, key, content.ID)
}

func (r *educationRepository) FindByID(ctx context.Context, id string) (*entity.Education, error) {
	var content entity.Education
	found, err := getJSON(ctx, r.store, educationKey(id), &content)
	if err != nil || !found {
		return nil, err
	}
	return &content, nil
}

func (r *educationRepository) Update(ctx context.Context, content *entity.Education, previousCategory string) error {
	if err := setJSON(ctx, r.store, educationKey(content.ID), content); err != nil {
		return err
	}
	if previousCategory == content.Category {
		return nil
	}
	if previousCategory != "" {
		key := categoryIndexKey(previousCategory)
		mu := r.locks.Lock(key)
		err := removeFromList(ctx, r.store, key, content.ID)
		mu.Unlock()
		if err != nil {
			return err
		}
	}
	if content.Category != "" {
		key := categoryIndexKey(content.Category)
		mu := r.locks.Lock(key)
		err := appendToList(ctx, r.store, key, content.ID)
		mu.Unlock()
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *educationRepository) Delete(ctx context.Context, content *entity.Education) error {
	if content.Category != "" {
		key := categoryIndexKey(content.Category)
		mu := r.locks.Lock(key)
		err := removeFromList(ctx, r.store, key, content.ID)
		mu.Unlock()
		if err != nil {
			return err
		}
	}
	return r.store.Delete(ctx, educationKey(content.ID))
}

func (r *educationRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Education, error) {
	ids, err := getIDList(ctx, r.store, categoryIndexKey(category))
	if err != nil {
		return nil, err
	}
	items := make([]*entity.Education, 0, len(ids))
	for _, id := range ids {
		content, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if content != nil {
			items = append(items, content)
		}
	}
	return items, nil
}

func (r *educationRepository) All(ctx context.Context) ([]*entity.Education, error) {
	entries, err := r.store.GetByPrefix(ctx, educationKeyPrefix)
	if err != nil {
		return nil, err
	}
	items := make([]*entity.Education, 0, len(entries))
	for _, e := range entries {
		// Category index lists share the education: prefix; skip them.
		if strings.HasPrefix(e.Key, categoryIndexPrefix) {
			continue
		}
		var content entity.Education
		if err := json.Unmarshal(e.Value, &content); err != nil {
			return nil, errors.Wrapf(err, "decode %s", e.Key)
		}
		items = append(items, &content)
	}
	return items, nil
}

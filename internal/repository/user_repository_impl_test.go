package repository

import (
	"context"
	"testing"
	"time"

	"maternacare/internal/domain/entity"
	"maternacare/internal/infrastructure/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateMaintainsEmailIndex(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	user := &entity.User{
		ID:        "u1",
		Email:     "amina@example.com",
		Name:      "Amina",
		Role:      entity.RoleMother,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, user))

	id, err := repo.FindIDByEmail(ctx, "amina@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", id)

	loaded, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Amina", loaded.Name)
}

func TestUserRepository_FindAbsentReturnsNil(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	user, err := repo.FindByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, user)

	id, err := repo.FindIDByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestUserRepository_DeleteRemovesEmailIndex(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	user := &entity.User{ID: "u1", Email: "amina@example.com", Role: entity.RoleMother}
	require.NoError(t, repo.Create(ctx, user))
	require.NoError(t, repo.Delete(ctx, user))

	id, err := repo.FindIDByEmail(ctx, "amina@example.com")
	require.NoError(t, err)
	assert.Empty(t, id)

	loaded, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestUserRepository_AllSkipsEmailIndexEntries(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u1", Email: "a@example.com", Role: entity.RoleMother}))
	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u2", Email: "b@example.com", Role: entity.RoleClinic}))

	users, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.NotEmpty(t, u.ID)
		assert.True(t, u.Role.Valid())
	}
}

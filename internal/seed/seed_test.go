package seed

import (
	"context"
	"io"
	"testing"

	"maternacare/config"
	"maternacare/internal/domain/entity"
	"maternacare/internal/infrastructure/identity"
	"maternacare/internal/infrastructure/kv"
	"maternacare/internal/repository"
	"maternacare/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSeeder(t *testing.T) (*Seeder, *kv.MemoryStore) {
	t.Helper()
	store := kv.NewMemoryStore()
	log := logrus.New()
	log.SetOutput(io.Discard)
	tokens := jwt.NewTokenService(config.JWTConfig{Secret: "test-secret"})
	provider := identity.NewLocalProvider(store, tokens)
	seeder := NewSeeder(
		log,
		store,
		repository.NewEducationRepository(store),
		repository.NewUserRepository(store),
		provider,
	)
	return seeder, store
}

func TestSeeder_SeedsEducationLibraryOnce(t *testing.T) {
	seeder, store := newTestSeeder(t)
	ctx := context.Background()
	cfg := &config.Config{Seed: config.SeedConfig{Enabled: true}}

	require.NoError(t, seeder.Run(ctx, cfg))
	require.NoError(t, seeder.Run(ctx, cfg))

	education := repository.NewEducationRepository(store)
	all, err := education.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	nutrition, err := education.FindByCategory(ctx, "nutrition")
	require.NoError(t, err)
	require.Len(t, nutrition, 1)
	assert.Equal(t, "Nutrition During Pregnancy", nutrition[0].Title)
}

func TestSeeder_SkipsEducationWhenDisabled(t *testing.T) {
	seeder, store := newTestSeeder(t)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx, &config.Config{}))

	education := repository.NewEducationRepository(store)
	all, err := education.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSeeder_BootstrapsAdminIdempotently(t *testing.T) {
	seeder, store := newTestSeeder(t)
	ctx := context.Background()
	cfg := &config.Config{
		Admin: config.AdminConfig{
			Email:    "root@example.com",
			Password: "secret123",
			Name:     "System Administrator",
		},
	}

	require.NoError(t, seeder.Run(ctx, cfg))
	require.NoError(t, seeder.Run(ctx, cfg))

	users := repository.NewUserRepository(store)
	id, err := users.FindIDByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	admin, err := users.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)

	all, err := users.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

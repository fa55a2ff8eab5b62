package usecase

import (
	"context"
	"testing"

	"maternacare/internal/delivery/dto"
	"maternacare/internal/domain/entity"
	"maternacare/internal/infrastructure/kv"
	"maternacare/internal/repository"
	"maternacare/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEducationFixture(t *testing.T) EducationUsecase {
	t.Helper()
	store := kv.NewMemoryStore()
	return NewEducationUsecase(newTestLogger(), repository.NewEducationRepository(store))
}

func TestEducationUsecase_WritesAreAdminOnly(t *testing.T) {
	uc := newEducationFixture(t)
	ctx := context.Background()

	req := &dto.CreateEducationRequest{Title: "Care", Category: "pregnancy", Content: "body"}

	for _, caller := range []*entity.User{
		{ID: "mother1", Role: entity.RoleMother},
		{ID: "clinic1", Role: entity.RoleClinic},
	} {
		_, err := uc.Create(ctx, caller, req)
		require.Error(t, err)
		assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))
	}

	admin := &entity.User{ID: "admin1", Role: entity.RoleAdmin}
	content, err := uc.Create(ctx, admin, req)
	require.NoError(t, err)
	assert.Equal(t, "admin1", content.CreatedBy)
}

func TestEducationUsecase_ListFiltersByCategory(t *testing.T) {
	uc := newEducationFixture(t)
	ctx := context.Background()
	admin := &entity.User{ID: "admin1", Role: entity.RoleAdmin}

	_, err := uc.Create(ctx, admin, &dto.CreateEducationRequest{Title: "A", Category: "nutrition", Content: "x"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, admin, &dto.CreateEducationRequest{Title: "B", Category: "wellness", Content: "y"})
	require.NoError(t, err)

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	nutrition, err := uc.List(ctx, "nutrition")
	require.NoError(t, err)
	require.Len(t, nutrition, 1)
	assert.Equal(t, "A", nutrition[0].Title)
}

func TestEducationUsecase_UpdateChangesCategoryIndex(t *testing.T) {
	uc := newEducationFixture(t)
	ctx := context.Background()
	admin := &entity.User{ID: "admin1", Role: entity.RoleAdmin}

	content, err := uc.Create(ctx, admin, &dto.CreateEducationRequest{Title: "A", Category: "nutrition", Content: "x"})
	require.NoError(t, err)

	newCategory := "wellness"
	updated, err := uc.Update(ctx, admin, content.ID, &dto.UpdateEducationRequest{Category: &newCategory})
	require.NoError(t, err)
	assert.Equal(t, "wellness", updated.Category)

	nutrition, err := uc.List(ctx, "nutrition")
	require.NoError(t, err)
	assert.Empty(t, nutrition)

	wellness, err := uc.List(ctx, "wellness")
	require.NoError(t, err)
	require.Len(t, wellness, 1)
	assert.Equal(t, content.ID, wellness[0].ID)
}

func TestEducationUsecase_GetUnknownIDNotFound(t *testing.T) {
	uc := newEducationFixture(t)

	_, err := uc.Get(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Equal(t, "Content not found", apperr.MessageOf(err))
}

func TestEducationUsecase_DeleteRemovesContent(t *testing.T) {
	uc := newEducationFixture(t)
	ctx := context.Background()
	admin := &entity.User{ID: "admin1", Role: entity.RoleAdmin}

	content, err := uc.Create(ctx, admin, &dto.CreateEducationRequest{Title: "A", Category: "nutrition", Content: "x"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, admin, content.ID))

	_, err = uc.Get(ctx, content.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

package usecase

import (
	"context"
	"testing"

	"maternacare/internal/domain/entity"
	"maternacare/internal/infrastructure/kv"
	"maternacare/internal/repository"
	"maternacare/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPregnancyFixture(t *testing.T) (PregnancyUsecase, *kv.MemoryStore) {
	t.Helper()
	store := kv.NewMemoryStore()
	uc := NewPregnancyUsecase(
		newTestLogger(),
		repository.NewMotherRepository(store),
		repository.NewAppointmentRepository(store),
	)
	return uc, store
}

func seedMotherProfile(t *testing.T, store *kv.MemoryStore, userID, lmp string) {
	t.Helper()
	mothers := repository.NewMotherRepository(store)
	require.NoError(t, mothers.Save(context.Background(), &entity.MotherProfile{
		UserID:  userID,
		LMP:     lmp,
		DueDate: entity.DueDate(lmp),
	}))
}

func TestPregnancyUsecase_GetOwnRecord(t *testing.T) {
	uc, store := newPregnancyFixture(t)
	ctx := context.Background()
	seedMotherProfile(t, store, "mother1", "2024-01-01")

	mother := &entity.User{ID: "mother1", Role: entity.RoleMother}
	data, err := uc.Get(ctx, mother, "mother1")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", data.LMP)
	assert.Equal(t, "2024-10-07", data.DueDate)
	assert.NotEmpty(t, data.PregnancyStage)
	assert.NotNil(t, data.Measurements)
}

func TestPregnancyUsecase_MotherCannotReadOtherRecord(t *testing.T) {
	uc, store := newPregnancyFixture(t)
	seedMotherProfile(t, store, "mother2", "2024-01-01")

	mother := &entity.User{ID: "mother1", Role: entity.RoleMother}
	_, err := uc.Get(context.Background(), mother, "mother2")
	require.Error(t, err)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))
}

func TestPregnancyUsecase_ClinicCanReadAnyRecord(t *testing.T) {
	uc, store := newPregnancyFixture(t)
	seedMotherProfile(t, store, "mother1", "2024-01-01")

	clinic := &entity.User{ID: "clinic1", Role: entity.RoleClinic}
	data, err := uc.Get(context.Background(), clinic, "mother1")
	require.NoError(t, err)
	assert.Equal(t, "mother1", data.UserID)
}

func TestPregnancyUsecase_GetUnknownMotherNotFound(t *testing.T) {
	uc, _ := newPregnancyFixture(t)

	clinic := &entity.User{ID: "clinic1", Role: entity.RoleClinic}
	_, err := uc.Get(context.Background(), clinic, "ghost")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Equal(t, "Mother data not found", apperr.MessageOf(err))
}

func TestPregnancyUsecase_AddMeasurementPolicy(t *testing.T) {
	uc, store := newPregnancyFixture(t)
	ctx := context.Background()
	seedMotherProfile(t, store, "mother1", "2024-01-01")

	data := map[string]any{"weight": 65.2, "bloodPressure": "120/80"}

	// A mother may record her own measurements.
	mother := &entity.User{ID: "mother1", Role: entity.RoleMother}
	m, err := uc.AddMeasurement(ctx, mother, "mother1", data)
	require.NoError(t, err)
	assert.Equal(t, "mother1", m.RecordedBy)

	// But not another mother's.
	intruder := &entity.User{ID: "mother2", Role: entity.RoleMother}
	_, err = uc.AddMeasurement(ctx, intruder, "mother1", data)
	require.Error(t, err)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	// Clinics may record for any mother.
	clinic := &entity.User{ID: "clinic1", Role: entity.RoleClinic}
	m, err = uc.AddMeasurement(ctx, clinic, "mother1", data)
	require.NoError(t, err)
	assert.Equal(t, "clinic1", m.RecordedBy)

	record, err := uc.Get(ctx, mother, "mother1")
	require.NoError(t, err)
	assert.Len(t, record.Measurements, 2)
}

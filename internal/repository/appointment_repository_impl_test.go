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

func newTestAppointment(id, motherID, clinicID string) *entity.Appointment {
	return &entity.Appointment{
		ID:        id,
		MotherID:  motherID,
		ClinicID:  clinicID,
		Date:      "2024-06-01",
		Time:      "10:00",
		Status:    entity.AppointmentStatusPending,
		CreatedAt: time.Now(),
	}
}

func TestAppointmentRepository_CreateIndexesBothOwners(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewAppointmentRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestAppointment("a1", "m1", "c1")))

	byMother, err := repo.FindByMother(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, byMother, 1)
	assert.Equal(t, "a1", byMother[0].ID)

	byClinic, err := repo.FindByClinic(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, byClinic, 1)
	assert.Equal(t, "a1", byClinic[0].ID)
}

func TestAppointmentRepository_DeletePrunesBothOwnerLists(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewAppointmentRepository(store)
	ctx := context.Background()

	appt := newTestAppointment("a1", "m1", "c1")
	require.NoError(t, repo.Create(ctx, appt))
	require.NoError(t, repo.Create(ctx, newTestAppointment("a2", "m1", "c1")))

	require.NoError(t, repo.Delete(ctx, appt))

	loaded, err := repo.FindByID(ctx, "a1")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	byMother, err := repo.FindByMother(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, byMother, 1)
	assert.Equal(t, "a2", byMother[0].ID)

	byClinic, err := repo.FindByClinic(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, byClinic, 1)
	assert.Equal(t, "a2", byClinic[0].ID)
}

func TestAppointmentRepository_FindByMotherPreservesCreationOrder(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewAppointmentRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestAppointment("a1", "m1", "c1")))
	require.NoError(t, repo.Create(ctx, newTestAppointment("a2", "m1", "c2")))
	require.NoError(t, repo.Create(ctx, newTestAppointment("a3", "m2", "c1")))

	byMother, err := repo.FindByMother(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, byMother, 2)
	assert.Equal(t, "a1", byMother[0].ID)
	assert.Equal(t, "a2", byMother[1].ID)
}

func TestAppointmentRepository_AllIgnoresOwnerLists(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewAppointmentRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestAppointment("a1", "m1", "c1")))
	require.NoError(t, repo.Create(ctx, newTestAppointment("a2", "m2", "c2")))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAppointmentRepository_UpdatePersistsStatus(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewAppointmentRepository(store)
	ctx := context.Background()

	appt := newTestAppointment("a1", "m1", "c1")
	require.NoError(t, repo.Create(ctx, appt))

	appt.Status = entity.AppointmentStatusConfirmed
	require.NoError(t, repo.Update(ctx, appt))

	loaded, err := repo.FindByID(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, entity.AppointmentStatusConfirmed, loaded.Status)
}

package usecase

import (
	"context"
	"testing"
	"time"

	"maternacare/internal/domain/entity"
	"maternacare/internal/infrastructure/kv"
	"maternacare/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClinicFixture(t *testing.T) (ClinicUsecase, *kv.MemoryStore) {
	t.Helper()
	store := kv.NewMemoryStore()
	uc := NewClinicUsecase(
		newTestLogger(),
		repository.NewUserRepository(store),
		repository.NewMotherRepository(store),
		repository.NewClinicRepository(store),
		repository.NewAppointmentRepository(store),
	)
	return uc, store
}

func TestClinicUsecase_ListClinicsOnlyApproved(t *testing.T) {
	uc, store := newClinicFixture(t)
	ctx := context.Background()
	users := repository.NewUserRepository(store)
	clinics := repository.NewClinicRepository(store)

	require.NoError(t, users.Create(ctx, &entity.User{ID: "c1", Email: "c1@example.com", Name: "Approved Clinic", Role: entity.RoleClinic}))
	require.NoError(t, users.Create(ctx, &entity.User{ID: "c2", Email: "c2@example.com", Name: "Pending Clinic", Role: entity.RoleClinic}))
	require.NoError(t, clinics.Save(ctx, &entity.ClinicProfile{UserID: "c1", Approved: true}))
	require.NoError(t, clinics.Save(ctx, &entity.ClinicProfile{UserID: "c2"}))

	listed, err := uc.ListClinics(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "c1", listed[0].ID)
	assert.Equal(t, "Approved Clinic", listed[0].Name)
}

func TestClinicUsecase_ListPatientsDeduplicatesMothers(t *testing.T) {
	uc, store := newClinicFixture(t)
	ctx := context.Background()
	users := repository.NewUserRepository(store)
	mothers := repository.NewMotherRepository(store)
	appointments := repository.NewAppointmentRepository(store)

	require.NoError(t, users.Create(ctx, &entity.User{ID: "m1", Email: "m1@example.com", Name: "Amina", Role: entity.RoleMother}))
	require.NoError(t, users.Create(ctx, &entity.User{ID: "m2", Email: "m2@example.com", Name: "Fatima", Role: entity.RoleMother}))
	require.NoError(t, mothers.Save(ctx, &entity.MotherProfile{UserID: "m1", LMP: "2024-01-01", DueDate: entity.DueDate("2024-01-01")}))
	require.NoError(t, mothers.Save(ctx, &entity.MotherProfile{UserID: "m2", LMP: "2024-02-01", DueDate: entity.DueDate("2024-02-01")}))

	for i, motherID := range []string{"m1", "m1", "m2"} {
		require.NoError(t, appointments.Create(ctx, &entity.Appointment{
			ID:        "a" + string(rune('1'+i)),
			MotherID:  motherID,
			ClinicID:  "clinic1",
			Date:      "2024-06-01",
			Time:      "10:00",
			Status:    entity.AppointmentStatusPending,
			CreatedAt: time.Now(),
		}))
	}

	clinic := &entity.User{ID: "clinic1", Role: entity.RoleClinic}
	patients, err := uc.ListPatients(ctx, clinic)
	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, "Amina", patients[0].Name)
	assert.Equal(t, "2024-10-07", patients[0].DueDate)
	assert.Equal(t, "Fatima", patients[1].Name)
}

func TestClinicUsecase_ListPatientsEmptyWithoutAppointments(t *testing.T) {
	uc, _ := newClinicFixture(t)

	clinic := &entity.User{ID: "clinic1", Role: entity.RoleClinic}
	patients, err := uc.ListPatients(context.Background(), clinic)
	require.NoError(t, err)
	assert.Empty(t, patients)
}

package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RET-CalendarService/internal/domain"
	"github.com/m04kA/RET-CalendarService/pkg/ptr"
	"github.com/m04kA/RET-CalendarService/pkg/types"
)

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func newAppointment(apartmentID int64, slot types.TimeString) domain.Appointment {
	return domain.Appointment{
		ApartmentID: apartmentID,
		ClientID:    ptr.Ptr("client_1"),
		Date:        testDate,
		TimeSlot:    slot,
	}
}

func TestRepository_AddAppointment(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	require.True(t, repo.IsAvailable(ctx, testDate, "10:00"))

	err := repo.AddAppointment(ctx, newAppointment(1001, "10:00"))
	require.NoError(t, err)

	assert.False(t, repo.IsAvailable(ctx, testDate, "10:00"))
	assert.True(t, repo.IsAvailable(ctx, testDate, "10:30"))
	// Другая дата не затронута
	assert.True(t, repo.IsAvailable(ctx, testDate.AddDate(0, 0, 1), "10:00"))
}

func TestRepository_AddAppointment_Overwrite(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	require.NoError(t, repo.AddAppointment(ctx, newAppointment(1001, "10:00")))
	// Повторная запись того же слота не ошибка - побеждает последняя
	require.NoError(t, repo.AddAppointment(ctx, newAppointment(1003, "10:00")))

	day := repo.AppointmentsForDate(ctx, testDate)
	require.Len(t, day, 1)
	assert.Equal(t, int64(1003), day["10:00"].ApartmentID)
}

func TestRepository_AddAppointment_RejectsNonCanonicalSlot(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	tests := []types.TimeString{"13:00", "13:30", "18:00", "09:15", "08:00"}
	for _, slot := range tests {
		err := repo.AddAppointment(ctx, newAppointment(1001, slot))
		assert.ErrorIs(t, err, ErrInvalidSlot, "slot %s", slot)
	}
}

func TestRepository_AppointmentsForDate(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	assert.Empty(t, repo.AppointmentsForDate(ctx, testDate))

	require.NoError(t, repo.AddAppointment(ctx, newAppointment(1001, "10:00")))
	require.NoError(t, repo.AddAppointment(ctx, newAppointment(1001, "10:30")))
	require.NoError(t, repo.AddAppointment(ctx, newAppointment(1004, "14:00")))

	day := repo.AppointmentsForDate(ctx, testDate)
	require.Len(t, day, 3)
	assert.Equal(t, int64(1001), day["10:00"].ApartmentID)
	assert.Equal(t, int64(1004), day["14:00"].ApartmentID)

	// Возвращается копия: мутация результата не влияет на хранилище
	delete(day, "10:00")
	assert.Len(t, repo.AppointmentsForDate(ctx, testDate), 3)
}

func TestRepository_ApartmentMetadata(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.GetApartmentMetadata(ctx, 1001)
	assert.ErrorIs(t, err, ErrMetadataNotFound)

	repo.SetApartmentMetadata(ctx, domain.ApartmentMetadata{
		ApartmentID:   1001,
		AvailableDays: []string{"Monday", "Tuesday"},
		HoursPerWeek:  35,
		ScarcityLevel: domain.ScarcityAbundant,
	})

	meta, err := repo.GetApartmentMetadata(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, domain.ScarcityAbundant, meta.ScarcityLevel)
	assert.Equal(t, 35, meta.HoursPerWeek)

	// Upsert перезаписывает запись целиком
	repo.SetApartmentMetadata(ctx, domain.ApartmentMetadata{
		ApartmentID:   1001,
		AvailableDays: []string{"Friday"},
		HoursPerWeek:  8,
		ScarcityLevel: domain.ScarcityCritical,
	})

	meta, err = repo.GetApartmentMetadata(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, domain.ScarcityCritical, meta.ScarcityLevel)
	assert.Equal(t, []string{"Friday"}, meta.AvailableDays)
}

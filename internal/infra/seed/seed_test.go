package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RET-CalendarService/internal/domain"
	"github.com/m04kA/RET-CalendarService/internal/infra/storage/calendar"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCatalog struct {
	apartments []domain.Apartment
}

func (f fakeCatalog) List(ctx context.Context) []domain.Apartment {
	return f.apartments
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

func threeApartments() []domain.Apartment {
	return []domain.Apartment{
		{ID: 1001, Name: "Apartamento Moderno en la Rambla"},
		{ID: 1003, Name: "Suite de Lujo en Diagonal"},
		{ID: 1004, Name: "Apartamento Empresarial en Diagonal"},
	}
}

func TestNextWeekday(t *testing.T) {
	// 2025-10-13 понедельник
	monday := time.Date(2025, 10, 13, 9, 45, 0, 0, time.UTC)

	tuesday := nextWeekday(monday, time.Tuesday)
	assert.Equal(t, time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), tuesday)

	// Тот же день недели возвращается как есть, без сдвига на неделю
	sameMonday := nextWeekday(monday, time.Monday)
	assert.Equal(t, time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC), sameMonday)

	// Переход через выходные
	friday := time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC)
	nextTuesday := nextWeekday(friday, time.Tuesday)
	assert.Equal(t, time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC), nextTuesday)
}

func TestRun(t *testing.T) {
	repo := calendar.NewRepository()
	// 2025-10-13 понедельник
	now := time.Date(2025, 10, 13, 9, 45, 0, 0, time.UTC)
	seeder := NewSeeder(repo, fakeCatalog{threeApartments()}, fixedTimeProvider{now}, nopLogger{})

	require.NoError(t, seeder.Run(context.Background()))

	ctx := context.Background()
	tuesday := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	wednesday := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	thursday := time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)

	tueAppts := repo.AppointmentsForDate(ctx, tuesday)
	require.Len(t, tueAppts, 2)
	assert.Equal(t, int64(1001), tueAppts["10:00"].ApartmentID)
	assert.Equal(t, int64(1001), tueAppts["10:30"].ApartmentID)
	require.NotNil(t, tueAppts["10:00"].ClientID)
	assert.Equal(t, "client_1", *tueAppts["10:00"].ClientID)

	wedAppts := repo.AppointmentsForDate(ctx, wednesday)
	require.Len(t, wedAppts, 2)
	assert.Equal(t, int64(1004), wedAppts["14:00"].ApartmentID)
	assert.Equal(t, int64(1004), wedAppts["14:30"].ApartmentID)

	thuAppts := repo.AppointmentsForDate(ctx, thursday)
	require.Len(t, thuAppts, 2)
	assert.Equal(t, int64(1003), thuAppts["10:00"].ApartmentID)

	meta, err := repo.GetApartmentMetadata(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, domain.ScarcityAbundant, meta.ScarcityLevel)
	assert.Equal(t, 35, meta.HoursPerWeek)

	meta, err = repo.GetApartmentMetadata(ctx, 1003)
	require.NoError(t, err)
	assert.Equal(t, domain.ScarcityCritical, meta.ScarcityLevel)

	meta, err = repo.GetApartmentMetadata(ctx, 1004)
	require.NoError(t, err)
	assert.Equal(t, domain.ScarcityMedium, meta.ScarcityLevel)
}

func TestRun_SmallCatalog(t *testing.T) {
	repo := calendar.NewRepository()
	now := time.Date(2025, 10, 13, 9, 45, 0, 0, time.UTC)
	seeder := NewSeeder(repo, fakeCatalog{threeApartments()[:2]}, fixedTimeProvider{now}, nopLogger{})

	// Каталог меньше трех квартир не ошибка, сидинг просто пропускается
	require.NoError(t, seeder.Run(context.Background()))

	tuesday := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, repo.AppointmentsForDate(context.Background(), tuesday))
}

package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RET-CalendarService/internal/domain"
	"github.com/m04kA/RET-CalendarService/internal/infra/storage/calendar"
	"github.com/m04kA/RET-CalendarService/pkg/ptr"
	"github.com/m04kA/RET-CalendarService/pkg/types"
)

type fakeCatalog struct {
	ids map[int64]bool
}

func (f *fakeCatalog) Exists(_ context.Context, id int64) bool {
	return f.ids[id]
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var (
	now      = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	viewDate = time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase() (*UseCase, *calendar.Repository) {
	repo := calendar.NewRepository()
	uc := NewUseCase(repo, &fakeCatalog{ids: map[int64]bool{1001: true}}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc, repo
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	uc, repo := newTestUseCase()

	resp, err := uc.Execute(ctx, &Request{
		ApartmentID: 1001,
		Date:        viewDate,
		TimeSlot:    "10:00",
		ClientID:    ptr.Ptr("client_1"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, int64(1001), resp.ApartmentID)
	assert.Equal(t, types.TimeString("10:00"), resp.TimeSlot)
	assert.Equal(t, now, resp.CreatedAt)
	require.NotNil(t, resp.ClientID)
	assert.Equal(t, "client_1", *resp.ClientID)

	// Запись видна календарю сразу же
	assert.False(t, repo.IsAvailable(ctx, viewDate, "10:00"))
}

func TestExecute_SlotTaken(t *testing.T) {
	ctx := context.Background()
	uc, repo := newTestUseCase()

	require.NoError(t, repo.AddAppointment(ctx, domain.Appointment{
		ApartmentID: 1001,
		Date:        viewDate,
		TimeSlot:    "10:00",
	}))

	_, err := uc.Execute(ctx, &Request{
		ApartmentID: 1001,
		Date:        viewDate,
		TimeSlot:    "10:00",
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ApartmentNotFound(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		ApartmentID: 9999,
		Date:        viewDate,
		TimeSlot:    "10:00",
	})
	assert.ErrorIs(t, err, ErrApartmentNotFound)
}

func TestExecute_NonCanonicalSlot(t *testing.T) {
	uc, _ := newTestUseCase()

	tests := []types.TimeString{"13:00", "13:30", "18:00", "08:30"}
	for _, slot := range tests {
		_, err := uc.Execute(context.Background(), &Request{
			ApartmentID: 1001,
			Date:        viewDate,
			TimeSlot:    slot,
		})
		assert.ErrorIs(t, err, ErrInvalidTimeSlot, "slot %s", slot)
	}
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{ApartmentID: 0, Date: viewDate, TimeSlot: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{ApartmentID: 1001, TimeSlot: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{ApartmentID: 1001, Date: viewDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{ApartmentID: 1001, Date: viewDate, TimeSlot: "9:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

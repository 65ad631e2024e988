package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RET-CalendarService/internal/domain"
	"github.com/m04kA/RET-CalendarService/internal/infra/storage/calendar"
	"github.com/m04kA/RET-CalendarService/internal/service/appointments/models"
	"github.com/m04kA/RET-CalendarService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func TestGetDaySchedule(t *testing.T) {
	ctx := context.Background()
	repo := calendar.NewRepository()
	svc := NewService(repo, nopLogger{})

	// Добавляем в обратном хронологическом порядке
	for _, slot := range []types.TimeString{"14:30", "09:30", "10:00"} {
		require.NoError(t, repo.AddAppointment(ctx, domain.Appointment{
			ApartmentID: 1001,
			Date:        testDate,
			TimeSlot:    slot,
		}))
	}

	resp, err := svc.GetDaySchedule(ctx, &models.GetDayScheduleRequest{Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Appointments, 3)
	assert.Equal(t, types.TimeString("09:30"), resp.Appointments[0].TimeSlot)
	assert.Equal(t, types.TimeString("10:00"), resp.Appointments[1].TimeSlot)
	assert.Equal(t, types.TimeString("14:30"), resp.Appointments[2].TimeSlot)
}

func TestGetDaySchedule_EmptyDay(t *testing.T) {
	svc := NewService(calendar.NewRepository(), nopLogger{})

	resp, err := svc.GetDaySchedule(context.Background(), &models.GetDayScheduleRequest{Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Appointments)
}

func TestGetDaySchedule_MissingDate(t *testing.T) {
	svc := NewService(calendar.NewRepository(), nopLogger{})

	_, err := svc.GetDaySchedule(context.Background(), &models.GetDayScheduleRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

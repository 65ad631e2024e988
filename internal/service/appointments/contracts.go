package appointments

import (
	"context"
	"time"

	"github.com/m04kA/RET-CalendarService/internal/domain"
	"github.com/m04kA/RET-CalendarService/pkg/types"
)

// CalendarRepository интерфейс календаря просмотров
type CalendarRepository interface {
	// AppointmentsForDate возвращает все встречи на дату (слот -> встреча)
	AppointmentsForDate(ctx context.Context, date time.Time) map[types.TimeString]domain.Appointment
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

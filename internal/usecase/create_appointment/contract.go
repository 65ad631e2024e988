package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/RET-CalendarService/internal/domain"
	"github.com/m04kA/RET-CalendarService/pkg/types"
)

// CalendarRepository интерфейс календаря просмотров
type CalendarRepository interface {
	// IsAvailable проверяет, что слот свободен
	IsAvailable(ctx context.Context, date time.Time, slot types.TimeString) bool
	// AddAppointment записывает встречу в календарь
	AddAppointment(ctx context.Context, appt domain.Appointment) error
}

// CatalogRepository интерфейс каталога квартир
type CatalogRepository interface {
	// Exists проверяет, что квартира есть в каталоге
	Exists(ctx context.Context, id int64) bool
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

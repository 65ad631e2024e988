package seed

import (
	"context"
	"time"

	"github.com/m04kA/RET-CalendarService/internal/domain"
)

type CalendarRepository interface {
	AddAppointment(ctx context.Context, appt domain.Appointment) error
	SetApartmentMetadata(ctx context.Context, meta domain.ApartmentMetadata)
}

type CatalogRepository interface {
	List(ctx context.Context) []domain.Apartment
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_apartment_qualification

import (
	"context"

	"github.com/m04kA/RET-CalendarService/internal/domain"
)

type CatalogService interface {
	GetQualification(ctx context.Context, apartmentID int64) (*domain.Apartment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

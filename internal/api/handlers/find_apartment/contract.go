package find_apartment

import (
	"context"

	"github.com/m04kA/RET-CalendarService/internal/domain"
)

type ApartmentMatcher interface {
	FindBestApartment(ctx context.Context, query string, apartments []domain.Apartment) (*domain.Apartment, error)
}

type CatalogRepository interface {
	List(ctx context.Context) []domain.Apartment
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package catalog

import (
	"context"

	"github.com/m04kA/RET-CalendarService/internal/domain"
)

// CatalogRepository интерфейс каталога квартир
type CatalogRepository interface {
	// List возвращает все квартиры каталога
	List(ctx context.Context) []domain.Apartment
	// GetByID возвращает квартиру по идентификатору
	GetByID(ctx context.Context, id int64) (*domain.Apartment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

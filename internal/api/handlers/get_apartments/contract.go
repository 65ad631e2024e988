package get_apartments

import (
	"context"

	"github.com/m04kA/RET-CalendarService/internal/service/catalog/models"
)

type CatalogService interface {
	ListBasic(ctx context.Context) (*models.ApartmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

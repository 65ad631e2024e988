package get_apartment_info

import (
	"context"

	"github.com/m04kA/RET-CalendarService/internal/service/catalog/models"
)

type CatalogService interface {
	GetInfo(ctx context.Context, apartmentID int64) (*models.ApartmentInfo, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RET-CalendarService/internal/domain"
	catalogRepo "github.com/m04kA/RET-CalendarService/internal/infra/storage/catalog"
	"github.com/m04kA/RET-CalendarService/internal/service/catalog/models"
)

// Service сервис каталога квартир
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListBasic возвращает краткие карточки всех квартир каталога
func (s *Service) ListBasic(ctx context.Context) (*models.ApartmentListResponse, error) {
	apartments := s.catalogRepo.List(ctx)

	result := make([]models.ApartmentBasic, 0, len(apartments))
	for _, apt := range apartments {
		result = append(result, models.FromDomainApartmentBasic(apt))
	}

	s.logger.Info("ListBasic: %d apartments in catalog", len(result))
	return &models.ApartmentListResponse{Apartments: result}, nil
}

// GetInfo возвращает полную карточку квартиры без деталей квалификации
func (s *Service) GetInfo(ctx context.Context, apartmentID int64) (*models.ApartmentInfo, error) {
	apt, err := s.getApartment(ctx, "GetInfo", apartmentID)
	if err != nil {
		return nil, err
	}

	info := models.FromDomainApartmentInfo(*apt)
	return &info, nil
}

// GetQualification возвращает полную карточку квартиры вместе с
// требованиями квалификации
func (s *Service) GetQualification(ctx context.Context, apartmentID int64) (*domain.Apartment, error) {
	return s.getApartment(ctx, "GetQualification", apartmentID)
}

func (s *Service) getApartment(ctx context.Context, op string, apartmentID int64) (*domain.Apartment, error) {
	apt, err := s.catalogRepo.GetByID(ctx, apartmentID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrApartmentNotFound) {
			s.logger.Warn("%s: apartment id=%d not found", op, apartmentID)
			return nil, ErrApartmentNotFound
		}
		s.logger.Error("%s: repository error for apartment id=%d: %v", op, apartmentID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return apt, nil
}

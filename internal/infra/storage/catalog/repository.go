package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/m04kA/RET-CalendarService/internal/domain"
)

// Repository каталог квартир, загружаемый из apartments.json.
// Каталог читается один раз при старте и дальше не меняется, поэтому
// блокировки не нужны.
type Repository struct {
	apartments []domain.Apartment
	byID       map[int64]int // id -> индекс в apartments
}

// NewRepository загружает каталог из JSON файла
func NewRepository(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFile, path, err)
	}

	var apartments []domain.Apartment
	if err := json.Unmarshal(data, &apartments); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParseFile, path, err)
	}

	byID := make(map[int64]int, len(apartments))
	for i, apt := range apartments {
		byID[apt.ID] = i
	}

	return &Repository{
		apartments: apartments,
		byID:       byID,
	}, nil
}

// List возвращает все квартиры каталога в порядке файла
func (r *Repository) List(ctx context.Context) []domain.Apartment {
	result := make([]domain.Apartment, len(r.apartments))
	copy(result, r.apartments)
	return result
}

// GetByID возвращает квартиру по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Apartment, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrApartmentNotFound, id)
	}
	apt := r.apartments[i]
	return &apt, nil
}

// Exists проверяет, что квартира есть в каталоге
func (r *Repository) Exists(ctx context.Context, id int64) bool {
	_, ok := r.byID[id]
	return ok
}

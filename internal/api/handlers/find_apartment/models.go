package find_apartment

import "github.com/m04kA/RET-CalendarService/internal/domain"

// FindApartmentRequest HTTP request model
type FindApartmentRequest struct {
	Query string `json:"query"`
}

// FindApartmentResponse подобранная квартира
type FindApartmentResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Street string `json:"street"`
	City   string `json:"city"`
}

// FromDomainApartment конвертирует квартиру в HTTP response
func FromDomainApartment(apt *domain.Apartment) *FindApartmentResponse {
	return &FindApartmentResponse{
		ID:     apt.ID,
		Name:   apt.Name,
		Street: apt.Street,
		City:   apt.City,
	}
}

package get_apartment_qualification

import "github.com/m04kA/RET-CalendarService/internal/domain"

// QualificationRequest HTTP request model
type QualificationRequest struct {
	ApartmentID int64 `json:"apartment_id"`
}

// QualificationResponse требования к арендатору для квартиры
type QualificationResponse struct {
	ApartmentID   int64                  `json:"apartment_id"`
	Name          string                 `json:"name"`
	Qualification map[string]interface{} `json:"qualification"`
}

// FromDomainApartment конвертирует квартиру в HTTP response
func FromDomainApartment(apt *domain.Apartment) *QualificationResponse {
	return &QualificationResponse{
		ApartmentID:   apt.ID,
		Name:          apt.Name,
		Qualification: apt.Qualification,
	}
}

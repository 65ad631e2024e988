package get_apartments

import "github.com/m04kA/RET-CalendarService/internal/service/catalog/models"

// ApartmentsResponse HTTP response model
type ApartmentsResponse struct {
	Apartments []Apartment `json:"apartments"`
}

// Apartment краткая карточка квартиры в HTTP ответе
type Apartment struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	RefCode int64  `json:"ref_code"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ApartmentListResponse) *ApartmentsResponse {
	apartments := make([]Apartment, len(resp.Apartments))
	for i, apt := range resp.Apartments {
		apartments[i] = Apartment{
			Name:    apt.Name,
			Street:  apt.Street,
			City:    apt.City,
			RefCode: apt.RefCode,
		}
	}
	return &ApartmentsResponse{Apartments: apartments}
}

package get_apartment_info

import "github.com/m04kA/RET-CalendarService/internal/service/catalog/models"

// ApartmentInfoRequest HTTP request model
type ApartmentInfoRequest struct {
	ApartmentID int64 `json:"apartment_id"`
}

// ApartmentInfoResponse полная карточка квартиры.
// Детали квалификации не отдаются, только флаг их наличия.
type ApartmentInfoResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Street          string  `json:"street"`
	City            string  `json:"city"`
	Price           float64 `json:"price,omitempty"`
	Rooms           int     `json:"rooms,omitempty"`
	SquareMeters    float64 `json:"square_meters,omitempty"`
	Description     string  `json:"description,omitempty"`
	IsQualification bool    `json:"is_qualification"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(info *models.ApartmentInfo) *ApartmentInfoResponse {
	apt := info.Apartment
	return &ApartmentInfoResponse{
		ID:              apt.ID,
		Name:            apt.Name,
		Street:          apt.Street,
		City:            apt.City,
		Price:           apt.Price,
		Rooms:           apt.Rooms,
		SquareMeters:    apt.SquareMeters,
		Description:     apt.Description,
		IsQualification: info.IsQualification,
	}
}

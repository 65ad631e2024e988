package add_appointment

import (
	"time"

	"github.com/m04kA/RET-CalendarService/internal/domain"
	createAppointment "github.com/m04kA/RET-CalendarService/internal/usecase/create_appointment"
	"github.com/m04kA/RET-CalendarService/pkg/types"
)

// AddAppointmentRequest HTTP request model
type AddAppointmentRequest struct {
	ApartmentID int64   `json:"apartment_id"`
	Date        string  `json:"date"`
	TimeSlot    string  `json:"time_slot"`
	ClientID    *string `json:"client_id,omitempty"`
}

// AddAppointmentResponse HTTP response model
type AddAppointmentResponse struct {
	ID          string  `json:"id"`
	ApartmentID int64   `json:"apartment_id"`
	Date        string  `json:"date"`
	TimeSlot    string  `json:"time_slot"`
	ClientID    *string `json:"client_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// ToUseCaseRequest создает запрос use case из HTTP модели
func ToUseCaseRequest(req *AddAppointmentRequest) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(req.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ApartmentID: req.ApartmentID,
		Date:        date,
		TimeSlot:    slot,
		ClientID:    req.ClientID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AddAppointmentResponse {
	return &AddAppointmentResponse{
		ID:          resp.ID,
		ApartmentID: resp.ApartmentID,
		Date:        resp.Date.Format(domain.DateFormat),
		TimeSlot:    resp.TimeSlot.String(),
		ClientID:    resp.ClientID,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}

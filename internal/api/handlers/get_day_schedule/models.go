package get_day_schedule

import (
	"github.com/m04kA/RET-CalendarService/internal/domain"
	"github.com/m04kA/RET-CalendarService/internal/service/appointments/models"
)

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	Date         string        `json:"date"`
	Appointments []Appointment `json:"appointments"`
}

// Appointment забронированная встреча в HTTP ответе
type Appointment struct {
	ID          string  `json:"id"`
	ApartmentID int64   `json:"apartment_id"`
	ClientID    *string `json:"client_id,omitempty"`
	TimeSlot    string  `json:"time_slot"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.DayScheduleResponse) *DayScheduleResponse {
	appointments := make([]Appointment, len(resp.Appointments))
	for i, appt := range resp.Appointments {
		appointments[i] = Appointment{
			ID:          appt.ID,
			ApartmentID: appt.ApartmentID,
			ClientID:    appt.ClientID,
			TimeSlot:    appt.TimeSlot.String(),
		}
	}

	return &DayScheduleResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		Appointments: appointments,
	}
}

package models

import (
	"time"

	"github.com/m04kA/RET-CalendarService/internal/domain"
	"github.com/m04kA/RET-CalendarService/pkg/types"
)

// GetDayScheduleRequest запрос расписания на дату
type GetDayScheduleRequest struct {
	Date time.Time
}

// AppointmentInfo информация о забронированной встрече
type AppointmentInfo struct {
	ID          string
	ApartmentID int64
	ClientID    *string
	TimeSlot    types.TimeString
}

// DayScheduleResponse расписание встреч на дату
type DayScheduleResponse struct {
	Date         time.Time
	Appointments []AppointmentInfo
}

// FromDomainAppointment конвертирует доменную встречу в модель сервиса
func FromDomainAppointment(appt domain.Appointment) AppointmentInfo {
	return AppointmentInfo{
		ID:          appt.ID,
		ApartmentID: appt.ApartmentID,
		ClientID:    appt.ClientID,
		TimeSlot:    appt.TimeSlot,
	}
}

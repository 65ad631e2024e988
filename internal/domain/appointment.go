package domain

import (
	"time"

	"github.com/m04kA/RET-CalendarService/pkg/types"
)

// Appointment represents a booked viewing of an apartment at a concrete
// (date, time slot) pair. The calendar holds at most one appointment per
// pair; rebooking is modelled as adding a new appointment at another slot.
type Appointment struct {
	ID          string // confirmation id, assigned on creation
	ApartmentID int64
	ClientID    *string
	Date        time.Time // date only, time component is zero
	TimeSlot    types.TimeString
	CreatedAt   time.Time
}

// DateKey returns the calendar key for the appointment date (YYYY-MM-DD)
func (a *Appointment) DateKey() string {
	return a.Date.Format(DateFormat)
}

// BelongsTo returns true if the appointment is for the given apartment
func (a *Appointment) BelongsTo(apartmentID int64) bool {
	return a.ApartmentID == apartmentID
}

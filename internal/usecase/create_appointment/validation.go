package create_appointment

import (
	"fmt"

	"github.com/m04kA/RET-CalendarService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ApartmentID <= 0 {
		return fmt.Errorf("%w: apartmentID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.TimeSlot.IsZero() {
		return fmt.Errorf("%w: timeSlot is required", ErrInvalidInput)
	}

	if err := req.TimeSlot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeSlot format: %v", ErrInvalidInput, err)
	}

	// В календарь попадают только слоты канонической сетки
	if !domain.IsCanonicalSlot(req.TimeSlot) {
		return fmt.Errorf("%w: %q is outside the working day grid", ErrInvalidTimeSlot, req.TimeSlot)
	}

	return nil
}

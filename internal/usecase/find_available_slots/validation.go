package find_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса.
// Отрицательное количество дней отклоняем явно (политика reject, а не
// clamp); Days == 0 валиден и дает пустой результат.
func validateRequest(req *Request) error {
	if req.ApartmentID <= 0 {
		return fmt.Errorf("%w: apartmentID must be positive", ErrInvalidInput)
	}

	if req.Days < 0 {
		return fmt.Errorf("%w: days must not be negative", ErrInvalidInput)
	}

	return nil
}

package create_appointment

import "errors"

var (
	// ErrApartmentNotFound возвращается, когда квартира не найдена в каталоге
	ErrApartmentNotFound = errors.New("apartment not found")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrInvalidTimeSlot возвращается для слота вне канонической сетки дня
	ErrInvalidTimeSlot = errors.New("invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

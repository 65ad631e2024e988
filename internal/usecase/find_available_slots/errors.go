package find_available_slots

import "errors"

var (
	// ErrApartmentNotFound возвращается, когда квартира не найдена в каталоге
	ErrApartmentNotFound = errors.New("apartment not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

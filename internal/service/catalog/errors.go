package catalog

import "errors"

var (
	// ErrApartmentNotFound возвращается, когда квартира не найдена в каталоге
	ErrApartmentNotFound = errors.New("catalog.service: apartment not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog.service: internal error")
)

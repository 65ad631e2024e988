package catalog

import "errors"

var (
	// ErrApartmentNotFound возвращается, когда квартира не найдена в каталоге
	ErrApartmentNotFound = errors.New("catalog.repository: apartment not found")

	// ErrLoadFile возвращается при ошибке чтения файла каталога
	ErrLoadFile = errors.New("catalog.repository: failed to read apartments file")

	// ErrParseFile возвращается при некорректном JSON в файле каталога
	ErrParseFile = errors.New("catalog.repository: invalid JSON in apartments file")
)

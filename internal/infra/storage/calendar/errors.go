package calendar

import "errors"

var (
	// ErrInvalidSlot возвращается при попытке записать встречу
	// на слот вне канонической сетки дня
	ErrInvalidSlot = errors.New("calendar.repository: slot is not in the canonical day grid")

	// ErrMetadataNotFound возвращается, когда метаданные квартиры не найдены
	ErrMetadataNotFound = errors.New("calendar.repository: apartment metadata not found")
)

package gemini

import "errors"

var (
	// ErrAPIKeyMissing возвращается, когда ключ GEMINI_API_KEY не задан
	ErrAPIKeyMissing = errors.New("gemini client: api key is not configured")

	// ErrEmptyCatalog возвращается при попытке подбора по пустому каталогу
	ErrEmptyCatalog = errors.New("gemini client: apartment list is empty")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gemini client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("gemini client: invalid response")
)

package find_apartment

import (
	"errors"
	"net/http"

	"github.com/m04kA/RET-CalendarService/internal/api/handlers"
	"github.com/m04kA/RET-CalendarService/internal/integrations/gemini"
)

const (
	msgInvalidBody        = "некорректное тело запроса"
	msgMissingQuery       = "текст запроса обязателен"
	msgEmptyCatalog       = "каталог квартир пуст"
	msgMatcherUnavailable = "подбор квартиры временно недоступен"
)

type Handler struct {
	matcher     ApartmentMatcher
	catalogRepo CatalogRepository
	logger      Logger
}

func NewHandler(matcher ApartmentMatcher, catalogRepo CatalogRepository, logger Logger) *Handler {
	return &Handler{
		matcher:     matcher,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Handle POST /tool/find-apartment
// Body: query (required, свободный текст пожеланий клиента)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req FindApartmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tool/find-apartment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.Query == "" {
		h.logger.Warn("POST /tool/find-apartment - Missing query")
		handlers.RespondBadRequest(w, msgMissingQuery)
		return
	}

	apartments := h.catalogRepo.List(r.Context())

	result, err := h.matcher.FindBestApartment(r.Context(), req.Query, apartments)
	if err != nil {
		switch {
		case errors.Is(err, gemini.ErrAPIKeyMissing):
			h.logger.Warn("POST /tool/find-apartment - Matcher is not configured")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgMatcherUnavailable)

		case errors.Is(err, gemini.ErrEmptyCatalog):
			h.logger.Warn("POST /tool/find-apartment - Catalog is empty")
			handlers.RespondNotFound(w, msgEmptyCatalog)

		default:
			h.logger.Error("POST /tool/find-apartment - Failed to match apartment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromDomainApartment(result)

	h.logger.Info("POST /tool/find-apartment - Apartment matched: apartment_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, response)
}

package get_apartments

import (
	"net/http"

	"github.com/m04kA/RET-CalendarService/internal/api/handlers"
)

type Handler struct {
	catalogService CatalogService
	logger         Logger
}

func NewHandler(catalogService CatalogService, logger Logger) *Handler {
	return &Handler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// Handle POST /tool/get-apartments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.ListBasic(r.Context())
	if err != nil {
		h.logger.Error("POST /tool/get-apartments - Failed to list apartments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromServiceResponse(result)

	h.logger.Info("POST /tool/get-apartments - Catalog returned: apartments_count=%d", len(result.Apartments))
	handlers.RespondJSON(w, http.StatusOK, response)
}

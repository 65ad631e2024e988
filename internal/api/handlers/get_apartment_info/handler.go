package get_apartment_info

import (
	"errors"
	"net/http"

	"github.com/m04kA/RET-CalendarService/internal/api/handlers"
	catalogService "github.com/m04kA/RET-CalendarService/internal/service/catalog"
)

const (
	msgInvalidBody        = "некорректное тело запроса"
	msgInvalidApartmentID = "некорректный ID квартиры"
	msgApartmentNotFound  = "квартира не найдена"
)

type Handler struct {
	catalogSvc CatalogService
	logger     Logger
}

func NewHandler(catalogSvc CatalogService, logger Logger) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		logger:     logger,
	}
}

// Handle POST /tool/get-apartment-info
// Body: apartment_id (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ApartmentInfoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tool/get-apartment-info - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.ApartmentID <= 0 {
		h.logger.Warn("POST /tool/get-apartment-info - Invalid apartment ID: %d", req.ApartmentID)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	result, err := h.catalogSvc.GetInfo(r.Context(), req.ApartmentID)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrApartmentNotFound):
			h.logger.Warn("POST /tool/get-apartment-info - Apartment not found: apartment_id=%d", req.ApartmentID)
			handlers.RespondNotFound(w, msgApartmentNotFound)

		default:
			h.logger.Error("POST /tool/get-apartment-info - Failed to get apartment: apartment_id=%d, error=%v",
				req.ApartmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromServiceResponse(result)

	h.logger.Info("POST /tool/get-apartment-info - Apartment returned: apartment_id=%d", req.ApartmentID)
	handlers.RespondJSON(w, http.StatusOK, response)
}

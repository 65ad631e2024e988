package check_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/RET-CalendarService/internal/api/handlers"
	findAvailableSlots "github.com/m04kA/RET-CalendarService/internal/usecase/find_available_slots"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput      = "некорректные параметры поиска"
	msgApartmentNotFound = "квартира не найдена"
)

type Handler struct {
	useCase     FindAvailableSlotsUseCase
	defaultDays int
	logger      Logger
}

func NewHandler(useCase FindAvailableSlotsUseCase, defaultDays int, logger Logger) *Handler {
	return &Handler{
		useCase:     useCase,
		defaultDays: defaultDays,
		logger:      logger,
	}
}

// Handle POST /tool/check-schedule
// Body: apartment_id (required), start_date (optional, YYYY-MM-DD), days (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tool/check-schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(&req, h.defaultDays)
	if err != nil {
		h.logger.Warn("POST /tool/check-schedule - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, findAvailableSlots.ErrApartmentNotFound):
			h.logger.Warn("POST /tool/check-schedule - Apartment not found: apartment_id=%d", req.ApartmentID)
			handlers.RespondNotFound(w, msgApartmentNotFound)

		case errors.Is(err, findAvailableSlots.ErrInvalidInput):
			h.logger.Warn("POST /tool/check-schedule - Invalid input: apartment_id=%d, error=%v", req.ApartmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /tool/check-schedule - Failed to find slots: apartment_id=%d, error=%v", req.ApartmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /tool/check-schedule - Slots found: apartment_id=%d, slots_count=%d",
		req.ApartmentID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}

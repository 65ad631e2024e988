package add_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/RET-CalendarService/internal/api/handlers"
	createAppointment "github.com/m04kA/RET-CalendarService/internal/usecase/create_appointment"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidDateOrSlot = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidTimeSlot   = "время не входит в сетку слотов дня"
	msgInvalidInput      = "некорректные параметры записи"
	msgApartmentNotFound = "квартира не найдена"
	msgSlotNotAvailable  = "слот уже занят"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /tool/add-appointment
// Body: apartment_id, date (YYYY-MM-DD), time_slot (HH:MM), client_id (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tool/add-appointment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	// Формируем запрос к use case (с парсингом даты и слота)
	useCaseReq, err := ToUseCaseRequest(&req)
	if err != nil {
		h.logger.Warn("POST /tool/add-appointment - Invalid date or slot: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrSlot)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createAppointment.ErrApartmentNotFound):
			h.logger.Warn("POST /tool/add-appointment - Apartment not found: apartment_id=%d", req.ApartmentID)
			handlers.RespondNotFound(w, msgApartmentNotFound)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /tool/add-appointment - Slot not available: apartment_id=%d, date=%s, slot=%s",
				req.ApartmentID, req.Date, req.TimeSlot)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /tool/add-appointment - Slot is not on the day grid: slot=%s", req.TimeSlot)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /tool/add-appointment - Invalid input: apartment_id=%d, error=%v", req.ApartmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /tool/add-appointment - Failed to create appointment: apartment_id=%d, error=%v",
				req.ApartmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /tool/add-appointment - Appointment created: id=%s, apartment_id=%d, date=%s, slot=%s",
		result.ID, result.ApartmentID, req.Date, req.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

package get_day_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/RET-CalendarService/internal/api/handlers"
	"github.com/m04kA/RET-CalendarService/internal/domain"
	appointmentsService "github.com/m04kA/RET-CalendarService/internal/service/appointments"
	"github.com/m04kA/RET-CalendarService/internal/service/appointments/models"
)

const (
	msgMissingDate  = "дата обязательна"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	appointmentsSvc AppointmentsService
	logger          Logger
}

func NewHandler(appointmentsSvc AppointmentsService, logger Logger) *Handler {
	return &Handler{
		appointmentsSvc: appointmentsSvc,
		logger:          logger,
	}
}

// Handle GET /tool/day-schedule
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /tool/day-schedule - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /tool/day-schedule - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.appointmentsSvc.GetDaySchedule(r.Context(), &models.GetDayScheduleRequest{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /tool/day-schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /tool/day-schedule - Failed to get schedule: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromServiceResponse(result)

	h.logger.Info("GET /tool/day-schedule - Schedule returned: date=%s, appointments_count=%d",
		dateStr, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, response)
}

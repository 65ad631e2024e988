package appointments

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/RET-CalendarService/internal/domain"
	"github.com/m04kA/RET-CalendarService/internal/service/appointments/models"
)

// Service сервис чтения расписания встреч
type Service struct {
	calendarRepo CalendarRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(calendarRepo CalendarRepository, logger Logger) *Service {
	return &Service{
		calendarRepo: calendarRepo,
		logger:       logger,
	}
}

// GetDaySchedule возвращает все встречи на дату, отсортированные по времени
func (s *Service) GetDaySchedule(ctx context.Context, req *models.GetDayScheduleRequest) (*models.DayScheduleResponse, error) {
	if req.Date.IsZero() {
		s.logger.Warn("GetDaySchedule: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	s.logger.Info("GetDaySchedule: fetching schedule for %s", req.Date.Format(domain.DateFormat))

	appointments := s.calendarRepo.AppointmentsForDate(ctx, req.Date)

	result := make([]models.AppointmentInfo, 0, len(appointments))
	for _, appt := range appointments {
		result = append(result, models.FromDomainAppointment(appt))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].TimeSlot.IsBefore(result[j].TimeSlot)
	})

	s.logger.Info("GetDaySchedule: %d appointments on %s", len(result), req.Date.Format(domain.DateFormat))

	return &models.DayScheduleResponse{
		Date:         req.Date,
		Appointments: result,
	}, nil
}

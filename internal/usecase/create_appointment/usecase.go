package create_appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/RET-CalendarService/internal/domain"
)

// UseCase use case бронирования слота просмотра
type UseCase struct {
	calendarRepo CalendarRepository
	catalogRepo  CatalogRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendarRepo CalendarRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendarRepo: calendarRepo,
		catalogRepo:  catalogRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет бронирование слота.
// Календарь демонстрационный и однопоточный по записи: проверка
// доступности и вставка не атомарны, одновременные мутации здесь
// не предполагаются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: apartment=%d, date=%s, slot=%s",
		req.ApartmentID, req.Date.Format(domain.DateFormat), req.TimeSlot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что квартира есть в каталоге
	if !uc.catalogRepo.Exists(ctx, req.ApartmentID) {
		uc.logger.Warn("CreateAppointment: apartment id=%d not found", req.ApartmentID)
		return nil, ErrApartmentNotFound
	}

	// 3. Проверяем доступность слота
	if !uc.calendarRepo.IsAvailable(ctx, req.Date, req.TimeSlot) {
		uc.logger.Warn("CreateAppointment: slot %s %s already booked",
			req.Date.Format(domain.DateFormat), req.TimeSlot)
		return nil, ErrSlotNotAvailable
	}

	// 4. Создаем встречу
	appointment := domain.Appointment{
		ID:          uuid.NewString(),
		ApartmentID: req.ApartmentID,
		ClientID:    req.ClientID,
		Date:        req.Date,
		TimeSlot:    req.TimeSlot,
		CreatedAt:   uc.timeProvider.Now(),
	}

	if err := uc.calendarRepo.AddAppointment(ctx, appointment); err != nil {
		uc.logger.Error("CreateAppointment: failed to add appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to add appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: booked %s %s for apartment=%d, id=%s",
		appointment.DateKey(), appointment.TimeSlot, appointment.ApartmentID, appointment.ID)

	return &Response{
		ID:          appointment.ID,
		ApartmentID: appointment.ApartmentID,
		Date:        appointment.Date,
		TimeSlot:    appointment.TimeSlot,
		ClientID:    appointment.ClientID,
		CreatedAt:   appointment.CreatedAt,
	}, nil
}

package find_available_slots

import (
	"context"
	"sort"

	"github.com/m04kA/RET-CalendarService/internal/domain"
)

// UseCase use case поиска и оценки доступных слотов просмотра
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

// Execute выполняет поиск доступных слотов.
// Все слоты окна перечисляются в хронологическом порядке (дата, затем
// время), занятые пропускаются, свободные оцениваются и сортируются по
// убыванию оценки. Сортировка стабильная: при равных оценках сохраняется
// хронологический порядок перечисления.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAvailableSlots: apartment=%d, start=%s, days=%d",
		req.ApartmentID, req.StartDate.Format(domain.DateFormat), req.Days)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что квартира есть в каталоге
	if !uc.catalogRepo.Exists(ctx, req.ApartmentID) {
		uc.logger.Warn("FindAvailableSlots: apartment id=%d not found", req.ApartmentID)
		return nil, ErrApartmentNotFound
	}

	// 3. Определяем "сегодня" и начало окна поиска.
	// Текущая дата приходит от провайдера времени, а не из скоринга -
	// сам скоринг остается чистой функцией от состояния календаря.
	today := dateOnly(uc.timeProvider.Now())

	start := req.StartDate
	if start.IsZero() {
		start = today
	}
	start = dateOnly(start)

	// 4. Перебираем окно по дням, свободные слоты оцениваем
	scored := make([]ScoredSlot, 0, req.Days*domain.SlotsPerDay)

	for dayOffset := 0; dayOffset < req.Days; dayOffset++ {
		date := start.AddDate(0, 0, dayOffset)
		isToday := isSameDay(date, today)

		// Снимок встреч на дату читается один раз на день
		appointments := uc.calendarRepo.AppointmentsForDate(ctx, date)

		for _, slot := range domain.DaySlots() {
			// Занятые слоты (любой квартирой) не предлагаем
			if _, booked := appointments[slot]; booked {
				continue
			}

			breakdown := scoreSlot(appointments, slot, req.ApartmentID, isToday)

			scored = append(scored, ScoredSlot{
				Date:      date,
				TimeSlot:  slot,
				IsToday:   isToday,
				Score:     breakdown.Total(),
				Breakdown: breakdown,
			})
		}
	}

	// 5. Сортируем по убыванию оценки
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	uc.logger.Info("FindAvailableSlots: scored %d available slots for apartment=%d",
		len(scored), req.ApartmentID)

	return &Response{
		ApartmentID: req.ApartmentID,
		Slots:       scored,
	}, nil
}

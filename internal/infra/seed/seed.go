package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RET-CalendarService/internal/domain"
	"github.com/m04kA/RET-CalendarService/pkg/ptr"
	"github.com/m04kA/RET-CalendarService/pkg/types"
)

// Seeder наполняет календарь демонстрационными встречами.
// Берутся первые три квартиры каталога, встречи ставятся на ближайшие
// вторник, среду и четверг. Без этих данных правила оценки нечего
// демонстрировать на пустом календаре.
type Seeder struct {
	calendarRepo CalendarRepository
	catalogRepo  CatalogRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewSeeder создает новый экземпляр сидера
func NewSeeder(calendarRepo CalendarRepository, catalogRepo CatalogRepository, timeProvider TimeProvider, logger Logger) *Seeder {
	return &Seeder{
		calendarRepo: calendarRepo,
		catalogRepo:  catalogRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Run записывает демонстрационные встречи и метаданные квартир.
// Сценарий:
//   - вторник: первая квартира каталога, 10:00 и 10:30
//   - среда: третья квартира, 14:00 и 14:30
//   - четверг: вторая квартира, 10:00 и 10:30
func (s *Seeder) Run(ctx context.Context) error {
	apartments := s.catalogRepo.List(ctx)
	if len(apartments) < 3 {
		s.logger.Warn("Run: only %d apartments in catalog, expected at least 3, skipping demo seed", len(apartments))
		return nil
	}

	apt1, apt2, apt3 := apartments[0], apartments[1], apartments[2]

	today := s.timeProvider.Now()
	tuesday := nextWeekday(today, time.Tuesday)
	wednesday := nextWeekday(today, time.Wednesday)
	thursday := nextWeekday(today, time.Thursday)

	bookings := []struct {
		apartmentID int64
		date        time.Time
		slots       []types.TimeString
		clientID    string
	}{
		{apt1.ID, tuesday, []types.TimeString{"10:00", "10:30"}, "client_1"},
		{apt3.ID, wednesday, []types.TimeString{"14:00", "14:30"}, "client_3"},
		{apt2.ID, thursday, []types.TimeString{"10:00", "10:30"}, "client_2"},
	}

	for _, b := range bookings {
		for _, slot := range b.slots {
			appt := domain.Appointment{
				ID:          uuid.NewString(),
				ApartmentID: b.apartmentID,
				ClientID:    ptr.Ptr(b.clientID),
				Date:        b.date,
				TimeSlot:    slot,
				CreatedAt:   today,
			}
			if err := s.calendarRepo.AddAppointment(ctx, appt); err != nil {
				return fmt.Errorf("Run - failed to seed appointment %s %s: %w",
					b.date.Format(domain.DateFormat), slot, err)
			}
		}
	}

	// Профили доступности: первая квартира доступна всю неделю,
	// вторая только по вторникам и четвергам, третья через день
	s.calendarRepo.SetApartmentMetadata(ctx, domain.ApartmentMetadata{
		ApartmentID:   apt1.ID,
		AvailableDays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		HoursPerWeek:  35,
		ScarcityLevel: domain.ScarcityAbundant,
	})
	s.calendarRepo.SetApartmentMetadata(ctx, domain.ApartmentMetadata{
		ApartmentID:   apt2.ID,
		AvailableDays: []string{"Tuesday", "Thursday"},
		HoursPerWeek:  8,
		ScarcityLevel: domain.ScarcityCritical,
	})
	s.calendarRepo.SetApartmentMetadata(ctx, domain.ApartmentMetadata{
		ApartmentID:   apt3.ID,
		AvailableDays: []string{"Monday", "Wednesday", "Friday"},
		HoursPerWeek:  20,
		ScarcityLevel: domain.ScarcityMedium,
	})

	s.logger.Info("Run: demo calendar seeded (apartment %d on %s, apartment %d on %s, apartment %d on %s)",
		apt1.ID, tuesday.Format(domain.DateFormat),
		apt3.ID, wednesday.Format(domain.DateFormat),
		apt2.ID, thursday.Format(domain.DateFormat))

	return nil
}

// nextWeekday возвращает ближайший день недели после from.
// Если from уже нужный день недели, возвращается он сам.
func nextWeekday(from time.Time, day time.Weekday) time.Time {
	offset := (int(day) - int(from.Weekday()) + 7) % 7
	date := from.AddDate(0, 0, offset)
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

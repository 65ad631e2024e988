package calendar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/RET-CalendarService/internal/domain"
	"github.com/m04kA/RET-CalendarService/pkg/types"
)

// Repository in-memory хранилище календаря просмотров.
// Структура: дата (YYYY-MM-DD) -> слот -> встреча. Данные живут только
// в памяти процесса: календарь демонстрационный и пересоздается сидингом
// при каждом старте.
//
// Все операции синхронные; RWMutex сериализует писателей, читатели видят
// консистентный снимок. Запись, сделанная через AddAppointment, видна
// следующему же поиску слотов.
type Repository struct {
	mu           sync.RWMutex
	appointments map[string]map[types.TimeString]domain.Appointment
	metadata     map[int64]domain.ApartmentMetadata
}

// NewRepository создает новый экземпляр календаря
func NewRepository() *Repository {
	return &Repository{
		appointments: make(map[string]map[types.TimeString]domain.Appointment),
		metadata:     make(map[int64]domain.ApartmentMetadata),
	}
}

// AddAppointment записывает встречу в календарь.
// Запись поверх существующей встречи не считается ошибкой (last write
// wins) - проверка доступности остается на вызывающей стороне.
// Слоты вне канонической сетки дня отклоняются: это единственная точка
// мутации календаря, и она гарантирует, что в хранилище не попадают
// "сырые" метки времени.
func (r *Repository) AddAppointment(ctx context.Context, appt domain.Appointment) error {
	if !domain.IsCanonicalSlot(appt.TimeSlot) {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, appt.TimeSlot)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dateKey := appt.DateKey()
	if _, ok := r.appointments[dateKey]; !ok {
		r.appointments[dateKey] = make(map[types.TimeString]domain.Appointment)
	}
	r.appointments[dateKey][appt.TimeSlot] = appt

	return nil
}

// IsAvailable проверяет, что слот свободен
func (r *Repository) IsAvailable(ctx context.Context, date time.Time, slot types.TimeString) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day, ok := r.appointments[date.Format(domain.DateFormat)]
	if !ok {
		return true
	}
	_, booked := day[slot]
	return !booked
}

// AppointmentsForDate возвращает все встречи на дату (слот -> встреча).
// Возвращается копия - её можно читать без блокировки хранилища.
func (r *Repository) AppointmentsForDate(ctx context.Context, date time.Time) map[types.TimeString]domain.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day, ok := r.appointments[date.Format(domain.DateFormat)]
	if !ok {
		return map[types.TimeString]domain.Appointment{}
	}

	result := make(map[types.TimeString]domain.Appointment, len(day))
	for slot, appt := range day {
		result[slot] = appt
	}
	return result
}

// SetApartmentMetadata создает или обновляет метаданные квартиры.
// Названия дней недели не валидируются.
func (r *Repository) SetApartmentMetadata(ctx context.Context, meta domain.ApartmentMetadata) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.metadata[meta.ApartmentID] = meta
}

// GetApartmentMetadata возвращает метаданные квартиры
func (r *Repository) GetApartmentMetadata(ctx context.Context, apartmentID int64) (*domain.ApartmentMetadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, ok := r.metadata[apartmentID]
	if !ok {
		return nil, ErrMetadataNotFound
	}
	return &meta, nil
}

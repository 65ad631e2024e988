package find_available_slots

import (
	"github.com/m04kA/RET-CalendarService/internal/domain"
	"github.com/m04kA/RET-CalendarService/pkg/types"
)

// Анализ дня строится поверх снимка встреч на одну дату
// (слот -> встреча), который выдает календарь.

// adjacentAppointments возвращает встречи в соседних слотах дневной сетки
// (предыдущем и следующем), но только если они относятся к той же квартире.
// Соседство берется по полной сетке дня, границы периодов не учитываются.
// Для крайних слотов дня соответствующая сторона - nil.
func adjacentAppointments(
	appointments map[types.TimeString]domain.Appointment,
	slot types.TimeString,
	apartmentID int64,
) (prev, next *domain.Appointment) {
	slots := domain.DaySlots()
	index := domain.SlotIndex(slot)
	if index < 0 {
		return nil, nil
	}

	if index > 0 {
		if appt, ok := appointments[slots[index-1]]; ok && appt.BelongsTo(apartmentID) {
			prev = &appt
		}
	}

	if index < len(slots)-1 {
		if appt, ok := appointments[slots[index+1]]; ok && appt.BelongsTo(apartmentID) {
			next = &appt
		}
	}

	return prev, next
}

// hasAnyBooking проверяет, что в периоде есть хотя бы одна встреча
// (любой квартиры), не считая excludeSlot
func hasAnyBooking(
	appointments map[types.TimeString]domain.Appointment,
	period domain.Period,
	excludeSlot *types.TimeString,
) bool {
	for _, slot := range domain.PeriodSlots(period) {
		if excludeSlot != nil && slot == *excludeSlot {
			continue
		}
		if _, ok := appointments[slot]; ok {
			return true
		}
	}
	return false
}

// isPeriodEmpty проверяет, что в периоде нет ни одной встречи
func isPeriodEmpty(appointments map[types.TimeString]domain.Appointment, period domain.Period) bool {
	return !hasAnyBooking(appointments, period, nil)
}

// hasOtherApartmentBooking проверяет, что в периоде есть встреча по другой
// квартире, не считая excludeSlot
func hasOtherApartmentBooking(
	appointments map[types.TimeString]domain.Appointment,
	period domain.Period,
	apartmentID int64,
	excludeSlot *types.TimeString,
) bool {
	for _, slot := range domain.PeriodSlots(period) {
		if excludeSlot != nil && slot == *excludeSlot {
			continue
		}
		if appt, ok := appointments[slot]; ok && !appt.BelongsTo(apartmentID) {
			return true
		}
	}
	return false
}

// hasDifferentApartmentBefore проверяет, что раньше в том же периоде
// (сканируя назад от слота до границы периода) есть встреча по другой
// квартире
func hasDifferentApartmentBefore(
	appointments map[types.TimeString]domain.Appointment,
	slot types.TimeString,
	apartmentID int64,
) bool {
	slots := domain.DaySlots()
	index := domain.SlotIndex(slot)
	if index < 0 {
		return false
	}

	period := domain.PeriodOf(slot)
	for i := index - 1; i >= 0; i-- {
		if domain.PeriodOf(slots[i]) != period {
			break
		}
		if appt, ok := appointments[slots[i]]; ok && !appt.BelongsTo(apartmentID) {
			return true
		}
	}
	return false
}

// isIsolated проверяет, что слот "зажат" между встречами: сканируя назад
// в пределах периода находится занятый слот И сканируя вперед - тоже.
// Срабатывает только когда заняты обе стороны. Исторически правило
// называется "изолированный слот", хотя фактически оно помечает слоты
// между двумя визитами - поведение сохранено как в эталонном скоринге.
func isIsolated(appointments map[types.TimeString]domain.Appointment, slot types.TimeString) bool {
	slots := domain.DaySlots()
	index := domain.SlotIndex(slot)
	if index < 0 {
		return false
	}

	period := domain.PeriodOf(slot)

	hasBefore := false
	for i := index - 1; i >= 0; i-- {
		if domain.PeriodOf(slots[i]) != period {
			break
		}
		if _, ok := appointments[slots[i]]; ok {
			hasBefore = true
			break
		}
	}

	hasAfter := false
	for i := index + 1; i < len(slots); i++ {
		if domain.PeriodOf(slots[i]) != period {
			break
		}
		if _, ok := appointments[slots[i]]; ok {
			hasAfter = true
			break
		}
	}

	return hasBefore && hasAfter
}

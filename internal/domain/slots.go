package domain

import "github.com/m04kA/RET-CalendarService/pkg/types"

// daySlots канонический список слотов рабочего дня. Считается один раз
// при старте процесса, порядок строго хронологический.
var daySlots = buildDaySlots()

func buildDaySlots() []types.TimeString {
	slots := make([]types.TimeString, 0, SlotsPerDay)

	current := MorningStart
	for current.IsBefore(AfternoonEnd) {
		// Обеденный перерыв [13:00, 14:00) пропускаем
		if !current.IsBefore(LunchStart) && current.IsBefore(AfternoonStart) {
			current = AfternoonStart
			continue
		}

		slots = append(slots, current)

		next, err := current.AddMinutes(SlotDurationMinutes)
		if err != nil {
			// Сетка заканчивается в 18:00, выхода за сутки быть не может
			break
		}
		current = next
	}

	return slots
}

// DaySlots returns the canonical ordered slot sequence of a working day:
// 09:00-12:30 and 14:00-17:30 with a 30-minute step, 16 slots total.
// The sequence is identical for every date. Callers must not mutate the
// returned slice.
func DaySlots() []types.TimeString {
	return daySlots
}

// SlotIndex returns the position of the slot in the day sequence,
// or -1 if the label is not a canonical slot.
func SlotIndex(slot types.TimeString) int {
	for i, s := range daySlots {
		if s == slot {
			return i
		}
	}
	return -1
}

// IsCanonicalSlot returns true if the label belongs to the day grid
func IsCanonicalSlot(slot types.TimeString) bool {
	return SlotIndex(slot) >= 0
}

// PeriodOf maps a slot to its half-day period: morning is [09:00, 13:00),
// afternoon is [14:00, 18:00]. Anything else is PeriodUnknown.
func PeriodOf(slot types.TimeString) Period {
	switch {
	case !slot.IsBefore(MorningStart) && slot.IsBefore(LunchStart):
		return PeriodMorning
	case !slot.IsBefore(AfternoonStart) && !slot.IsAfter(AfternoonEnd):
		return PeriodAfternoon
	default:
		return PeriodUnknown
	}
}

// PeriodSlots returns the canonical slots belonging to the given period
func PeriodSlots(period Period) []types.TimeString {
	slots := make([]types.TimeString, 0, SlotsPerDay/2)
	for _, s := range daySlots {
		if PeriodOf(s) == period {
			slots = append(slots, s)
		}
	}
	return slots
}

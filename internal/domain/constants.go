package domain

import "github.com/m04kA/RET-CalendarService/pkg/types"

// Period половина рабочего дня (утро/день), разделенная обеденным перерывом
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodUnknown   Period = "unknown"
)

// Рабочая сетка дня: слоты по 30 минут с 09:00 до 18:00,
// обеденный перерыв 13:00-14:00 не бронируется.
const (
	MorningStart   types.TimeString = "09:00"
	LunchStart     types.TimeString = "13:00"
	AfternoonStart types.TimeString = "14:00"
	AfternoonEnd   types.TimeString = "18:00"

	SlotDurationMinutes = 30
	SlotsPerDay         = 16
)

// Якорные слоты. Зафиксированы отдельно от начала блоков: утренний якорь
// 09:30 (не 09:00) и дневной 16:00 (не 14:00) - так задано в правилах
// скоринга, а не выводится из сетки.
const (
	FirstMorningSlot   types.TimeString = "09:30"
	FirstAfternoonSlot types.TimeString = "16:00"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

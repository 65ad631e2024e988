package find_available_slots

import (
	"github.com/m04kA/RET-CalendarService/internal/domain"
	"github.com/m04kA/RET-CalendarService/pkg/types"
)

// isAnchorSlot проверяет, что слот является якорным (первый слот утра
// или дня по правилам скоринга: 09:30 и 16:00)
func isAnchorSlot(slot types.TimeString) bool {
	return slot == domain.FirstMorningSlot || slot == domain.FirstAfternoonSlot
}

// scoreSlot оценивает один свободный слот для квартиры по восьми правилам.
// Каждое правило независимо вносит либо 0, либо свой фиксированный вес;
// взаимных исключений между правилами нет. Итоговая оценка - сумма
// вкладов (Breakdown.Total()).
func scoreSlot(
	appointments map[types.TimeString]domain.Appointment,
	slot types.TimeString,
	apartmentID int64,
	isToday bool,
) domain.ScoreBreakdown {
	var breakdown domain.ScoreBreakdown

	period := domain.PeriodOf(slot)

	// Cluster Perfecto: +100 - слот примыкает к визиту той же квартиры
	prev, next := adjacentAppointments(appointments, slot, apartmentID)
	if prev != nil || next != nil {
		breakdown.ClusterPerfecto = domain.ScoreClusterPerfecto
	}

	// Urgencia HOY: +50 - слот на сегодня
	if isToday {
		breakdown.UrgenciaHoy = domain.ScoreUrgenciaHoy
	}

	// Efecto Ancla: +20 - якорный слот (09:30 или 16:00)
	if isAnchorSlot(slot) {
		breakdown.EfectoAncla = domain.ScoreEfectoAncla
	}

	// Bloque Limpio: +10 - в периоде слота еще нет ни одной встречи
	if isPeriodEmpty(appointments, period) {
		breakdown.BloqueLimpio = domain.ScoreBloqueLimpio
	}

	// Cambio de Turno: -10 - первый дневной якорь, а утром уже есть
	// визит по другой квартире (смена объекта после обеда)
	if slot == domain.FirstAfternoonSlot &&
		hasOtherApartmentBooking(appointments, domain.PeriodMorning, apartmentID, nil) {
		breakdown.CambioTurno = domain.ScoreCambioTurno
	}

	// Cambio Intra-Turno: -50 - раньше в том же периоде есть визит по
	// другой квартире, и слот не якорный
	if hasDifferentApartmentBefore(appointments, slot, apartmentID) && !isAnchorSlot(slot) {
		breakdown.CambioIntraTurno = domain.ScoreCambioIntraTurno
	}

	// Romper el Dia: -80 - слот зажат между встречами внутри периода
	if isIsolated(appointments, slot) {
		breakdown.RomperDia = domain.ScoreRomperDia
	}

	// Canibalizacion: -200 - зарезервировано. Правило требует метаданных
	// эксклюзивности квартиры, которых пока нет, поэтому вклад всегда 0.

	return breakdown
}

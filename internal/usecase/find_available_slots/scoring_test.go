package find_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/RET-CalendarService/internal/domain"
	"github.com/m04kA/RET-CalendarService/pkg/types"
)

func TestScoreSlot_EmptyDay(t *testing.T) {
	// Пустой календарь: каждый слот получает bloque_limpio, якоря -
	// дополнительно efecto_ancla, больше ничего не срабатывает
	for _, slot := range domain.DaySlots() {
		breakdown := scoreSlot(day(nil), slot, 1001, false)

		assert.Equal(t, domain.ScoreBloqueLimpio, breakdown.BloqueLimpio, "slot %s", slot)
		assert.Zero(t, breakdown.ClusterPerfecto, "slot %s", slot)
		assert.Zero(t, breakdown.UrgenciaHoy, "slot %s", slot)
		assert.Zero(t, breakdown.CambioTurno, "slot %s", slot)
		assert.Zero(t, breakdown.CambioIntraTurno, "slot %s", slot)
		assert.Zero(t, breakdown.RomperDia, "slot %s", slot)
		assert.Zero(t, breakdown.Canibalizacion, "slot %s", slot)

		if slot == "09:30" || slot == "16:00" {
			assert.Equal(t, domain.ScoreEfectoAncla, breakdown.EfectoAncla, "slot %s", slot)
			assert.Equal(t, 30, breakdown.Total(), "slot %s", slot)
		} else {
			assert.Zero(t, breakdown.EfectoAncla, "slot %s", slot)
			assert.Equal(t, 10, breakdown.Total(), "slot %s", slot)
		}
	}
}

func TestScoreSlot_UrgenciaHoy(t *testing.T) {
	breakdown := scoreSlot(day(nil), "10:00", 1001, true)
	assert.Equal(t, domain.ScoreUrgenciaHoy, breakdown.UrgenciaHoy)
	// urgencia + bloque
	assert.Equal(t, 60, breakdown.Total())
}

func TestScoreSlot_ClusterPerfecto(t *testing.T) {
	appointments := day(map[types.TimeString]int64{"10:00": 1001})

	before := scoreSlot(appointments, "09:30", 1001, false)
	after := scoreSlot(appointments, "10:30", 1001, false)

	assert.Equal(t, domain.ScoreClusterPerfecto, before.ClusterPerfecto)
	assert.Equal(t, domain.ScoreClusterPerfecto, after.ClusterPerfecto)

	// Для другой квартиры кластера нет, зато есть смена объекта
	other := scoreSlot(appointments, "10:30", 1004, false)
	assert.Zero(t, other.ClusterPerfecto)
	assert.Equal(t, domain.ScoreCambioIntraTurno, other.CambioIntraTurno)
}

func TestScoreSlot_CrossApartmentSandwich(t *testing.T) {
	// Квартира F занимает 09:30 и 10:30; для квартиры E слот 10:00
	// зажат между чужими визитами и идет после чужого визита
	appointments := day(map[types.TimeString]int64{
		"09:30": 1003,
		"10:30": 1003,
	})

	breakdown := scoreSlot(appointments, "10:00", 1001, false)

	assert.Equal(t, domain.ScoreRomperDia, breakdown.RomperDia)
	assert.Equal(t, domain.ScoreCambioIntraTurno, breakdown.CambioIntraTurno)
	assert.Zero(t, breakdown.BloqueLimpio)
	assert.Zero(t, breakdown.ClusterPerfecto)
	assert.Equal(t, -130, breakdown.Total())
}

func TestScoreSlot_CambioTurno(t *testing.T) {
	appointments := day(map[types.TimeString]int64{"10:00": 1003})

	// 16:00 - дневной якорь: штраф за смену объекта после обеда
	// плюс бонусы якоря и чистого дневного блока
	breakdown := scoreSlot(appointments, "16:00", 1001, false)
	assert.Equal(t, domain.ScoreCambioTurno, breakdown.CambioTurno)
	assert.Equal(t, domain.ScoreEfectoAncla, breakdown.EfectoAncla)
	assert.Equal(t, domain.ScoreBloqueLimpio, breakdown.BloqueLimpio)
	assert.Equal(t, 20, breakdown.Total())

	// Для той же квартиры смены объекта нет
	same := scoreSlot(appointments, "16:00", 1003, false)
	assert.Zero(t, same.CambioTurno)

	// Не-якорные дневные слоты под это правило не попадают
	nonAnchor := scoreSlot(appointments, "14:00", 1001, false)
	assert.Zero(t, nonAnchor.CambioTurno)
}

func TestScoreSlot_AnchorSkipsIntraTurnoPenalty(t *testing.T) {
	// Чужой визит в 09:00: слот 09:30 якорный, поэтому штрафа
	// cambio_intra_turno нет, а 10:00 его получает
	appointments := day(map[types.TimeString]int64{"09:00": 1003})

	anchor := scoreSlot(appointments, "09:30", 1001, false)
	assert.Zero(t, anchor.CambioIntraTurno)
	assert.Equal(t, domain.ScoreEfectoAncla, anchor.EfectoAncla)

	regular := scoreSlot(appointments, "10:00", 1001, false)
	assert.Equal(t, domain.ScoreCambioIntraTurno, regular.CambioIntraTurno)
}

func TestScoreSlot_ClusterAndIntraTurnoCoTrigger(t *testing.T) {
	// Свой визит в 11:00, чужой раньше в 09:30: слот 10:30 одновременно
	// получает бонус кластера и штраф за смену объекта
	appointments := day(map[types.TimeString]int64{
		"09:30": 1003,
		"11:00": 1001,
	})

	breakdown := scoreSlot(appointments, "10:30", 1001, false)

	assert.Equal(t, domain.ScoreClusterPerfecto, breakdown.ClusterPerfecto)
	assert.Equal(t, domain.ScoreCambioIntraTurno, breakdown.CambioIntraTurno)
	// Зажат между 09:30 и 11:00
	assert.Equal(t, domain.ScoreRomperDia, breakdown.RomperDia)
	assert.Equal(t, 100-50-80, breakdown.Total())
}

func TestScoreSlot_TotalEqualsBreakdownSum(t *testing.T) {
	appointments := day(map[types.TimeString]int64{
		"09:30": 1003,
		"10:30": 1001,
		"14:00": 1004,
	})

	for _, slot := range domain.DaySlots() {
		for _, apartmentID := range []int64{1001, 1003, 1004, 9999} {
			breakdown := scoreSlot(appointments, slot, apartmentID, true)
			sum := breakdown.ClusterPerfecto + breakdown.UrgenciaHoy +
				breakdown.EfectoAncla + breakdown.BloqueLimpio +
				breakdown.CambioTurno + breakdown.CambioIntraTurno +
				breakdown.RomperDia + breakdown.Canibalizacion
			assert.Equal(t, sum, breakdown.Total(), "slot %s apartment %d", slot, apartmentID)
		}
	}
}

func TestScoreSlot_UnknownApartment(t *testing.T) {
	// Квартира без единого визита: кластеров нет, скоринг работает
	// как для пустой истории
	appointments := day(map[types.TimeString]int64{"10:00": 1001})

	breakdown := scoreSlot(appointments, "10:30", 777, false)
	assert.Zero(t, breakdown.ClusterPerfecto)
	assert.Equal(t, domain.ScoreCambioIntraTurno, breakdown.CambioIntraTurno)
}

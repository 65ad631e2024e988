package check_schedule

import (
	"time"

	"github.com/m04kA/RET-CalendarService/internal/domain"
	findAvailableSlots "github.com/m04kA/RET-CalendarService/internal/usecase/find_available_slots"
)

// CheckScheduleRequest HTTP request model
type CheckScheduleRequest struct {
	ApartmentID int64  `json:"apartment_id"`
	StartDate   string `json:"start_date,omitempty"`
	Days        *int   `json:"days,omitempty"`
}

// CheckScheduleResponse HTTP response model
type CheckScheduleResponse struct {
	ApartmentID int64        `json:"apartment_id"`
	Slots       []ScoredSlot `json:"slots"`
}

// ScoredSlot модель оцененного слота в HTTP ответе
type ScoredSlot struct {
	Date      string         `json:"date"`
	TimeSlot  string         `json:"time_slot"`
	IsToday   bool           `json:"is_today"`
	Score     int            `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// ScoreBreakdown вклад каждого правила в оценку слота
type ScoreBreakdown struct {
	ClusterPerfecto  int `json:"cluster_perfecto"`
	UrgenciaHoy      int `json:"urgencia_hoy"`
	EfectoAncla      int `json:"efecto_ancla"`
	BloqueLimpio     int `json:"bloque_limpio"`
	CambioTurno      int `json:"cambio_turno"`
	CambioIntraTurno int `json:"cambio_intra_turno"`
	RomperDia        int `json:"romper_dia"`
	Canibalizacion   int `json:"canibalizacion"`
}

// ToUseCaseRequest создает запрос use case из HTTP модели.
// days берется из запроса, иначе из дефолта конфигурации.
func ToUseCaseRequest(req *CheckScheduleRequest, defaultDays int) (*findAvailableSlots.Request, error) {
	var startDate time.Time
	if req.StartDate != "" {
		parsed, err := time.Parse(domain.DateFormat, req.StartDate)
		if err != nil {
			return nil, err
		}
		startDate = parsed
	}

	days := defaultDays
	if req.Days != nil {
		days = *req.Days
	}

	return &findAvailableSlots.Request{
		ApartmentID: req.ApartmentID,
		StartDate:   startDate,
		Days:        days,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findAvailableSlots.Response) *CheckScheduleResponse {
	slots := make([]ScoredSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = ScoredSlot{
			Date:     slot.Date.Format(domain.DateFormat),
			TimeSlot: slot.TimeSlot.String(),
			IsToday:  slot.IsToday,
			Score:    slot.Score,
			Breakdown: ScoreBreakdown{
				ClusterPerfecto:  slot.Breakdown.ClusterPerfecto,
				UrgenciaHoy:      slot.Breakdown.UrgenciaHoy,
				EfectoAncla:      slot.Breakdown.EfectoAncla,
				BloqueLimpio:     slot.Breakdown.BloqueLimpio,
				CambioTurno:      slot.Breakdown.CambioTurno,
				CambioIntraTurno: slot.Breakdown.CambioIntraTurno,
				RomperDia:        slot.Breakdown.RomperDia,
				Canibalizacion:   slot.Breakdown.Canibalizacion,
			},
		}
	}

	return &CheckScheduleResponse{
		ApartmentID: resp.ApartmentID,
		Slots:       slots,
	}
}

package domain

// Scoring rule weights. A rule contributes either 0 or its full weight.
const (
	ScoreClusterPerfecto  = 100 // adjacent to a visit of the same apartment
	ScoreUrgenciaHoy      = 50  // slot is today
	ScoreEfectoAncla      = 20  // first slot of the morning/afternoon block
	ScoreBloqueLimpio     = 10  // the whole block is still empty
	ScoreCambioTurno      = -10 // switching apartment right after lunch
	ScoreCambioIntraTurno = -50 // switching apartment mid-block
	ScoreRomperDia        = -80 // slot sandwiched between existing visits
	ScoreCanibalizacion   = -200
)

// ScoreBreakdown signed per-rule contributions to a slot score.
// Invariant: a slot's total score equals the sum of all fields.
type ScoreBreakdown struct {
	ClusterPerfecto  int
	UrgenciaHoy      int
	EfectoAncla      int
	BloqueLimpio     int
	CambioTurno      int
	CambioIntraTurno int
	RomperDia        int
	// Canibalizacion is reserved: the weight exists but the trigger needs
	// apartment exclusivity metadata that is not wired in yet, so the
	// field stays 0.
	Canibalizacion int
}

// Total returns the sum of all rule contributions
func (b ScoreBreakdown) Total() int {
	return b.ClusterPerfecto +
		b.UrgenciaHoy +
		b.EfectoAncla +
		b.BloqueLimpio +
		b.CambioTurno +
		b.CambioIntraTurno +
		b.RomperDia +
		b.Canibalizacion
}

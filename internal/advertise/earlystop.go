package advertise

const (
	// restartHoldoffFrames suppresses the early-stop check right after a level
	// restart so fresh telemetry can accumulate.
	restartHoldoffFrames = 300
	// earlyStopFloorFrames is the minimum session length before any early
	// stop can trigger.
	earlyStopFloorFrames = 600
	// earlyStopMinFrames gates the two-conditions stop.
	earlyStopMinFrames = 900
	// earlyStopHardCeiling ends the session unconditionally.
	earlyStopHardCeiling = 1800
)

// StopInputs is the per-frame snapshot the evaluator judges.
type StopInputs struct {
	CenterTime       float64 // seconds accumulated within the center radius
	OscillationCount int
	ApproachCount    int
	AvoidedCount     int
	CoverageRatio    float64
	RestartCount     int
	LastRestartFrame uint64
}

// EarlyStopEvaluator decides when a session has gathered enough evidence to
// end before the hard ceiling. Each of four defect conditions counts toward
// the stop; two or more conditions past the minimum frame count, or the hard
// ceiling alone, end the session.
type EarlyStopEvaluator struct {
	cfg          Config
	centerLogged bool
	lastMet      int
}

func NewEarlyStopEvaluator(cfg Config) *EarlyStopEvaluator {
	return &EarlyStopEvaluator{cfg: cfg}
}

// Evaluate returns whether the session should stop now, plus a CenterDwelling
// pattern the first frame the center-dwelling condition is met. Within the
// restart holdoff nothing is evaluated, including the hard ceiling.
func (e *EarlyStopEvaluator) Evaluate(frame uint64, in StopInputs) (bool, *ProblemPattern) {
	if in.RestartCount > 0 && frame-in.LastRestartFrame < restartHoldoffFrames {
		return false, nil
	}
	if frame < earlyStopFloorFrames {
		return false, nil
	}

	elapsed := float64(frame) / e.cfg.FrameRate
	if elapsed < 1 {
		elapsed = 1
	}
	centerRatio := in.CenterTime / elapsed
	// Oscillating frames per elapsed second; a hard jitterer scores well
	// above 1 here, unlike the per-frame ratio in the final report.
	vibrationRate := float64(in.OscillationCount) / elapsed
	approaches := in.ApproachCount
	if approaches < 1 {
		approaches = 1
	}
	avoidanceRate := float64(in.AvoidedCount) / float64(approaches)

	met := 0
	var pattern *ProblemPattern

	if centerRatio > 0.7 {
		met++
		if !e.centerLogged {
			e.centerLogged = true
			pattern = &ProblemPattern{
				Kind:        PatternCenterDwelling,
				Position:    e.cfg.Center(),
				TimeSeconds: in.CenterTime,
				Description: "agent is loitering near the arena center instead of roaming",
			}
		}
	}
	if vibrationRate > 0.5 {
		met++
	}
	if avoidanceRate < 0.2 && in.ApproachCount > 5 {
		met++
	}
	if in.CoverageRatio > 0.25 {
		met++
	}
	e.lastMet = met

	stop := (met >= 2 && frame >= earlyStopMinFrames) || frame >= earlyStopHardCeiling
	return stop, pattern
}

// ConditionsMet returns how many stop conditions held at the last evaluation.
func (e *EarlyStopEvaluator) ConditionsMet() int {
	return e.lastMet
}

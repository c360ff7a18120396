package advertise

import (
	"fmt"
	"math"
)

const (
	// restartJumpDistance: a per-frame displacement beyond this is treated as
	// a teleport rather than movement.
	restartJumpDistance = 100.0
	// restartSpawnRadius: a teleport landing this close to the spawn point is
	// classified as a level restart.
	restartSpawnRadius = 20.0
	// minSessionFrames is the floor below which no report is produced.
	minSessionFrames = 300
)

// TelemetryRecorder ingests one agent position per frame and runs every
// analyzer over the stream. It owns the position history, the detectors, the
// coverage grid, and the early-stop evaluator, and accumulates the raw sums
// the final report is computed from.
type TelemetryRecorder struct {
	cfg     Config
	history *PositionHistory
	osc     *OscillationDetector
	threat  *ThreatAnalyzer
	cover   *CoverageTracker
	stopper *EarlyStopEvaluator
	log     *SessionLog

	centerTime       float64
	restartCount     int
	lastRestartFrame uint64
	nearestDistances []float64
	problems         []ProblemPattern
}

// NewTelemetryRecorder wires a recorder from the config. The log may be nil;
// in that case an unattached log is created so callers never need nil checks.
func NewTelemetryRecorder(cfg Config, log *SessionLog) *TelemetryRecorder {
	if log == nil {
		log = NewSessionLog(nil)
	}
	return &TelemetryRecorder{
		cfg:     cfg,
		history: NewPositionHistory(cfg.HistoryLength),
		osc:     NewOscillationDetector(cfg),
		threat:  NewThreatAnalyzer(cfg),
		cover:   NewCoverageTracker(cfg),
		stopper: NewEarlyStopEvaluator(cfg),
		log:     log,
	}
}

// Update ingests the agent position for one frame along with the live enemy
// positions. It returns true when the early-stop evaluator decides the
// session has gathered enough evidence and should end.
func (r *TelemetryRecorder) Update(x, y float64, enemies []Point, frame uint64) bool {
	prev, hadPrev := r.history.Latest()
	r.history.Push(PositionSample{X: x, Y: y, Frame: frame})

	if hadPrev {
		jump := math.Hypot(x-prev.X, y-prev.Y)
		spawn := r.cfg.SpawnPoint()
		if jump > restartJumpDistance &&
			(Point{X: x, Y: y}).Dist(spawn) < restartSpawnRadius {
			r.restartCount++
			r.lastRestartFrame = frame
			r.log.Add(frame, "session", "restart",
				fmt.Sprintf("teleport of %.0f landed at spawn", jump), jump)
		}
	}

	center := r.cfg.Center()
	if (Point{X: x, Y: y}).Dist(center) < r.cfg.CenterRadius {
		r.centerTime += 1 / r.cfg.FrameRate
	}

	if p := r.osc.Update(r.history); p != nil {
		r.recordProblem(frame, *p)
	}
	if p := r.threat.Update(r.history, enemies); p != nil {
		r.recordProblem(frame, *p)
	}

	r.cover.Update(x, y)

	if len(enemies) > 0 {
		best := math.MaxFloat64
		for _, e := range enemies {
			if d := (Point{X: x, Y: y}).Dist(e); d < best {
				best = d
			}
		}
		r.nearestDistances = append(r.nearestDistances, best)
	}

	stop, p := r.stopper.Evaluate(frame, StopInputs{
		CenterTime:       r.centerTime,
		OscillationCount: r.osc.Count(),
		ApproachCount:    r.threat.ApproachCount(),
		AvoidedCount:     r.threat.AvoidedCount(),
		CoverageRatio:    r.cover.CoverageRatio(),
		RestartCount:     r.restartCount,
		LastRestartFrame: r.lastRestartFrame,
	})
	if p != nil {
		r.recordProblem(frame, *p)
	}
	if stop {
		r.log.Add(frame, "stop", "early_stop",
			fmt.Sprintf("%d conditions met", r.stopper.ConditionsMet()),
			float64(r.stopper.ConditionsMet()))
	}
	return stop
}

func (r *TelemetryRecorder) recordProblem(frame uint64, p ProblemPattern) {
	r.problems = append(r.problems, p)
	r.log.Add(frame, "analyze", p.Kind.String(), p.Description, p.TimeSeconds)
}

// Problems returns the defects recorded so far, in detection order.
func (r *TelemetryRecorder) Problems() []ProblemPattern {
	return r.problems
}

// RestartCount returns how many level restarts were detected.
func (r *TelemetryRecorder) RestartCount() int {
	return r.restartCount
}

// Log returns the session log the recorder writes to.
func (r *TelemetryRecorder) Log() *SessionLog {
	return r.log
}

// Finalize computes the session report. It fails if the session ran for fewer
// than 300 frames, too short for any of the ratios to be meaningful.
func (r *TelemetryRecorder) Finalize(totalFrames uint64) (*AnalysisResult, error) {
	if totalFrames < minSessionFrames {
		return nil, fmt.Errorf("session too short: %d frames, need at least %d",
			totalFrames, uint64(minSessionFrames))
	}

	elapsed := float64(totalFrames) / r.cfg.FrameRate
	centerRatio := clamp01(r.centerTime / elapsed)
	vibrationRatio := clamp01(float64(r.osc.Count()) / float64(totalFrames))
	avoidanceRate := clamp01(r.threat.AvoidanceRate())

	center := r.cfg.Center()
	sumCenter := 0.0
	samples := r.history.Recent(r.history.Len())
	for _, s := range samples {
		sumCenter += (Point{X: s.X, Y: s.Y}).Dist(center)
	}
	avgCenterDist := 0.0
	if len(samples) > 0 {
		avgCenterDist = sumCenter / float64(len(samples))
	}

	avgNearest := 0.0
	if len(r.nearestDistances) > 0 {
		sum := 0.0
		for _, d := range r.nearestDistances {
			sum += d
		}
		avgNearest = sum / float64(len(r.nearestDistances))
	}

	positions := make([]Point, len(samples))
	for i, s := range samples {
		positions[i] = Point{X: s.X, Y: s.Y}
	}

	problems := make([]ProblemPattern, len(r.problems))
	copy(problems, r.problems)

	return &AnalysisResult{
		CenterTimeRatio:       centerRatio,
		VibrationRatio:        vibrationRatio,
		EnemyAvoidanceRate:    avoidanceRate,
		AvgDistanceFromCenter: avgCenterDist,
		AvgDistanceToEnemy:    avgNearest,
		Heatmap:               r.cover.HeatmapCopy(),
		Problems:              problems,
		PositionHistory:       positions,
	}, nil
}

package advertise

import (
	"fmt"
	"math"
)

const (
	// oscillationWindow is how many trailing samples the detector inspects.
	oscillationWindow = 10
	// oscillationNoiseFloor discards displacement vectors too short to carry
	// direction information.
	oscillationNoiseFloor = 0.1
	// oscillationMinReversals is how many sign flips within the window flag
	// the motion as oscillating.
	oscillationMinReversals = 3
)

// OscillationDetector flags "jittering in place": frequent direction reversals
// at low speed within a short trailing window.
type OscillationDetector struct {
	cfg         Config
	oscillating bool
	count       int // qualifying frames, feeds the vibration_ratio statistic
	reported    bool
}

func NewOscillationDetector(cfg Config) *OscillationDetector {
	return &OscillationDetector{cfg: cfg}
}

// Update inspects the trailing window of the history. On the transition from
// non-oscillating to oscillating it returns a Vibration pattern, at most once
// per session, though the internal counter keeps incrementing every
// qualifying frame. With fewer than 10 samples it is a no-op.
func (d *OscillationDetector) Update(h *PositionHistory) *ProblemPattern {
	if h.Len() < oscillationWindow {
		return nil
	}

	window := h.Recent(oscillationWindow)
	reversals := 0
	for i := 2; i < len(window); i++ {
		p1, p2, p3 := window[i-2], window[i-1], window[i]
		v1x, v1y := p2.X-p1.X, p2.Y-p1.Y
		v2x, v2y := p3.X-p2.X, p3.Y-p2.Y

		if math.Hypot(v1x, v1y) < oscillationNoiseFloor ||
			math.Hypot(v2x, v2y) < oscillationNoiseFloor {
			continue
		}
		if v1x*v2x+v1y*v2y < 0 {
			reversals++
		}
	}

	vx, vy := h.Velocity()
	speed := math.Hypot(vx, vy)

	if reversals >= oscillationMinReversals && speed < d.cfg.VelocityThreshold {
		wasOscillating := d.oscillating
		d.oscillating = true
		d.count++

		if !wasOscillating && !d.reported {
			d.reported = true
			latest, _ := h.Latest()
			return &ProblemPattern{
				Kind:        PatternVibration,
				Position:    Point{X: latest.X, Y: latest.Y},
				TimeSeconds: float64(latest.Frame) / d.cfg.FrameRate,
				Description: fmt.Sprintf(
					"small-amplitude oscillation detected (speed %.1f); movement looks indecisive", speed),
			}
		}
		return nil
	}

	d.oscillating = false
	return nil
}

// Oscillating reports whether the latest window qualified.
func (d *OscillationDetector) Oscillating() bool {
	return d.oscillating
}

// Count returns how many frames qualified as oscillating so far.
func (d *OscillationDetector) Count() int {
	return d.count
}

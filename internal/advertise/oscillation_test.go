package advertise

import "testing"

func TestOscillationDetectsJitter(t *testing.T) {
	cfg := DefaultConfig()
	d := NewOscillationDetector(cfg)
	h := NewPositionHistory(cfg.HistoryLength)

	// Bounce between two points 1.5 units apart: every consecutive pair of
	// displacement vectors reverses, and the speed stays under the threshold.
	var pattern *ProblemPattern
	for i := 0; i < 12; i++ {
		x := 0.0
		if i%2 == 1 {
			x = 1.5
		}
		h.Push(PositionSample{X: x, Y: 300, Frame: uint64(i)})
		if p := d.Update(h); p != nil {
			pattern = p
		}
	}

	if !d.Oscillating() {
		t.Fatal("Oscillating = false after 12 frames of jitter")
	}
	if pattern == nil {
		t.Fatal("no vibration pattern reported")
	}
	if pattern.Kind != PatternVibration {
		t.Fatalf("pattern.Kind = %v, want vibration", pattern.Kind)
	}
	if d.Count() == 0 {
		t.Fatal("Count = 0, want > 0")
	}
}

func TestOscillationReportsOnlyOnce(t *testing.T) {
	cfg := DefaultConfig()
	d := NewOscillationDetector(cfg)
	h := NewPositionHistory(cfg.HistoryLength)

	reports := 0
	for i := 0; i < 60; i++ {
		x := 0.0
		if i%2 == 1 {
			x = 1.5
		}
		h.Push(PositionSample{X: x, Y: 300, Frame: uint64(i)})
		if d.Update(h) != nil {
			reports++
		}
	}
	if reports != 1 {
		t.Fatalf("vibration reported %d times, want exactly 1", reports)
	}
	if d.Count() < 40 {
		t.Fatalf("Count = %d, want the counter to keep growing past the report", d.Count())
	}
}

func TestOscillationIgnoresSteadyMovement(t *testing.T) {
	cfg := DefaultConfig()
	d := NewOscillationDetector(cfg)
	h := NewPositionHistory(cfg.HistoryLength)

	for i := 0; i < 30; i++ {
		h.Push(PositionSample{X: float64(i) * 5, Y: 300, Frame: uint64(i)})
		if p := d.Update(h); p != nil {
			t.Fatalf("steady movement flagged as vibration at frame %d: %v", i, p.Description)
		}
	}
	if d.Oscillating() {
		t.Fatal("Oscillating = true for a straight walk")
	}
}

func TestOscillationIgnoresSubNoiseWobble(t *testing.T) {
	cfg := DefaultConfig()
	d := NewOscillationDetector(cfg)
	h := NewPositionHistory(cfg.HistoryLength)

	// Displacements below the noise floor carry no direction information and
	// must not count as reversals.
	for i := 0; i < 30; i++ {
		x := 100.0
		if i%2 == 1 {
			x = 100.05
		}
		h.Push(PositionSample{X: x, Y: 300, Frame: uint64(i)})
		d.Update(h)
	}
	if d.Oscillating() {
		t.Fatal("sub-noise wobble flagged as oscillation")
	}
}

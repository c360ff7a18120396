package advertise

// PositionSample is one recorded agent position. Samples are immutable once
// pushed and ordered by frame.
type PositionSample struct {
	X     float64
	Y     float64
	Frame uint64
}

// PositionHistory retains the most recent agent positions up to a fixed
// capacity, evicting the oldest sample on overflow.
type PositionHistory struct {
	samples  []PositionSample
	capacity int
}

// NewPositionHistory creates a history with the given capacity.
func NewPositionHistory(capacity int) *PositionHistory {
	if capacity <= 0 {
		capacity = 1
	}
	return &PositionHistory{
		samples:  make([]PositionSample, 0, capacity),
		capacity: capacity,
	}
}

// Push appends a sample, evicting the oldest if the history is full.
func (h *PositionHistory) Push(s PositionSample) {
	if len(h.samples) == h.capacity {
		copy(h.samples, h.samples[1:])
		h.samples = h.samples[:h.capacity-1]
	}
	h.samples = append(h.samples, s)
}

// Len returns how many samples are currently retained.
func (h *PositionHistory) Len() int {
	return len(h.samples)
}

// Recent returns the last n samples in chronological order, or fewer if not
// enough have been collected.
func (h *PositionHistory) Recent(n int) []PositionSample {
	if n > len(h.samples) {
		n = len(h.samples)
	}
	return h.samples[len(h.samples)-n:]
}

// Latest returns the most recent sample, or false if none recorded.
func (h *PositionHistory) Latest() (PositionSample, bool) {
	if len(h.samples) == 0 {
		return PositionSample{}, false
	}
	return h.samples[len(h.samples)-1], true
}

// Back returns the sample n places before the latest (Back(0) is the latest),
// or false if the history is not that deep.
func (h *PositionHistory) Back(n int) (PositionSample, bool) {
	idx := len(h.samples) - 1 - n
	if idx < 0 {
		return PositionSample{}, false
	}
	return h.samples[idx], true
}

// Velocity returns the displacement between the two most recent samples, or
// (0,0) if fewer than two exist.
func (h *PositionHistory) Velocity() (dx, dy float64) {
	if len(h.samples) < 2 {
		return 0, 0
	}
	cur := h.samples[len(h.samples)-1]
	prev := h.samples[len(h.samples)-2]
	return cur.X - prev.X, cur.Y - prev.Y
}

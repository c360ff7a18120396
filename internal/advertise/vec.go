package advertise

import (
	"math"
	"math/rand"
)

// Point is a position in arena coordinates.
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance to q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// normalize scales (x,y) to unit length. ok is false when the magnitude is
// below the degeneracy floor and the input is returned unchanged.
func normalize(x, y float64) (nx, ny float64, ok bool) {
	mag := math.Hypot(x, y)
	if mag < 1e-2 {
		return x, y, false
	}
	return x / mag, y / mag, true
}

// rotate turns (x,y) by angle radians.
func rotate(x, y, angle float64) (float64, float64) {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return x*c - y*s, x*s + y*c
}

// randomHeading returns a uniformly random unit vector. Used as the fallback
// whenever a steering law degenerates to a near-zero vector.
func randomHeading(rng *rand.Rand) (float64, float64) {
	angle := rng.Float64() * 2 * math.Pi
	return math.Cos(angle), math.Sin(angle)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

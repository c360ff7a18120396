package advertise

import (
	"math"
	"math/rand"
)

const (
	// strategyRotateFrames is how long one steering law runs before the set
	// rotates to a different one.
	strategyRotateFrames = 180
	// antiJitterDot / antiJitterRunFrames: a heading this aligned with the
	// previous one for this many frames gets a random kick, so long straight
	// runs into a wall do not read as a stuck agent.
	antiJitterDot       = 0.9
	antiJitterRunFrames = 120
	antiJitterKick      = 0.5 // max rotation, radians either way
)

// StrategySet is the replacement controller the improver installs. It hosts
// the four steering laws, rotates between the active ones on a timer, and
// applies the anti-jitter kick. All randomness comes from the injected source
// so sessions replay deterministically.
type StrategySet struct {
	cfg Config
	rng *rand.Rand
}

func NewStrategySet(cfg Config, rng *rand.Rand) *StrategySet {
	return &StrategySet{cfg: cfg, rng: rng}
}

// rotationPool is the set the timer rotates through. Every rotation picks
// uniformly among the three kinds other than the current one.
var rotationPool = []StrategyKind{
	StrategyBalanced, StrategyDefensive, StrategyAggressive, StrategyFlanking,
}

// ComputeHeading runs the active law, advancing the rotation timer and the
// shared cycle counter, then applies the anti-jitter kick.
func (s *StrategySet) ComputeHeading(a *Agent, enemies []Point) (float64, float64) {
	st := &a.Strategy
	st.Cycle++
	st.Timer++
	if st.Timer > strategyRotateFrames {
		st.Timer = 0
		next := rotationPool[s.rng.Intn(len(rotationPool))]
		for next == st.Current {
			next = rotationPool[s.rng.Intn(len(rotationPool))]
		}
		st.Current = next
	}

	var hx, hy float64
	switch st.Current {
	case StrategyDefensive:
		hx, hy = s.defensiveHeading(a, enemies)
	case StrategyAggressive:
		hx, hy = s.aggressiveHeading(a, enemies)
	case StrategyFlanking:
		hx, hy = s.flankingHeading(a, enemies)
	default:
		hx, hy = s.balancedHeading(a, enemies)
	}

	nx, ny, ok := normalize(hx, hy)
	if !ok {
		nx, ny = randomHeading(s.rng)
	}

	if st.LastHeadingX != 0 || st.LastHeadingY != 0 {
		dot := nx*st.LastHeadingX + ny*st.LastHeadingY
		if dot > antiJitterDot {
			st.SameHeadingRun++
		} else {
			st.SameHeadingRun = 0
		}
		if st.SameHeadingRun > antiJitterRunFrames {
			angle := (s.rng.Float64()*2 - 1) * antiJitterKick
			nx, ny = rotate(nx, ny, angle)
			st.SameHeadingRun = 0
		}
	}
	st.LastHeadingX, st.LastHeadingY = nx, ny
	return nx, ny
}

// ChooseAction dashes opportunistically: aggressive play dashes at random to
// look lively, defensive play dashes to break contact when an enemy is close.
func (s *StrategySet) ChooseAction(a *Agent, enemies []Point) Action {
	switch a.Strategy.Current {
	case StrategyAggressive:
		if s.rng.Float64() < 0.10 {
			return ActionDash
		}
	case StrategyDefensive:
		if d, ok := nearestDistance(Point{X: a.X, Y: a.Y}, enemies); ok && d < 100 {
			if s.rng.Float64() < 0.30 {
				return ActionDash
			}
		}
	}
	return ActionNone
}

// defensiveHeading sums inverse-square repulsion from every enemy, plus a
// half-weight push off the arena center when the agent is sitting on it.
func (s *StrategySet) defensiveHeading(a *Agent, enemies []Point) (float64, float64) {
	var hx, hy float64
	for _, e := range enemies {
		dx, dy := a.X-e.X, a.Y-e.Y
		distSq := dx*dx + dy*dy
		if distSq < 1 {
			distSq = 1
		}
		force := 10000 / distSq
		dist := math.Sqrt(distSq)
		hx += dx / dist * force
		hy += dy / dist * force
	}
	center := s.cfg.Center()
	cdx, cdy := a.X-center.X, a.Y-center.Y
	if cd := math.Hypot(cdx, cdy); cd < 100 && cd > 0 {
		hx += cdx / cd * 0.5
		hy += cdy / cd * 0.5
	}
	return hx, hy
}

// aggressiveHeading plays the nearest enemy: flee when too close, close in
// when far, circle otherwise, with an occasional small random perturbation.
func (s *StrategySet) aggressiveHeading(a *Agent, enemies []Point) (float64, float64) {
	nearest, ok := nearestPoint(Point{X: a.X, Y: a.Y}, enemies)
	if !ok {
		return 0, 0
	}
	dx, dy := nearest.X-a.X, nearest.Y-a.Y
	dist := math.Hypot(dx, dy)

	var hx, hy float64
	switch {
	case dist < 150:
		hx, hy = -dx, -dy
	case dist > 250:
		hx, hy = dx, dy
	default:
		hx, hy = -dy, dx
	}
	if s.rng.Float64() < 0.05 {
		hx, hy = rotate(hx, hy, (s.rng.Float64()*2-1)*0.3)
	}
	return hx, hy
}

// flankingHeading orbits the enemy centroid, flipping orbit direction every
// second, leaning away when crowded and leaning in when it drifts wide.
func (s *StrategySet) flankingHeading(a *Agent, enemies []Point) (float64, float64) {
	if len(enemies) == 0 {
		return 0, 0
	}
	var cx, cy float64
	for _, e := range enemies {
		cx += e.X
		cy += e.Y
	}
	cx /= float64(len(enemies))
	cy /= float64(len(enemies))

	dx, dy := cx-a.X, cy-a.Y
	dist := math.Hypot(dx, dy)

	tx, ty := -dy, dx
	if (a.Strategy.Cycle/60)%2 == 1 {
		tx, ty = dy, -dx
	}

	switch {
	case dist < 100:
		return -dx*0.7 + tx*0.3, -dy*0.7 + ty*0.3
	case dist > 300:
		return dx*0.7 + tx*0.3, dy*0.7 + ty*0.3
	default:
		return tx, ty
	}
}

// balancedHeading blends per-enemy repulsion and circling with a gentle push
// off the center and the walls. With no enemies it tours the arena corners.
func (s *StrategySet) balancedHeading(a *Agent, enemies []Point) (float64, float64) {
	if len(enemies) == 0 {
		return s.cornerTourHeading(a)
	}

	var hx, hy float64
	for _, e := range enemies {
		dx, dy := a.X-e.X, a.Y-e.Y
		dist := math.Hypot(dx, dy)
		if dist < 1 {
			dist = 1
		}
		switch {
		case dist < 150:
			w := (1 - dist/150) * 2
			hx += dx / dist * w
			hy += dy / dist * w
		case dist <= 300:
			hx += -dy / dist
			hy += dx / dist
		}
	}

	// Center avoidance only inside the center radius, fading out toward it.
	center := s.cfg.Center()
	cdx, cdy := a.X-center.X, a.Y-center.Y
	if cd := math.Hypot(cdx, cdy); cd < s.cfg.CenterRadius {
		w := 1 - cd/s.cfg.CenterRadius
		if cd < 1 {
			cd = 1
		}
		hx += cdx / cd * w
		hy += cdy / cd * w
	}

	if a.X < 100 {
		hx += 0.5
	}
	if a.X > s.cfg.ScreenWidth-100 {
		hx -= 0.5
	}
	if a.Y < 100 {
		hy += 0.5
	}
	if a.Y > s.cfg.ScreenHeight-100 {
		hy -= 0.5
	}

	if s.rng.Float64() < 0.02 {
		hx, hy = rotate(hx, hy, (s.rng.Float64()*2-1)*0.3)
	}
	return hx, hy
}

// cornerTourHeading cycles through the four arena corners, advancing every
// two seconds or when the current corner is reached.
func (s *StrategySet) cornerTourHeading(a *Agent) (float64, float64) {
	corners := [4]Point{
		{X: 100, Y: 100},
		{X: s.cfg.ScreenWidth - 100, Y: 100},
		{X: s.cfg.ScreenWidth - 100, Y: s.cfg.ScreenHeight - 100},
		{X: 100, Y: s.cfg.ScreenHeight - 100},
	}
	target := corners[(a.Strategy.Cycle/120)%4]
	dx, dy := target.X-a.X, target.Y-a.Y
	if math.Hypot(dx, dy) < 20 {
		return 0, 0
	}
	return dx, dy
}

func nearestPoint(from Point, pts []Point) (Point, bool) {
	if len(pts) == 0 {
		return Point{}, false
	}
	best := pts[0]
	bestD := from.Dist(best)
	for _, p := range pts[1:] {
		if d := from.Dist(p); d < bestD {
			bestD = d
			best = p
		}
	}
	return best, true
}

func nearestDistance(from Point, pts []Point) (float64, bool) {
	p, ok := nearestPoint(from, pts)
	if !ok {
		return 0, false
	}
	return from.Dist(p), true
}

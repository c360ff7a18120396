package advertise

import (
	"fmt"
	"math"
	"sort"
)

const (
	// threatLookback is how many frames back the avoidance comparison reaches.
	threatLookback = 30
	// avoidGainThreshold: distance gained past this counts as a successful
	// evasion.
	avoidGainThreshold = 5.0
	// approachLossThreshold / approachWarnDistance: losing this much distance
	// while already this close raises a warning.
	approachLossThreshold = 20.0
	approachWarnDistance  = 100.0
)

// ThreatAnalyzer classifies the agent's motion relative to the nearest enemy
// as approach or avoidance. The lookback compares against the nearest enemy's
// position captured now, not a historical one; enemies are not retained
// across frames, so drift is measured against where that enemy currently is.
type ThreatAnalyzer struct {
	cfg           Config
	approachCount int
	avoidedCount  int
}

func NewThreatAnalyzer(cfg Config) *ThreatAnalyzer {
	return &ThreatAnalyzer{cfg: cfg}
}

// Update examines the current frame. It returns an ApproachingEnemy pattern
// when the agent is closing hard on a nearby enemy, else nil. With no enemies
// or fewer than 30 samples it is a no-op.
func (t *ThreatAnalyzer) Update(h *PositionHistory, enemies []Point) *ProblemPattern {
	if len(enemies) == 0 || h.Len() < threatLookback {
		return nil
	}

	cur, _ := h.Latest()
	curPos := Point{X: cur.X, Y: cur.Y}

	nearest := enemies[0]
	best := math.MaxFloat64
	for _, e := range enemies {
		dx := e.X - curPos.X
		dy := e.Y - curPos.Y
		if d2 := dx*dx + dy*dy; d2 < best {
			best = d2
			nearest = e
		}
	}
	dist := curPos.Dist(nearest)

	if dist >= t.cfg.ApproachThreshold {
		return nil
	}
	t.approachCount++

	old, ok := h.Back(threatLookback - 1)
	if !ok {
		return nil
	}
	oldDist := Point{X: old.X, Y: old.Y}.Dist(nearest)

	switch {
	case dist > oldDist+avoidGainThreshold:
		t.avoidedCount++
	case dist < oldDist-approachLossThreshold && dist < approachWarnDistance:
		return &ProblemPattern{
			Kind:        PatternApproachingEnemy,
			Position:    curPos,
			Enemy:       nearest,
			HasEnemy:    true,
			TimeSeconds: float64(cur.Frame) / t.cfg.FrameRate,
			Description: fmt.Sprintf(
				"closing on nearest enemy (distance %.1f); evasive action needed", dist),
		}
	}
	return nil
}

// ApproachCount returns how many frames had the nearest enemy inside the
// approach threshold.
func (t *ThreatAnalyzer) ApproachCount() int {
	return t.approachCount
}

// AvoidedCount returns how many approaches the agent successfully opened
// distance on.
func (t *ThreatAnalyzer) AvoidedCount() int {
	return t.avoidedCount
}

// AvoidanceRate returns avoided / approaches with a guarded denominator.
func (t *ThreatAnalyzer) AvoidanceRate() float64 {
	denom := t.approachCount
	if denom < 1 {
		denom = 1
	}
	return float64(t.avoidedCount) / float64(denom)
}

// RankDangerousEnemies scores live enemies by how threatening they are to an
// agent at pos and returns them most-dangerous-first. The score combines
// proximity, whether the enemy is closing on the agent, its kind, and its
// speed. Enemies scoring below the floor and farther than the approach
// threshold are omitted.
func RankDangerousEnemies(cfg Config, pos Point, enemies []*Enemy) []*Enemy {
	type scored struct {
		e     *Enemy
		level float64
	}
	var ranked []scored

	for _, e := range enemies {
		if e.Defeated {
			continue
		}
		dist := pos.Dist(Point{X: e.X, Y: e.Y})

		toX, toY := pos.X-e.X, pos.Y-e.Y
		if mag := math.Hypot(toX, toY); mag > 0 {
			toX /= mag
			toY /= mag
		}
		closing := e.DirX*toX + e.DirY*toY

		level := 0.0
		if dist < 100 {
			level += (100 - dist) / 100 * 5
		}
		if closing > 0 {
			level += closing * 3
		}
		switch e.Kind {
		case EnemyTank:
			level += 3
		case EnemyAssassin:
			level += 2
		}
		level += e.Speed / 5

		if level >= 3 || dist < cfg.ApproachThreshold {
			ranked = append(ranked, scored{e: e, level: level})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].level > ranked[j].level
	})

	out := make([]*Enemy, len(ranked))
	for i, s := range ranked {
		out[i] = s.e
	}
	return out
}

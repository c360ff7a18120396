package advertise

import (
	"strings"
	"testing"
)

// walkHistory builds a 30-sample straight walk along y=300 from x0 toward x1.
func walkHistory(x0, x1 float64) *PositionHistory {
	h := NewPositionHistory(120)
	step := (x1 - x0) / 29
	for i := 0; i < 30; i++ {
		h.Push(PositionSample{X: x0 + step*float64(i), Y: 300, Frame: uint64(i + 1)})
	}
	return h
}

func TestThreatFlagsHardApproach(t *testing.T) {
	cfg := DefaultConfig()
	ta := NewThreatAnalyzer(cfg)
	enemy := Point{X: 500, Y: 300}

	// 392 -> 450: ends 50 from the enemy, 58 closer than 30 frames ago.
	h := walkHistory(392, 450)
	p := ta.Update(h, []Point{enemy})

	if p == nil {
		t.Fatal("no approaching_enemy pattern for a hard approach")
	}
	if p.Kind != PatternApproachingEnemy {
		t.Fatalf("Kind = %v, want approaching_enemy", p.Kind)
	}
	if !p.HasEnemy || p.Enemy != enemy {
		t.Fatalf("Enemy = %+v HasEnemy=%v, want the nearest enemy recorded", p.Enemy, p.HasEnemy)
	}
	if !strings.Contains(p.Description, "50.0") {
		t.Fatalf("Description = %q, want the closing distance in it", p.Description)
	}
	if ta.ApproachCount() != 1 {
		t.Fatalf("ApproachCount = %d, want 1", ta.ApproachCount())
	}
}

func TestThreatCountsAvoidance(t *testing.T) {
	cfg := DefaultConfig()
	ta := NewThreatAnalyzer(cfg)
	enemy := Point{X: 500, Y: 300}

	// 450 -> 392: still inside the approach threshold but opening distance.
	h := walkHistory(450, 392)
	if p := ta.Update(h, []Point{enemy}); p != nil {
		t.Fatalf("retreat flagged as approach: %v", p.Description)
	}
	if ta.AvoidedCount() != 1 {
		t.Fatalf("AvoidedCount = %d, want 1", ta.AvoidedCount())
	}
	if got := ta.AvoidanceRate(); got != 1 {
		t.Fatalf("AvoidanceRate = %v, want 1", got)
	}
}

func TestThreatNoopCases(t *testing.T) {
	cfg := DefaultConfig()
	ta := NewThreatAnalyzer(cfg)

	short := NewPositionHistory(120)
	for i := 0; i < 10; i++ {
		short.Push(PositionSample{X: 400, Y: 300, Frame: uint64(i)})
	}
	if p := ta.Update(short, []Point{{X: 410, Y: 300}}); p != nil {
		t.Fatal("pattern emitted with under 30 samples")
	}
	if p := ta.Update(walkHistory(392, 450), nil); p != nil {
		t.Fatal("pattern emitted with no enemies")
	}
	// Far enemy: never counts as an approach.
	ta2 := NewThreatAnalyzer(cfg)
	ta2.Update(walkHistory(100, 158), []Point{{X: 700, Y: 300}})
	if ta2.ApproachCount() != 0 {
		t.Fatalf("ApproachCount = %d for a distant enemy, want 0", ta2.ApproachCount())
	}
}

func TestRankDangerousEnemies(t *testing.T) {
	cfg := DefaultConfig()
	agent := Point{X: 400, Y: 300}

	near := NewEnemy(430, 300, EnemyMob) // 30 away
	near.DirX, near.DirY = -1, 0         // closing
	far := NewEnemy(700, 300, EnemyMob)  // 300 away, drifting off
	far.DirX, far.DirY = 1, 0
	tank := NewEnemy(480, 300, EnemyTank) // 80 away
	dead := NewEnemy(401, 300, EnemyAssassin)
	dead.Defeated = true

	ranked := RankDangerousEnemies(cfg, agent, []*Enemy{far, tank, near, dead})
	if len(ranked) != 2 {
		t.Fatalf("ranked %d enemies, want 2 (far and defeated excluded)", len(ranked))
	}
	if ranked[0] != near {
		t.Fatalf("top threat = %v at (%.0f,%.0f), want the closing near enemy",
			ranked[0].Kind, ranked[0].X, ranked[0].Y)
	}
	if ranked[1] != tank {
		t.Fatalf("second threat = %v, want the tank", ranked[1].Kind)
	}
}

package advertise

import (
	"math"
	"testing"
)

func TestHomingEnemyClosesOnAgent(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWorldState(cfg, 1)
	w.Agent.SetPolicy(stationaryPolicy{})
	e := NewEnemy(100, 100, EnemyMob)
	w.AddEnemy(e)

	start := (Point{X: e.X, Y: e.Y}).Dist(Point{X: w.Agent.X, Y: w.Agent.Y})
	for i := 0; i < 60; i++ {
		w.Step()
	}
	end := (Point{X: e.X, Y: e.Y}).Dist(Point{X: w.Agent.X, Y: w.Agent.Y})
	if end >= start {
		t.Fatalf("homing enemy distance went %v -> %v, want closing", start, end)
	}
}

func TestOrbitingEnemyHoldsRadius(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWorldState(cfg, 1)
	w.Agent.SetPolicy(stationaryPolicy{})
	e := NewOrbitingEnemy(cfg.Center(), 120, 0, EnemySpeeder)
	w.AddEnemy(e)

	for i := 0; i < 200; i++ {
		w.Step()
		r := (Point{X: e.X, Y: e.Y}).Dist(cfg.Center())
		if math.Abs(r-120) > 1e-6 {
			t.Fatalf("orbit radius = %v at step %d, want 120", r, i)
		}
	}
}

func TestMoversStayInsideArena(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWorldState(cfg, 3)
	w.AddEnemy(NewEnemy(60, 60, EnemySpeeder))
	w.Agent.SetPolicy(NewWanderPolicy(cfg, w.Rand()))

	for i := 0; i < 600; i++ {
		w.Step()
		for _, m := range append(w.EnemyPositions(), Point{X: w.Agent.X, Y: w.Agent.Y}) {
			if m.X < arenaMargin || m.X > cfg.ScreenWidth-arenaMargin ||
				m.Y < arenaMargin || m.Y > cfg.ScreenHeight-arenaMargin {
				t.Fatalf("mover escaped the arena at (%v,%v), step %d", m.X, m.Y, i)
			}
		}
	}
}

func TestEnemyPositionsSkipsDefeated(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWorldState(cfg, 1)
	alive := NewEnemy(100, 100, EnemyMob)
	down := NewEnemy(200, 200, EnemyTank)
	down.Defeated = true
	w.AddEnemy(alive)
	w.AddEnemy(down)

	got := w.EnemyPositions()
	if len(got) != 1 || got[0] != (Point{X: 100, Y: 100}) {
		t.Fatalf("EnemyPositions = %+v, want only the live enemy", got)
	}
}

func TestEnemyKindTuning(t *testing.T) {
	if EnemySpeeder.Speed() <= EnemyMob.Speed() {
		t.Fatal("speeder should outrun a mob")
	}
	if EnemyTank.Speed() >= EnemyMob.Speed() {
		t.Fatal("tank should be slower than a mob")
	}
	if EnemyAssassin.HomingFactor() <= EnemyTank.HomingFactor() {
		t.Fatal("assassin should track harder than a tank")
	}
}

func TestAgentDashSpeedsUp(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWorldState(cfg, 1)
	w.Agent.SetPolicy(alwaysDashEast{})
	w.Agent.X, w.Agent.Y = 100, 300

	var dashed bool
	prevX := w.Agent.X
	for i := 0; i < 120 && !dashed; i++ {
		w.Step()
		step := w.Agent.X - prevX
		prevX = w.Agent.X
		if w.Agent.Dashing() {
			dashed = true
			if math.Abs(step-dashSpeed) > 1e-9 {
				t.Fatalf("dash step = %v, want %v", step, dashSpeed)
			}
		} else if math.Abs(step-agentSpeed) > 1e-9 {
			t.Fatalf("walk step = %v, want %v", step, agentSpeed)
		}
	}
	if !dashed {
		t.Fatal("agent never dashed with a policy that always requests it")
	}
}

type alwaysDashEast struct{}

func (alwaysDashEast) ComputeHeading(*Agent, []Point) (float64, float64) { return 1, 0 }
func (alwaysDashEast) ChooseAction(*Agent, []Point) Action               { return ActionDash }

package advertise

import (
	"math"
	"math/rand"
)

// Action is a discrete ability the policy may trigger alongside steering.
type Action int

const (
	ActionNone Action = iota
	ActionDash
)

const (
	agentSpeed           = 5.0
	dashSpeed            = 10.0
	dashDurationFrames   = 120
	dashCooldownFrames   = 45
	actionIntervalFrames = 40
)

// SteeringPolicy produces a movement heading and an optional action for the
// agent each frame. Headings need not be unit length; the agent normalizes
// before applying speed, and a near-zero heading means "stand still".
type SteeringPolicy interface {
	ComputeHeading(a *Agent, enemies []Point) (float64, float64)
	ChooseAction(a *Agent, enemies []Point) Action
}

// StrategyKind names one of the steering laws.
type StrategyKind int

const (
	StrategyBalanced StrategyKind = iota
	StrategyDefensive
	StrategyAggressive
	StrategyFlanking
)

func (k StrategyKind) String() string {
	switch k {
	case StrategyBalanced:
		return "balanced"
	case StrategyDefensive:
		return "defensive"
	case StrategyAggressive:
		return "aggressive"
	case StrategyFlanking:
		return "flanking"
	default:
		return "unknown"
	}
}

// StrategyState is the rotation and anti-jitter bookkeeping shared across
// policies. It lives on the agent so a policy swap mid-session does not reset
// timers.
type StrategyState struct {
	Current        StrategyKind
	Timer          int
	LastHeadingX   float64
	LastHeadingY   float64
	SameHeadingRun int

	// cycle drives the flanking orbit flip and the balanced corner waypoints.
	Cycle int
}

// Agent is the demo-play actor. Its steering policy is replaceable at any
// time; the rest of its state (position, cooldowns, strategy bookkeeping)
// survives the swap.
type Agent struct {
	X, Y float64
	HP   int

	Strategy StrategyState

	policy       SteeringPolicy
	rng          *rand.Rand
	dashFrames   int
	dashCooldown int
	actionTimer  int
}

// NewAgent creates an agent at (x,y) with the degenerate wander policy.
func NewAgent(cfg Config, x, y float64, rng *rand.Rand) *Agent {
	return &Agent{
		X:      x,
		Y:      y,
		HP:     100,
		policy: NewWanderPolicy(cfg, rng),
		rng:    rng,
	}
}

// Policy returns the current steering policy.
func (a *Agent) Policy() SteeringPolicy {
	return a.policy
}

// SetPolicy replaces the steering policy in place.
func (a *Agent) SetPolicy(p SteeringPolicy) {
	a.policy = p
}

// Dashing reports whether a dash is currently active.
func (a *Agent) Dashing() bool {
	return a.dashFrames > 0
}

func (a *Agent) step(cfg Config, enemies []Point) {
	a.actionTimer++
	if a.actionTimer >= actionIntervalFrames {
		a.actionTimer = 0
		if a.policy.ChooseAction(a, enemies) == ActionDash && a.dashCooldown == 0 {
			a.dashFrames = dashDurationFrames
			a.dashCooldown = dashCooldownFrames
		}
	}

	speed := agentSpeed
	if a.dashFrames > 0 {
		speed = dashSpeed
		a.dashFrames--
	} else if a.dashCooldown > 0 {
		a.dashCooldown--
	}

	hx, hy := a.policy.ComputeHeading(a, enemies)
	if nx, ny, ok := normalize(hx, hy); ok {
		a.X += nx * speed
		a.Y += ny * speed
	}

	a.X = clamp(a.X, arenaMargin, cfg.ScreenWidth-arenaMargin)
	a.Y = clamp(a.Y, arenaMargin, cfg.ScreenHeight-arenaMargin)
}

// WanderPolicy is the default controller an unimproved session runs with. It
// picks a loose target every couple of seconds with a bias toward the middle
// of the arena and stops when it gets there, which is exactly the dull,
// center-hugging motion the analyzer exists to catch.
type WanderPolicy struct {
	cfg       Config
	rng       *rand.Rand
	targetX   float64
	targetY   float64
	timer     int
	hasTarget bool
}

const wanderRetargetFrames = 120

func NewWanderPolicy(cfg Config, rng *rand.Rand) *WanderPolicy {
	return &WanderPolicy{cfg: cfg, rng: rng}
}

func (w *WanderPolicy) ComputeHeading(a *Agent, enemies []Point) (float64, float64) {
	w.timer++
	if !w.hasTarget || w.timer >= wanderRetargetFrames {
		w.timer = 0
		w.hasTarget = true
		// Center-biased: average a uniform in-arena point with the center.
		center := w.cfg.Center()
		rx := w.rng.Float64()*(w.cfg.ScreenWidth-2*arenaMargin) + arenaMargin
		ry := w.rng.Float64()*(w.cfg.ScreenHeight-2*arenaMargin) + arenaMargin
		w.targetX = (rx + center.X) / 2
		w.targetY = (ry + center.Y) / 2
	}
	dx, dy := w.targetX-a.X, w.targetY-a.Y
	if math.Hypot(dx, dy) < 10 {
		return 0, 0
	}
	return dx, dy
}

func (w *WanderPolicy) ChooseAction(a *Agent, enemies []Point) Action {
	return ActionNone
}

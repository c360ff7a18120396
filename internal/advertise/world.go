package advertise

import (
	"math"
	"math/rand"
)

// EnemyKind selects movement speed and homing strength.
type EnemyKind int

const (
	EnemyMob EnemyKind = iota
	EnemySpeeder
	EnemyTank
	EnemyAssassin
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyMob:
		return "mob"
	case EnemySpeeder:
		return "speeder"
	case EnemyTank:
		return "tank"
	case EnemyAssassin:
		return "assassin"
	default:
		return "unknown"
	}
}

// Speed returns the kind's base movement speed in units per frame.
func (k EnemyKind) Speed() float64 {
	switch k {
	case EnemySpeeder:
		return 5
	case EnemyTank:
		return 2
	case EnemyAssassin:
		return 4
	default:
		return 3
	}
}

// HomingFactor returns how strongly the kind steers toward the agent each
// frame, as the interpolation weight applied to its heading.
func (k EnemyKind) HomingFactor() float64 {
	switch k {
	case EnemySpeeder:
		return 0.12
	case EnemyTank:
		return 0.05
	case EnemyAssassin:
		return 0.15
	default:
		return 0.1
	}
}

// EnemyBehavior selects the enemy's movement law.
type EnemyBehavior int

const (
	BehaviorHoming EnemyBehavior = iota
	BehaviorOrbit
	BehaviorStatic
)

// Enemy is one hostile in the arena.
type Enemy struct {
	X, Y     float64
	Kind     EnemyKind
	Behavior EnemyBehavior
	Speed    float64
	Defeated bool

	// Current heading, unit-length while moving. Homing enemies steer this
	// toward the agent each frame.
	DirX, DirY float64

	// Orbit parameters, used only with BehaviorOrbit.
	OrbitCenter Point
	OrbitRadius float64
	orbitAngle  float64
}

// NewEnemy creates a homing enemy of the given kind at (x,y).
func NewEnemy(x, y float64, kind EnemyKind) *Enemy {
	return &Enemy{X: x, Y: y, Kind: kind, Behavior: BehaviorHoming, Speed: kind.Speed()}
}

// NewOrbitingEnemy creates an enemy that circles center at the given radius.
func NewOrbitingEnemy(center Point, radius, startAngle float64, kind EnemyKind) *Enemy {
	e := &Enemy{
		Kind:        kind,
		Behavior:    BehaviorOrbit,
		Speed:       kind.Speed(),
		OrbitCenter: center,
		OrbitRadius: radius,
		orbitAngle:  startAngle,
	}
	e.X = center.X + radius*math.Cos(startAngle)
	e.Y = center.Y + radius*math.Sin(startAngle)
	return e
}

// NewStaticEnemy creates an enemy that never moves.
func NewStaticEnemy(x, y float64, kind EnemyKind) *Enemy {
	return &Enemy{X: x, Y: y, Kind: kind, Behavior: BehaviorStatic, Speed: 0}
}

func (e *Enemy) step(agent Point, cfg Config) {
	switch e.Behavior {
	case BehaviorHoming:
		tx, ty := agent.X-e.X, agent.Y-e.Y
		if nx, ny, ok := normalize(tx, ty); ok {
			f := e.Kind.HomingFactor()
			e.DirX = e.DirX*(1-f) + nx*f
			e.DirY = e.DirY*(1-f) + ny*f
			if dx, dy, ok := normalize(e.DirX, e.DirY); ok {
				e.DirX, e.DirY = dx, dy
			}
		}
		e.X += e.DirX * e.Speed
		e.Y += e.DirY * e.Speed
	case BehaviorOrbit:
		// Angular speed keeps the linear speed constant across radii.
		if e.OrbitRadius > 0 {
			e.orbitAngle += e.Speed / e.OrbitRadius
		}
		nx := e.OrbitCenter.X + e.OrbitRadius*math.Cos(e.orbitAngle)
		ny := e.OrbitCenter.Y + e.OrbitRadius*math.Sin(e.orbitAngle)
		if dx, dy, ok := normalize(nx-e.X, ny-e.Y); ok {
			e.DirX, e.DirY = dx, dy
		}
		e.X, e.Y = nx, ny
	case BehaviorStatic:
		// Nothing to do.
	}
	e.X = clamp(e.X, arenaMargin, cfg.ScreenWidth-arenaMargin)
	e.Y = clamp(e.Y, arenaMargin, cfg.ScreenHeight-arenaMargin)
}

// arenaMargin is the wall inset every mover is clamped inside.
const arenaMargin = 50.0

// WorldState is the complete mutable state of one session: the agent, the
// enemies, and the frame counter. It is deterministic for a given seed.
type WorldState struct {
	cfg     Config
	Agent   *Agent
	Enemies []*Enemy
	Frame   uint64
	rng     *rand.Rand
}

// NewWorldState creates a world with the agent at the spawn point.
func NewWorldState(cfg Config, seed int64) *WorldState {
	rng := rand.New(rand.NewSource(seed))
	spawn := cfg.SpawnPoint()
	return &WorldState{
		cfg:   cfg,
		Agent: NewAgent(cfg, spawn.X, spawn.Y, rng),
		rng:   rng,
	}
}

// AddEnemy appends an enemy to the world.
func (w *WorldState) AddEnemy(e *Enemy) {
	w.Enemies = append(w.Enemies, e)
}

// EnemyPositions returns the positions of all non-defeated enemies.
func (w *WorldState) EnemyPositions() []Point {
	var out []Point
	for _, e := range w.Enemies {
		if e.Defeated {
			continue
		}
		out = append(out, Point{X: e.X, Y: e.Y})
	}
	return out
}

// Step advances the world one frame: the agent moves first, then each enemy
// reacts to the agent's new position.
func (w *WorldState) Step() {
	w.Frame++
	enemies := w.EnemyPositions()
	w.Agent.step(w.cfg, enemies)
	agentPos := Point{X: w.Agent.X, Y: w.Agent.Y}
	for _, e := range w.Enemies {
		if e.Defeated {
			continue
		}
		e.step(agentPos, w.cfg)
	}
}

// Rand exposes the world's seeded source for policies that need it.
func (w *WorldState) Rand() *rand.Rand {
	return w.rng
}

package advertise

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/google/uuid"
)

// SessionDriver runs one headless observation session: it steps the world,
// feeds the recorder, and finalizes a report when the recorder calls the
// session or the frame budget runs out. It has no rendering dependency; the
// viewer drives the same world and recorder types directly.
type SessionDriver struct {
	Cfg      Config
	World    *WorldState
	Recorder *TelemetryRecorder
	Log      *SessionLog
	Label    string

	maxFrames uint64
	seed      int64
	logWriter io.Writer
}

// sessionOptionKind controls the pass in which an option is applied.
type sessionOptionKind int

const (
	sessOptInfra sessionOptionKind = iota // config, seed, log, frame budget
	sessOptEnemy                          // enemy placement, after the world exists
	sessOptAgent                          // agent policy and placement, last
)

// SessionOption is a builder function applied to a SessionDriver during
// construction.
type SessionOption struct {
	kind sessionOptionKind
	fn   func(*SessionDriver)
}

// WithConfig replaces the default config.
func WithConfig(cfg Config) SessionOption {
	return SessionOption{sessOptInfra, func(d *SessionDriver) {
		d.Cfg = cfg
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SessionOption {
	return SessionOption{sessOptInfra, func(d *SessionDriver) {
		d.seed = seed
	}}
}

// WithLogWriter streams session log lines to w as they are recorded.
func WithLogWriter(w io.Writer) SessionOption {
	return SessionOption{sessOptInfra, func(d *SessionDriver) {
		d.logWriter = w
	}}
}

// WithMaxFrames caps the session length.
func WithMaxFrames(n uint64) SessionOption {
	return SessionOption{sessOptInfra, func(d *SessionDriver) {
		d.maxFrames = n
	}}
}

// WithLabel names the session in reports.
func WithLabel(label string) SessionOption {
	return SessionOption{sessOptInfra, func(d *SessionDriver) {
		d.Label = label
	}}
}

// WithEnemy places a homing enemy of the given kind.
func WithEnemy(x, y float64, kind EnemyKind) SessionOption {
	return SessionOption{sessOptEnemy, func(d *SessionDriver) {
		d.World.AddEnemy(NewEnemy(x, y, kind))
	}}
}

// WithHomingEnemies scatters n homing enemies around the arena perimeter,
// alternating kinds, using the session's seeded source.
func WithHomingEnemies(n int) SessionOption {
	return SessionOption{sessOptEnemy, func(d *SessionDriver) {
		kinds := []EnemyKind{EnemyMob, EnemySpeeder, EnemyTank, EnemyAssassin}
		for i := 0; i < n; i++ {
			angle := d.World.Rand().Float64() * 2 * math.Pi
			cx, cy := d.Cfg.Center().X, d.Cfg.Center().Y
			r := d.Cfg.ScreenHeight/2 - arenaMargin
			x := clamp(cx+r*math.Cos(angle), arenaMargin, d.Cfg.ScreenWidth-arenaMargin)
			y := clamp(cy+r*math.Sin(angle), arenaMargin, d.Cfg.ScreenHeight-arenaMargin)
			d.World.AddEnemy(NewEnemy(x, y, kinds[i%len(kinds)]))
		}
	}}
}

// WithOrbitingEnemy places an enemy circling the arena center.
func WithOrbitingEnemy(radius, startAngle float64, kind EnemyKind) SessionOption {
	return SessionOption{sessOptEnemy, func(d *SessionDriver) {
		d.World.AddEnemy(NewOrbitingEnemy(d.Cfg.Center(), radius, startAngle, kind))
	}}
}

// WithStaticEnemy places a stationary enemy.
func WithStaticEnemy(x, y float64, kind EnemyKind) SessionOption {
	return SessionOption{sessOptEnemy, func(d *SessionDriver) {
		d.World.AddEnemy(NewStaticEnemy(x, y, kind))
	}}
}

// WithPolicy installs a steering policy on the agent before the session runs.
func WithPolicy(p SteeringPolicy) SessionOption {
	return SessionOption{sessOptAgent, func(d *SessionDriver) {
		d.World.Agent.SetPolicy(p)
	}}
}

// WithStrategySet installs the strategy-set controller, as the improver would.
func WithStrategySet() SessionOption {
	return SessionOption{sessOptAgent, func(d *SessionDriver) {
		NewControllerInjector(d.Cfg, d.World.Rand()).Apply(d.World.Agent)
	}}
}

// WithStationaryAgent pins the agent in place for analyzer tests.
func WithStationaryAgent() SessionOption {
	return SessionOption{sessOptAgent, func(d *SessionDriver) {
		d.World.Agent.SetPolicy(stationaryPolicy{})
	}}
}

// WithAgentAt moves the agent's starting position.
func WithAgentAt(x, y float64) SessionOption {
	return SessionOption{sessOptAgent, func(d *SessionDriver) {
		d.World.Agent.X = x
		d.World.Agent.Y = y
	}}
}

type stationaryPolicy struct{}

func (stationaryPolicy) ComputeHeading(*Agent, []Point) (float64, float64) { return 0, 0 }
func (stationaryPolicy) ChooseAction(*Agent, []Point) Action               { return ActionNone }

// NewSessionDriver constructs a driver from the given options in three
// ordered passes:
//  1. Infrastructure (config, seed, log writer, frame budget)
//  2. Build the world, then enemies
//  3. Agent policy and placement
func NewSessionDriver(opts ...SessionOption) *SessionDriver {
	d := &SessionDriver{
		Cfg:       DefaultConfig(),
		Label:     "session",
		maxFrames: earlyStopHardCeiling,
		seed:      1,
	}
	for _, o := range opts {
		if o.kind == sessOptInfra {
			o.fn(d)
		}
	}
	d.Log = NewSessionLog(d.logWriter)
	d.World = NewWorldState(d.Cfg, d.seed)
	d.Recorder = NewTelemetryRecorder(d.Cfg, d.Log)
	for _, o := range opts {
		if o.kind == sessOptEnemy {
			o.fn(d)
		}
	}
	for _, o := range opts {
		if o.kind == sessOptAgent {
			o.fn(d)
		}
	}
	return d
}

// SessionReport bundles everything one finished session produced.
type SessionReport struct {
	ID           uuid.UUID
	Label        string
	Frames       uint64
	StoppedEarly bool
	Result       *AnalysisResult
	Verdict      Verdict
	Elapsed      time.Duration
}

// dangerLogInterval is how often the driver logs the current threat ranking.
const dangerLogInterval = 120

// Run steps the session to completion and returns its report. A session ends
// when the recorder's early-stop fires or the frame budget is exhausted,
// whichever comes first.
func (d *SessionDriver) Run() (*SessionReport, error) {
	id := uuid.New()
	start := time.Now()
	d.Log.Add(0, "session", "start",
		fmt.Sprintf("%s id=%s seed=%d enemies=%d", d.Label, id, d.seed, len(d.World.Enemies)),
		float64(len(d.World.Enemies)))

	stoppedEarly := false
	for d.World.Frame < d.maxFrames {
		d.World.Step()
		a := d.World.Agent
		if d.Recorder.Update(a.X, a.Y, d.World.EnemyPositions(), d.World.Frame) {
			stoppedEarly = true
			break
		}
		if d.World.Frame%dangerLogInterval == 0 {
			d.logDanger()
		}
	}

	frames := d.World.Frame
	d.Log.Add(frames, "session", "end",
		fmt.Sprintf("%s frames=%d early=%v", d.Label, frames, stoppedEarly),
		float64(frames))

	res, err := d.Recorder.Finalize(frames)
	if err != nil {
		return nil, fmt.Errorf("finalize %s: %w", d.Label, err)
	}
	return &SessionReport{
		ID:           id,
		Label:        d.Label,
		Frames:       frames,
		StoppedEarly: stoppedEarly,
		Result:       res,
		Verdict:      GradeSession(res),
		Elapsed:      time.Since(start),
	}, nil
}

func (d *SessionDriver) logDanger() {
	a := d.World.Agent
	ranked := RankDangerousEnemies(d.Cfg, Point{X: a.X, Y: a.Y}, d.World.Enemies)
	if len(ranked) == 0 {
		return
	}
	top := ranked[0]
	dist := (Point{X: a.X, Y: a.Y}).Dist(Point{X: top.X, Y: top.Y})
	d.Log.Add(d.World.Frame, "enemy", "top_threat",
		fmt.Sprintf("%s at %.0f (of %d ranked)", top.Kind, dist, len(ranked)), dist)
}

package advertise

import (
	"fmt"
	"math/rand"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
)

// View renders a live session and implements ebiten.Game. The same world,
// recorder, and injector types drive it as drive the headless sessions; the
// view only adds input handling and drawing on top.
//
// Keys:
//
//	Space  pause / resume
//	H      toggle the coverage heatmap overlay
//	I      inject the strategy-set controller
//	C      copy the current report JSON to the clipboard
//	R      restart the session with a fresh seed
type View struct {
	cfg      Config
	world    *WorldState
	recorder *TelemetryRecorder
	injector *ControllerInjector
	log      *SessionLog
	seed     int64
	enemies  int

	paused      bool
	showHeatmap bool
	injected    bool
	finished    bool
	status      string
	prevKeys    map[ebiten.Key]bool
}

// NewView creates a live session view with n homing enemies.
func NewView(cfg Config, seed int64, n int) *View {
	v := &View{
		cfg:      cfg,
		seed:     seed,
		enemies:  n,
		prevKeys: make(map[ebiten.Key]bool),
	}
	v.reset(seed)
	return v
}

func (v *View) reset(seed int64) {
	v.seed = seed
	v.log = NewSessionLog(nil)
	v.world = NewWorldState(v.cfg, seed)
	v.recorder = NewTelemetryRecorder(v.cfg, v.log)
	v.injector = NewControllerInjector(v.cfg, v.world.Rand())
	v.injected = false
	v.finished = false
	v.status = "observing"

	rng := rand.New(rand.NewSource(seed + 1))
	kinds := []EnemyKind{EnemyMob, EnemySpeeder, EnemyTank, EnemyAssassin}
	for i := 0; i < v.enemies; i++ {
		x := rng.Float64()*(v.cfg.ScreenWidth-2*arenaMargin) + arenaMargin
		y := rng.Float64()*(v.cfg.ScreenHeight-2*arenaMargin) + arenaMargin
		v.world.AddEnemy(NewEnemy(x, y, kinds[i%len(kinds)]))
	}
}

// Update advances one frame. Part of ebiten.Game.
func (v *View) Update() error {
	v.handleInput()
	if v.paused || v.finished {
		return nil
	}

	v.world.Step()
	a := v.world.Agent
	if v.recorder.Update(a.X, a.Y, v.world.EnemyPositions(), v.world.Frame) {
		v.finished = true
		v.status = "stopped: enough evidence collected"
	}
	return nil
}

func (v *View) handleInput() {
	pressed := func(k ebiten.Key) bool {
		cur := ebiten.IsKeyPressed(k)
		was := v.prevKeys[k]
		v.prevKeys[k] = cur
		return cur && !was
	}

	if pressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	if pressed(ebiten.KeyH) {
		v.showHeatmap = !v.showHeatmap
	}
	if pressed(ebiten.KeyI) {
		v.injector.Apply(v.world.Agent)
		if !v.injected {
			v.injected = true
			v.log.Add(v.world.Frame, "strategy", "inject", "strategy set installed", 0)
		}
		v.status = "strategy set active"
	}
	if pressed(ebiten.KeyC) {
		v.copyReport()
	}
	if pressed(ebiten.KeyR) {
		v.reset(v.seed + 1)
	}
}

func (v *View) copyReport() {
	res, err := v.recorder.Finalize(v.world.Frame)
	if err != nil {
		v.status = err.Error()
		return
	}
	data, err := MarshalReport(res)
	if err != nil {
		v.status = err.Error()
		return
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		v.status = fmt.Sprintf("clipboard: %v", err)
		return
	}
	v.status = fmt.Sprintf("report copied (%d bytes)", len(data))
}

// Layout implements ebiten.Game.
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(v.cfg.ScreenWidth), int(v.cfg.ScreenHeight)
}

package advertise

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	colorBackground = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	colorWall       = color.RGBA{R: 70, G: 70, B: 90, A: 255}
	colorAgent      = color.RGBA{R: 80, G: 200, B: 120, A: 255}
	colorAgentDash  = color.RGBA{R: 180, G: 255, B: 200, A: 255}
	colorCenter     = color.RGBA{R: 60, G: 60, B: 80, A: 255}
	colorHUD        = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	colorThreatRing = color.RGBA{R: 255, G: 80, B: 80, A: 255}
)

var enemyColors = map[EnemyKind]color.RGBA{
	EnemyMob:      {R: 200, G: 90, B: 90, A: 255},
	EnemySpeeder:  {R: 230, G: 160, B: 60, A: 255},
	EnemyTank:     {R: 150, G: 90, B: 200, A: 255},
	EnemyAssassin: {R: 230, G: 70, B: 150, A: 255},
}

// Draw renders the arena, the heatmap overlay, the actors, and the HUD.
// Part of ebiten.Game.
func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if v.showHeatmap {
		v.drawHeatmap(screen)
	}

	// Center area and arena walls.
	center := v.cfg.Center()
	vector.StrokeCircle(screen, float32(center.X), float32(center.Y),
		float32(v.cfg.CenterRadius), 1, colorCenter, true)
	vector.StrokeRect(screen, arenaMargin, arenaMargin,
		float32(v.cfg.ScreenWidth-2*arenaMargin), float32(v.cfg.ScreenHeight-2*arenaMargin),
		1, colorWall, false)

	v.drawEnemies(screen)
	v.drawAgent(screen)
	v.drawHUD(screen)
}

func (v *View) drawHeatmap(screen *ebiten.Image) {
	hm := v.recorder.cover.Heatmap()
	cell := float32(v.cfg.CellSize)
	for row, cols := range hm {
		for col, n := range cols {
			if n == 0 {
				continue
			}
			heat := n * 12
			if heat > 160 {
				heat = 160
			}
			c := color.RGBA{R: uint8(40 + heat/2), G: 30, B: uint8(60 + heat/4), A: uint8(40 + heat)}
			vector.DrawFilledRect(screen,
				float32(col)*cell, float32(row)*cell, cell, cell, c, false)
		}
	}
}

func (v *View) drawEnemies(screen *ebiten.Image) {
	a := v.world.Agent
	ranked := RankDangerousEnemies(v.cfg, Point{X: a.X, Y: a.Y}, v.world.Enemies)
	var top *Enemy
	if len(ranked) > 0 {
		top = ranked[0]
	}

	for _, e := range v.world.Enemies {
		if e.Defeated {
			continue
		}
		c := enemyColors[e.Kind]
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), 8, c, true)
		if e == top {
			vector.StrokeCircle(screen, float32(e.X), float32(e.Y), 12, 2, colorThreatRing, true)
		}
	}
}

func (v *View) drawAgent(screen *ebiten.Image) {
	a := v.world.Agent
	c := colorAgent
	if a.Dashing() {
		c = colorAgentDash
	}
	vector.DrawFilledCircle(screen, float32(a.X), float32(a.Y), 10, c, true)

	// Heading indicator.
	st := a.Strategy
	ebitenutil.DrawLine(screen, a.X, a.Y,
		a.X+st.LastHeadingX*20, a.Y+st.LastHeadingY*20, colorAgentDash)
}

func (v *View) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13
	lines := []string{
		fmt.Sprintf("frame %d  %s", v.world.Frame, v.status),
		fmt.Sprintf("strategy: %s  problems: %d  restarts: %d",
			v.world.Agent.Strategy.Current, len(v.recorder.Problems()), v.recorder.RestartCount()),
		"[space] pause  [h] heatmap  [i] inject  [c] copy report  [r] restart",
	}
	for i, l := range lines {
		text.Draw(screen, l, face, 10, 18+i*14, colorHUD)
	}
}

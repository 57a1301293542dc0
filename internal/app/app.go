//go:build ebiten

package app

import (
	"image/color"
	"time"

	"rle-life/internal/core"
	"rle-life/internal/render"
	"rle-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth = 240
	panStep  = 8
	gridStep = 10
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.Pacer

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, rate int, seed int64) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	gp.GridStep = gridStep
	return &Game{
		sim:      sim,
		painter:  gp,
		hud:      ui.NewHUD(sim, hudWidth),
		pacer:    core.NewPacer(rate),
		onColor:  color.RGBA{R: 120, G: 230, B: 140, A: 255},
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.pacer.SetRate(g.pacer.Rate() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.pacer.SetRate(max(1, g.pacer.Rate()/2))
	}
	if p, ok := g.sim.(core.Panner); ok {
		g.handlePan(p)
	}

	due := g.pacer.Due()
	if g.paused {
		due = 0
	}
	if g.tickOnce {
		due = 1
		g.tickOnce = false
	}
	for i := 0; i < due; i++ {
		g.sim.Step()
	}
	g.hud.Update(g.paused, g.pacer.Rate())
	return nil
}

func (g *Game) handlePan(p core.Panner) {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		p.Recenter()
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		p.Pan(-panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		p.Pan(panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		p.Pan(0, -panStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		p.Pan(0, panStep)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	s := g.sim.Size()
	g.hud.Draw(screen, s.W*g.scale, s.H*g.scale)
}

// WindowSize is the scaled view plus the HUD panel, in pixels.
func (g *Game) WindowSize() (int, int) {
	return viewSize(g.sim.Size(), g.scale, g.hud.Width())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

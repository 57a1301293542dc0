//go:build !ebiten

package app

import (
	"errors"

	"rle-life/internal/core"
)

var errNoViewer = errors.New("app: the life viewer is only built with -tags ebiten")

// Game stands in for the viewer loop in headless builds so packages that
// reference it still compile.
type Game struct{}

// New panics: there is no window to drive a life view without ebiten.
func New(core.Sim, int, int, int64) *Game {
	panic(errNoViewer)
}

// Reset does nothing without a viewer.
func (g *Game) Reset(int64) {}

// Update reports that the viewer is unavailable.
func (g *Game) Update() error { return errNoViewer }

// Draw does nothing without a viewer.
func (g *Game) Draw(any) {}

// WindowSize is zero without a viewer.
func (g *Game) WindowSize() (int, int) { return 0, 0 }

// Layout is zero without a viewer.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }

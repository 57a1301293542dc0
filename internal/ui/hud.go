//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"rle-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 16
	groupGap     = 8
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor     = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	valueColor      = color.RGBA{R: 235, G: 235, B: 240, A: 255}
	pausedColor     = color.RGBA{R: 240, G: 180, B: 60, A: 255}
)

// HUD renders the status panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	paused     bool
	rate       int
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Width is the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached snapshot from the simulation.
func (h *HUD) Update(paused bool, rate int) {
	if h == nil {
		return
	}
	h.paused = paused
	h.rate = rate
	if provider, ok := h.sim.(core.ParametersProvider); ok {
		h.snapshot = provider.Parameters()
		return
	}
	h.snapshot = core.ParameterSnapshot{}
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBackground)

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	text.Draw(h.panel, h.sim.Name(), face, panelPadding, y, headerColor)
	y += lineHeight
	if h.paused {
		text.Draw(h.panel, "paused", face, panelPadding, y, pausedColor)
	} else {
		text.Draw(h.panel, fmt.Sprintf("running %d gen/s", h.rate), face, panelPadding, y, labelColor)
	}
	y += lineHeight + groupGap

	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, headerColor)
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, labelColor)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, valueColor)
			y += lineHeight
		}
		y += groupGap
	}

	text.Draw(h.panel, "space pause  n step  r reset", face, panelPadding, height-2*lineHeight, labelColor)
	text.Draw(h.panel, "s new seed  c centre  arrows pan", face, panelPadding, height-lineHeight, labelColor)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

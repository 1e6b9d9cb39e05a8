//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"pixelfire/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the strip view. Parameters
// are fixed at startup, so the panel only shows them alongside live stats.
type HUD struct {
	title    string
	width    int
	snapshot core.ParameterSnapshot
	stats    string

	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs a HUD for the provided parameters and panel width.
func NewHUD(name string, params core.ParameterSnapshot, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{title: buildTitle(name), width: width, snapshot: params}
}

// Width returns the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update records the latest frame statistics.
func (h *HUD) Update(frames int, total, peak float64) {
	if h == nil {
		return
	}
	h.stats = fmt.Sprintf("frame %d  heat %.0f  peak %.0f", frames, total, peak)
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawLines()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(name string) string {
	if name == "" {
		return "Parameters"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " Parameters"
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += groupSpacing
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 255, G: 170, B: 60, A: 255})
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			b := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-b.Dx(), y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			y += lineHeight
		}
		y += groupSpacing - lineHeight
	}
	if h.stats != "" {
		text.Draw(h.panel, h.stats, face, panelPadding, h.lastHeight-panelPadding, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}
}

const (
	panelPadding   = 12
	lineHeight     = 18
	groupSpacing   = 28
	headerBaseline = 14
)

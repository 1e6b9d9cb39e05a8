//go:build ebiten

package ui

import (
	"image/color"

	"pixelfire/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws a bar per pixel showing raw heat on top of the strip view.
// H toggles it.
type Overlay struct {
	n     int
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for a strip of n pixels.
func NewOverlay(n, scale int) *Overlay {
	o := &Overlay{n: n, scale: max(scale, 1)}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
}

// Draw renders heat bars over the strip grid.
func (o *Overlay) Draw(screen *ebiten.Image, heat []float64) {
	if !o.show || o.n == 0 {
		return
	}
	cols, _ := render.StripLayout(o.n)
	for i, h := range heat {
		if i >= o.n {
			break
		}
		frac := render.Position(h)
		if frac <= 0 {
			continue
		}
		barH := frac * float64(o.scale)
		x := float64((i % cols) * o.scale)
		y := float64((i/cols+1)*o.scale) - barH

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(o.scale)/4, barH)
		op.GeoM.Translate(x+float64(o.scale)*3/8, y)
		op.ColorScale.Scale(1, 1, 1, 0.6)
		screen.DrawImage(o.pixel, op)
	}
}

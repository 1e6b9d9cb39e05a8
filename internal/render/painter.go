//go:build ebiten

package render

import (
	"pixelfire/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// StripPainter uploads a strip frame into an image laid out by StripLayout.
type StripPainter struct {
	cols, rows int
	img        *ebiten.Image
	buf        []byte
}

// NewStripPainter allocates a painter for n pixels.
func NewStripPainter(n int) *StripPainter {
	cols, rows := StripLayout(n)
	sp := &StripPainter{cols: cols, rows: rows, buf: make([]byte, 4*cols*rows)}
	sp.img = ebiten.NewImage(max(cols, 1), max(rows, 1))
	return sp
}

// Blit draws colors onto dst with every pixel scaled to a square block.
func (sp *StripPainter) Blit(dst *ebiten.Image, colors []core.Packed, scale int) {
	if sp.cols == 0 {
		return
	}
	FillRGBA(sp.buf, colors)
	sp.img.WritePixels(sp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(sp.img, op)
}

// Size returns the grid dimensions in strip pixels.
func (sp *StripPainter) Size() (int, int) { return sp.cols, sp.rows }

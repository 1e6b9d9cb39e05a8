package render

import (
	"fmt"

	"pixelfire/internal/core"
	pcore "pixelfire/pkg/core"
)

// Renderer writes one frame of heat values to a sink.
type Renderer struct {
	palette *Palette
	adjust  Adjustment
	rng     *pcore.RNG
	order   []int
}

// NewRenderer constructs a renderer. rng drives the per-frame write order.
func NewRenderer(p *Palette, adj Adjustment, rng *pcore.RNG) *Renderer {
	if rng == nil {
		rng = pcore.NewRNG(pcore.SeedOrNow(0))
	}
	return &Renderer{palette: p, adjust: adj, rng: rng}
}

// Color maps a single heat value to its packed color.
func (r *Renderer) Color(heat float64) core.Packed {
	return r.adjust.Apply(r.palette.Lookup(Position(heat)))
}

// Render writes every pixel in a freshly shuffled order and then flushes
// once. The first sink error aborts the frame.
func (r *Renderer) Render(heat []float64, sink core.Sink) error {
	if len(r.order) != len(heat) {
		r.order = make([]int, len(heat))
		for i := range r.order {
			r.order[i] = i
		}
	}
	r.rng.ShuffleInts(r.order)
	for _, p := range r.order {
		if err := sink.SetPixel(p, r.Color(heat[p])); err != nil {
			return fmt.Errorf("set pixel %d: %w", p, err)
		}
	}
	if err := sink.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// LastOrder returns a copy of the visitation order used by the latest Render.
func (r *Renderer) LastOrder() []int {
	return append([]int(nil), r.order...)
}

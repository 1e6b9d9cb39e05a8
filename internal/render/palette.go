package render

import (
	"errors"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// HeatCeiling is the heat value that maps to the last palette color.
	HeatCeiling = 240.0
	// GradientSteps is the number of colors emitted per adjacent pair when a
	// palette is smoothed.
	GradientSteps = 10
)

// ErrEmptyPalette is returned when a palette is built from no colors.
var ErrEmptyPalette = errors.New("palette needs at least one color")

// Palette maps a position in [0, 1] to a color by interpolating between
// ordered reference colors.
type Palette struct {
	colors []colorful.Color
}

// NewPalette builds a palette from the reference colors. When smooth is set
// the colors are first replaced by their gradient expansion.
func NewPalette(colors []colorful.Color, smooth bool) (*Palette, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}
	if smooth {
		colors = Expand(colors, GradientSteps)
	} else {
		colors = append([]colorful.Color(nil), colors...)
	}
	return &Palette{colors: colors}, nil
}

// Len reports the number of colors after any expansion.
func (p *Palette) Len() int { return len(p.colors) }

// Lookup resolves the color at pos. Positions outside [0, 1] clamp to the
// end colors.
func (p *Palette) Lookup(pos float64) colorful.Color {
	pos = clamp01(pos)
	last := len(p.colors) - 1
	if last == 0 {
		return p.colors[0]
	}
	scaled := pos * float64(last)
	idx := int(math.Floor(scaled))
	if idx >= last {
		return p.colors[last]
	}
	return p.colors[idx].BlendRgb(p.colors[idx+1], scaled-float64(idx))
}

// Position converts a heat value into a palette position.
func Position(heat float64) float64 {
	return clamp01(heat / HeatCeiling)
}

// Expand linearly interpolates steps colors across each adjacent pair of
// colors. Every segment includes both of its end points, so the result has
// steps*(len(colors)-1) entries, starts with the first color and ends with
// the last one.
func Expand(colors []colorful.Color, steps int) []colorful.Color {
	if len(colors) < 2 || steps < 2 {
		return append([]colorful.Color(nil), colors...)
	}
	out := make([]colorful.Color, 0, steps*(len(colors)-1))
	for i := 0; i < len(colors)-1; i++ {
		from, to := colors[i], colors[i+1]
		for s := 0; s < steps; s++ {
			t := float64(s) / float64(steps-1)
			out = append(out, from.BlendRgb(to, t))
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

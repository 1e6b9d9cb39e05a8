package render

import (
	"math"

	"pixelfire/internal/core"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultGamma is the exponent applied to each channel before levels.
const DefaultGamma = 2.7

// Levels holds per-channel brightness multipliers for red, green and blue.
type Levels [3]float64

// DefaultLevels tames green and blue so the strip reads as flame.
var DefaultLevels = Levels{0.9, 0.8, 0.15}

// Adjustment turns palette colors into packed hardware colors.
type Adjustment struct {
	Gamma  float64
	Levels Levels
}

// Apply gamma-corrects c, scales each channel by its level and packs it.
func (a Adjustment) Apply(c colorful.Color) core.Packed {
	gamma := a.Gamma
	if gamma <= 0 {
		gamma = 1
	}
	return core.Pack(
		denormalize(math.Pow(clamp01(c.R), gamma)*a.Levels[0]),
		denormalize(math.Pow(clamp01(c.G), gamma)*a.Levels[1]),
		denormalize(math.Pow(clamp01(c.B), gamma)*a.Levels[2]),
	)
}

// denormalize maps [0, 1] onto 0-255 so that every output byte covers an
// equal slice of the input range.
func denormalize(v float64) uint8 {
	v = clamp01(v)
	n := int(v * 256)
	if n > 255 {
		n = 255
	}
	return uint8(n)
}

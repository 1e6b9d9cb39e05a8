package fire

import (
	"pixelfire/internal/core"
	pcore "pixelfire/pkg/core"
)

const (
	// SparkMin and SparkMax bound the heat a single spark adds.
	SparkMin = 160.0
	SparkMax = 240.0
)

// HeatField holds one non-negative heat value per pixel on a ring.
type HeatField struct {
	ring     core.Ring
	sparking int
	cooling  float64

	cur  []float64
	snap []float64

	rng *pcore.RNG
}

// NewHeatField allocates a cold field for the given configuration.
func NewHeatField(cfg Config, rng *pcore.RNG) *HeatField {
	n := cfg.NumPixels
	if n < 1 {
		n = 1
	}
	return &HeatField{
		ring:     core.Ring{N: n},
		sparking: cfg.Sparking,
		cooling:  cfg.Cooling,
		cur:      make([]float64, n),
		snap:     make([]float64, n),
		rng:      rng,
	}
}

// Len returns the number of pixels.
func (f *HeatField) Len() int { return len(f.cur) }

// Values exposes the heat values. Callers may read but should not keep the
// slice across steps.
func (f *HeatField) Values() []float64 { return f.cur }

// Total sums the heat across the strip.
func (f *HeatField) Total() float64 {
	sum := 0.0
	for _, h := range f.cur {
		sum += h
	}
	return sum
}

// Peak returns the hottest value on the strip.
func (f *HeatField) Peak() float64 {
	peak := 0.0
	for _, h := range f.cur {
		if h > peak {
			peak = h
		}
	}
	return peak
}

// Clear zeroes every pixel.
func (f *HeatField) Clear() {
	for i := range f.cur {
		f.cur[i] = 0
	}
}

// CoolingLimit is the exclusive upper bound of the per-pixel cooling draw.
func (f *HeatField) CoolingLimit() float64 {
	return f.cooling*10/float64(len(f.cur)) + 2
}

// Cool removes a random amount of heat from every pixel, never going below zero.
func (f *HeatField) Cool() {
	limit := f.CoolingLimit()
	for p := range f.cur {
		v := f.cur[p] - f.rng.Uniform(0, limit)
		if v < 0 {
			v = 0
		}
		f.cur[p] = v
	}
}

// Heat diffuses heat along the ring. Every pixel becomes the mean of the two
// pixels on either side of it, read from a snapshot taken before any pixel is
// rewritten. On strips shorter than five pixels the neighbor indices repeat.
func (f *HeatField) Heat() {
	copy(f.snap, f.cur)
	for p := range f.cur {
		f.cur[p] = (f.snap[f.ring.Wrap(p-2)] +
			f.snap[f.ring.Wrap(p-1)] +
			f.snap[f.ring.Wrap(p+1)] +
			f.snap[f.ring.Wrap(p+2)]) / 4
	}
}

// Spark ignites a random pixel with probability sparking/255. It returns the
// pixel that was heated, or -1 when no spark fired.
func (f *HeatField) Spark() int {
	if !f.rng.Chance(f.sparking, MaxSparking) {
		return -1
	}
	p := f.rng.IntN(len(f.cur))
	f.cur[p] += f.rng.Uniform(SparkMin, SparkMax)
	return p
}

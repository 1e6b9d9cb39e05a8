package fire

import (
	pcore "pixelfire/pkg/core"
)

// Fire evolves a heat field one frame at a time: cool, diffuse, then spark.
type Fire struct {
	cfg   Config
	seed  int64
	field *HeatField

	frames int
	sparks int
}

// New returns a fire simulation with default parameters for n pixels.
func New(n int) *Fire {
	cfg := DefaultConfig()
	cfg.NumPixels = n
	return NewWithConfig(cfg)
}

// NewWithConfig returns a fire simulation configured from the provided options.
func NewWithConfig(cfg Config) *Fire {
	seed := pcore.SeedOrNow(cfg.Seed)
	return &Fire{
		cfg:   cfg,
		seed:  seed,
		field: NewHeatField(cfg, pcore.NewRNG(seed)),
	}
}

// Len reports the number of pixels.
func (f *Fire) Len() int { return f.field.Len() }

// Seed returns the effective seed, which differs from the configured seed
// when that was zero.
func (f *Fire) Seed() int64 { return f.seed }

// Field exposes the heat field.
func (f *Fire) Field() *HeatField { return f.field }

// Heat exposes the current heat values.
func (f *Fire) Heat() []float64 { return f.field.Values() }

// Frames counts completed steps.
func (f *Fire) Frames() int { return f.frames }

// Sparks counts sparks ignited so far.
func (f *Fire) Sparks() int { return f.sparks }

// Step advances the simulation by one frame. Sparks land after diffusion so a
// fresh spark is not smoothed away before it is shown.
func (f *Fire) Step() {
	f.field.Cool()
	f.field.Heat()
	if f.field.Spark() >= 0 {
		f.sparks++
	}
	f.frames++
}

// Reset extinguishes the fire and clears the counters.
func (f *Fire) Reset() {
	f.field.Clear()
	f.frames = 0
	f.sparks = 0
}

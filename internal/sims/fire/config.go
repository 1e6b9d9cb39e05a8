package fire

import (
	"errors"
	"fmt"
)

// MaxSparking is the denominator of the per-frame spark probability.
const MaxSparking = 255

// Config controls the fire simulation. It is fixed once the simulation is built.
type Config struct {
	NumPixels int
	// Sparking is the chance out of 255 that a spark ignites each frame.
	// Higher values give a roaring fire, lower values a flickery one.
	Sparking int
	// Cooling sets how much heat each pixel loses per frame. Less cooling
	// gives taller flames.
	Cooling float64

	// Seed drives every random draw; zero picks a time-based seed.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		NumPixels: 60,
		Sparking:  100,
		Cooling:   40,
	}
}

// Validate reports every out-of-range field.
func (c Config) Validate() error {
	var errs []error
	if c.NumPixels <= 0 {
		errs = append(errs, fmt.Errorf("num_pixels must be positive, got %d", c.NumPixels))
	}
	if c.Sparking < 0 || c.Sparking > MaxSparking {
		errs = append(errs, fmt.Errorf("sparking must be in [0,%d], got %d", MaxSparking, c.Sparking))
	}
	if !(c.Cooling > 0) {
		errs = append(errs, fmt.Errorf("cooling must be positive, got %g", c.Cooling))
	}
	return errors.Join(errs...)
}

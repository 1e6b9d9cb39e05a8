// Package config loads and validates the JSON configuration and applies
// command-line overrides on top of it.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"pixelfire/internal/core"
	"pixelfire/internal/render"
	"pixelfire/internal/sims/fire"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// HeatColors is the built-in black body palette.
var HeatColors = []Color{
	RGB(0.75, 0.0, 0.2), // NCS red
	RGB(1.0, 0.0, 0.0),  // red
	RGB(1.0, 0.5, 0.0),  // orange
	RGB(1.0, 0.7, 0.2),  // saffron
	RGB(1.0, 0.9, 0.9),  // white
}

// Config is the full set of settings the program runs with.
type Config struct {
	NumPixels      int       `json:"num_pixels"`
	Sparking       int       `json:"sparking"`
	Cooling        float64   `json:"cooling"`
	Colors         []Color   `json:"colors"`
	Levels         []float64 `json:"levels"`
	ColorSmoothing bool      `json:"color_smoothing"`

	Gamma  float64 `json:"gamma"`
	MaxFPS int     `json:"max_fps"`
	Seed   int64   `json:"seed"`

	Sink       string `json:"sink"`
	SPIPort    string `json:"spi_port"`
	GPIOPin    int    `json:"gpio_pin"`
	Brightness int    `json:"brightness"`
}

// Default returns the configuration used when no file is given. Fields absent
// from a file keep these values.
func Default() Config {
	sim := fire.DefaultConfig()
	levels := render.DefaultLevels
	return Config{
		NumPixels:  sim.NumPixels,
		Sparking:   sim.Sparking,
		Cooling:    sim.Cooling,
		Colors:     append([]Color(nil), HeatColors...),
		Levels:     levels[:],
		Gamma:      render.DefaultGamma,
		Sink:       "terminal",
		GPIOPin:    18,
		Brightness: 255,
	}
}

// Load reads a JSON configuration file over the defaults and validates it.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg := Default()
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem at once, wrapped in ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	if err := c.Fire().Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(c.Colors) < 2 {
		errs = append(errs, fmt.Errorf("colors needs at least 2 entries, got %d", len(c.Colors)))
	}
	for i, col := range c.Colors {
		if !col.InGamut() {
			errs = append(errs, fmt.Errorf("colors[%d] = %v has a channel outside [0,1]", i, [3]float64{col.R, col.G, col.B}))
		}
	}
	if len(c.Levels) != 3 {
		errs = append(errs, fmt.Errorf("levels needs 3 entries, got %d", len(c.Levels)))
	}
	for i, l := range c.Levels {
		if math.IsNaN(l) || l < 0 || l > 1 {
			errs = append(errs, fmt.Errorf("levels[%d] = %g outside [0,1]", i, l))
		}
	}
	if !(c.Gamma > 0) {
		errs = append(errs, fmt.Errorf("gamma must be positive, got %g", c.Gamma))
	}
	if c.MaxFPS < 0 {
		errs = append(errs, fmt.Errorf("max_fps must not be negative, got %d", c.MaxFPS))
	}
	if c.Brightness < 0 || c.Brightness > 255 {
		errs = append(errs, fmt.Errorf("brightness must be in [0,255], got %d", c.Brightness))
	}
	if c.Sink == "" {
		errs = append(errs, errors.New("sink must be named"))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// Fire extracts the simulation parameters.
func (c Config) Fire() fire.Config {
	return fire.Config{
		NumPixels: c.NumPixels,
		Sparking:  c.Sparking,
		Cooling:   c.Cooling,
		Seed:      c.Seed,
	}
}

// Palette builds the heat palette, expanded when color smoothing is on.
func (c Config) Palette() (*render.Palette, error) {
	colors := make([]colorful.Color, len(c.Colors))
	for i, col := range c.Colors {
		colors[i] = col.Colorful()
	}
	return render.NewPalette(colors, c.ColorSmoothing)
}

// Adjustment returns the gamma and levels applied after palette lookup.
func (c Config) Adjustment() render.Adjustment {
	adj := render.Adjustment{Gamma: c.Gamma}
	copy(adj.Levels[:], c.Levels)
	return adj
}

// SinkOptions returns the hardware settings for the configured sink.
func (c Config) SinkOptions(interrupt func()) core.SinkOptions {
	return core.SinkOptions{
		NumPixels:  c.NumPixels,
		SPIPort:    c.SPIPort,
		GPIOPin:    c.GPIOPin,
		Brightness: c.Brightness,
		Interrupt:  interrupt,
	}
}

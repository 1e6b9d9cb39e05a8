package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a palette entry. In JSON it is either an [r, g, b] triple with
// channels in [0, 1] or a hex string such as "#ff8000".
type Color colorful.Color

// RGB builds a Color from channel values in [0, 1].
func RGB(r, g, b float64) Color { return Color{R: r, G: g, B: b} }

// Colorful converts to the go-colorful representation.
func (c Color) Colorful() colorful.Color { return colorful.Color(c) }

// InGamut reports whether every channel lies in [0, 1].
func (c Color) InGamut() bool { return colorful.Color(c).IsValid() }

// UnmarshalJSON accepts a triple or a hex string.
func (c *Color) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := colorful.Hex(s)
		if err != nil {
			return fmt.Errorf("color %q: %w", s, err)
		}
		*c = Color(parsed)
		return nil
	}
	var triple []float64
	if err := json.Unmarshal(data, &triple); err != nil {
		return fmt.Errorf("color must be [r,g,b] or \"#rrggbb\": %w", err)
	}
	if len(triple) != 3 {
		return fmt.Errorf("color needs 3 channels, got %d", len(triple))
	}
	*c = RGB(triple[0], triple[1], triple[2])
	return nil
}

// MarshalJSON writes the color as a triple.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{c.R, c.G, c.B})
}

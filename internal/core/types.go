package core

import (
	"errors"
	"fmt"
	"sort"
)

// Packed is a 24-bit color laid out as 0x00RRGGBB, the form LED drivers take.
type Packed uint32

// Off is the packed color of a dark pixel.
const Off Packed = 0

// Pack combines 8-bit channels into a Packed color.
func Pack(r, g, b uint8) Packed {
	return Packed(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB splits a Packed color into its 8-bit channels.
func (p Packed) RGB() (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

var (
	// ErrUnknownSink is returned by OpenSink for unregistered names.
	ErrUnknownSink = errors.New("unknown sink")
	// ErrPixelRange is returned by sinks for out-of-range pixel indices.
	ErrPixelRange = errors.New("pixel index out of range")
)

// Sink is the hardware side of the animation: per-pixel writes become
// visible together on Flush.
type Sink interface {
	SetPixel(i int, c Packed) error
	Flush() error
	Close() error
}

// SinkOptions carries the hardware settings a sink factory may need.
type SinkOptions struct {
	NumPixels  int
	SPIPort    string
	GPIOPin    int
	Brightness int

	// Interrupt is invoked by sinks that capture the user's quit keys.
	Interrupt func()
}

// SinkFactory opens a sink for the given options.
type SinkFactory func(opts SinkOptions) (Sink, error)

var sinks = map[string]SinkFactory{}

// RegisterSink adds a sink factory under the provided name.
func RegisterSink(name string, f SinkFactory) {
	if name == "" || f == nil {
		return
	}
	sinks[name] = f
}

// SinkNames lists the registered sinks in sorted order.
func SinkNames() []string {
	names := make([]string, 0, len(sinks))
	for name := range sinks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasSink reports whether a sink is registered under name.
func HasSink(name string) bool {
	_, ok := sinks[name]
	return ok
}

// OpenSink constructs the sink registered under name.
func OpenSink(name string, opts SinkOptions) (Sink, error) {
	f, ok := sinks[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownSink, name, SinkNames())
	}
	s, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("open sink %q: %w", name, err)
	}
	return s, nil
}

//go:build ws281x

// Package ws281x drives a WS281x strip through the rpi_ws281x PWM/DMA driver.
package ws281x

import (
	"fmt"

	"pixelfire/internal/core"

	ws2811 "github.com/rpi-ws281x/rpi-ws281x-go"
)

// Sink writes packed colors straight into the driver's LED buffer.
type Sink struct {
	dev  *ws2811.WS2811
	leds []uint32
}

// Open initialises the driver on the configured GPIO pin. It needs root.
func Open(opts core.SinkOptions) (*Sink, error) {
	opt := ws2811.DefaultOptions
	opt.Channels[0].GpioPin = opts.GPIOPin
	opt.Channels[0].LedCount = opts.NumPixels
	opt.Channels[0].Brightness = opts.Brightness

	dev, err := ws2811.MakeWS2811(&opt)
	if err != nil {
		return nil, fmt.Errorf("ws2811: %w", err)
	}
	if err := dev.Init(); err != nil {
		dev.Fini()
		return nil, fmt.Errorf("ws2811 init: %w", err)
	}
	return &Sink{dev: dev, leds: dev.Leds(0)}, nil
}

// SetPixel stores a color in the driver buffer.
func (s *Sink) SetPixel(i int, c core.Packed) error {
	if i < 0 || i >= len(s.leds) {
		return fmt.Errorf("%w: %d not in [0,%d)", core.ErrPixelRange, i, len(s.leds))
	}
	s.leds[i] = uint32(c)
	return nil
}

// Flush renders the buffer and waits for the DMA transfer.
func (s *Sink) Flush() error {
	if err := s.dev.Render(); err != nil {
		return fmt.Errorf("ws2811 render: %w", err)
	}
	if err := s.dev.Wait(); err != nil {
		return fmt.Errorf("ws2811 wait: %w", err)
	}
	return nil
}

// Close releases the driver.
func (s *Sink) Close() error {
	s.dev.Fini()
	return nil
}

func init() {
	core.RegisterSink("ws281x", func(opts core.SinkOptions) (core.Sink, error) {
		return Open(opts)
	})
}

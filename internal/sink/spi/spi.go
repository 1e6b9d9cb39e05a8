// Package spi drives a WS281x strip from an SPI bus through periph.io.
package spi

import (
	"errors"
	"fmt"
	"io"

	"pixelfire/internal/core"

	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"
)

// strip is the part of nrzled.Dev the sink uses.
type strip interface {
	Write(pixels []byte) (int, error)
	Halt() error
}

// Sink buffers one RGB frame and writes it to the strip on Flush.
type Sink struct {
	dev        strip
	port       io.Closer
	buf        []byte
	brightness int
	closed     bool
}

// Open initialises the host drivers, opens the SPI port (empty name picks
// the first one) and attaches an NRZ LED strip to it.
func Open(opts core.SinkOptions) (*Sink, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	port, err := spireg.Open(opts.SPIPort)
	if err != nil {
		return nil, fmt.Errorf("open spi port %q: %w", opts.SPIPort, err)
	}
	o := nrzled.DefaultOpts
	o.NumPixels = opts.NumPixels
	o.Channels = 3
	dev, err := nrzled.NewSPI(port, &o)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	return newSink(dev, port, opts.NumPixels, opts.Brightness), nil
}

func newSink(dev strip, port io.Closer, n, brightness int) *Sink {
	brightness = min(max(brightness, 0), 255)
	return &Sink{dev: dev, port: port, buf: make([]byte, 3*n), brightness: brightness}
}

// SetPixel stores a color, scaled by the configured brightness.
func (s *Sink) SetPixel(i int, c core.Packed) error {
	if i < 0 || 3*i >= len(s.buf) {
		return fmt.Errorf("%w: %d not in [0,%d)", core.ErrPixelRange, i, len(s.buf)/3)
	}
	r, g, b := c.RGB()
	s.buf[3*i+0] = s.scale(r)
	s.buf[3*i+1] = s.scale(g)
	s.buf[3*i+2] = s.scale(b)
	return nil
}

func (s *Sink) scale(v uint8) uint8 {
	return uint8(int(v) * s.brightness / 255)
}

// Flush pushes the buffered frame onto the wire.
func (s *Sink) Flush() error {
	if s.closed {
		return errors.New("spi sink closed")
	}
	if _, err := s.dev.Write(s.buf); err != nil {
		return fmt.Errorf("spi write: %w", err)
	}
	return nil
}

// Close halts the strip and releases the port.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return errors.Join(s.dev.Halt(), s.port.Close())
}

func init() {
	core.RegisterSink("spi", func(opts core.SinkOptions) (core.Sink, error) {
		return Open(opts)
	})
}

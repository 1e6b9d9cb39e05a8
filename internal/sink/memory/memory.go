// Package memory provides a framebuffer sink that keeps the strip in memory.
// It backs the window preview, the sweep tool and tests.
package memory

import (
	"errors"
	"fmt"

	"pixelfire/internal/core"
)

// ErrClosed is returned by writes after Close.
var ErrClosed = errors.New("memory sink closed")

// Sink double-buffers a strip: SetPixel fills the pending frame and Flush
// publishes it. It is not safe for concurrent use.
type Sink struct {
	pending []core.Packed
	shown   []core.Packed

	writes     []int
	lastWrites []int

	flushes int
	closed  bool
}

// New allocates a sink for n pixels.
func New(n int) *Sink {
	if n < 0 {
		n = 0
	}
	return &Sink{
		pending: make([]core.Packed, n),
		shown:   make([]core.Packed, n),
		writes:  make([]int, 0, n),
	}
}

// Len returns the number of pixels.
func (s *Sink) Len() int { return len(s.pending) }

// SetPixel stages a color for the next flush.
func (s *Sink) SetPixel(i int, c core.Packed) error {
	if s.closed {
		return ErrClosed
	}
	if i < 0 || i >= len(s.pending) {
		return fmt.Errorf("%w: %d not in [0,%d)", core.ErrPixelRange, i, len(s.pending))
	}
	s.pending[i] = c
	s.writes = append(s.writes, i)
	return nil
}

// Flush publishes the pending frame.
func (s *Sink) Flush() error {
	if s.closed {
		return ErrClosed
	}
	copy(s.shown, s.pending)
	s.lastWrites = append(s.lastWrites[:0], s.writes...)
	s.writes = s.writes[:0]
	s.flushes++
	return nil
}

// Close marks the sink closed. Closing twice is allowed.
func (s *Sink) Close() error {
	s.closed = true
	return nil
}

// Frame returns a copy of the most recently flushed frame.
func (s *Sink) Frame() []core.Packed {
	return append([]core.Packed(nil), s.shown...)
}

// View exposes the flushed frame without copying. Callers must not modify it.
func (s *Sink) View() []core.Packed { return s.shown }

// WriteOrder returns the pixel indices written before the last flush, in order.
func (s *Sink) WriteOrder() []int {
	return append([]int(nil), s.lastWrites...)
}

// Flushes counts completed flushes.
func (s *Sink) Flushes() int { return s.flushes }

// AllOff reports whether every flushed pixel is dark.
func (s *Sink) AllOff() bool {
	for _, c := range s.shown {
		if c != core.Off {
			return false
		}
	}
	return true
}

func init() {
	core.RegisterSink("memory", func(opts core.SinkOptions) (core.Sink, error) {
		return New(opts.NumPixels), nil
	})
}

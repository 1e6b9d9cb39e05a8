package memory

import (
	"errors"
	"slices"
	"testing"

	"pixelfire/internal/core"
)

func TestFlushPublishesPendingFrame(t *testing.T) {
	s := New(3)
	if err := s.SetPixel(2, 0xff0000); err != nil {
		t.Fatalf("SetPixel: %v", err)
	}
	if err := s.SetPixel(0, 0x00ff00); err != nil {
		t.Fatalf("SetPixel: %v", err)
	}
	if !s.AllOff() {
		t.Fatal("writes must not be visible before Flush")
	}
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	want := []core.Packed{0x00ff00, 0, 0xff0000}
	if got := s.Frame(); !slices.Equal(got, want) {
		t.Fatalf("frame = %v, expected %v", got, want)
	}
	if got := s.WriteOrder(); !slices.Equal(got, []int{2, 0}) {
		t.Fatalf("write order = %v", got)
	}
	if s.Flushes() != 1 {
		t.Fatalf("flushes = %d", s.Flushes())
	}
}

func TestRangeAndClose(t *testing.T) {
	s := New(2)
	if err := s.SetPixel(2, 1); !errors.Is(err, core.ErrPixelRange) {
		t.Fatalf("expected ErrPixelRange, got %v", err)
	}
	if err := s.SetPixel(-1, 1); !errors.Is(err, core.ErrPixelRange) {
		t.Fatalf("expected ErrPixelRange, got %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if err := s.Flush(); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestRegistered(t *testing.T) {
	s, err := core.OpenSink("memory", core.SinkOptions{NumPixels: 5})
	if err != nil {
		t.Fatalf("OpenSink: %v", err)
	}
	if got := s.(*Sink).Len(); got != 5 {
		t.Fatalf("Len = %d", got)
	}
}

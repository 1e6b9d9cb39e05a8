// Package terminal previews the strip in a terminal, one cell per LED.
package terminal

import (
	"fmt"
	"sync"
	"sync/atomic"

	"pixelfire/internal/core"

	"github.com/gdamore/tcell/v2"
)

// ledRune is drawn for every pixel.
const ledRune = '█'

// screen is the part of tcell.Screen the sink uses.
type screen interface {
	Init() error
	Fini()
	Size() (int, int)
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
	PollEvent() tcell.Event
}

// Sink draws the strip row by row, wrapping at the terminal width.
type Sink struct {
	scr       screen
	pending   []core.Packed
	interrupt func()

	resized   atomic.Bool
	closeOnce sync.Once
	events    sync.WaitGroup
}

// New takes over the terminal. interrupt, when non-nil, is called for
// Ctrl-C, Esc and q because the raw terminal no longer raises SIGINT.
func New(n int, interrupt func()) (*Sink, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return newWithScreen(scr, n, interrupt)
}

func newWithScreen(scr screen, n int, interrupt func()) (*Sink, error) {
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	scr.Clear()
	s := &Sink{scr: scr, pending: make([]core.Packed, n), interrupt: interrupt}
	s.events.Add(1)
	go s.pollEvents()
	return s, nil
}

func (s *Sink) pollEvents() {
	defer s.events.Done()
	for {
		ev := s.scr.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.resized.Store(true)
		case *tcell.EventKey:
			if isQuitKey(ev) && s.interrupt != nil {
				s.interrupt()
			}
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// SetPixel stages a color for the next flush.
func (s *Sink) SetPixel(i int, c core.Packed) error {
	if i < 0 || i >= len(s.pending) {
		return fmt.Errorf("%w: %d not in [0,%d)", core.ErrPixelRange, i, len(s.pending))
	}
	s.pending[i] = c
	return nil
}

// Flush draws the staged frame and shows it.
func (s *Sink) Flush() error {
	if s.resized.Swap(false) {
		s.scr.Clear()
	}
	w, h := s.scr.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	for i, c := range s.pending {
		x, y := i%w, i/w
		if y >= h {
			break
		}
		r, g, b := c.RGB()
		style := tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b))).
			Background(tcell.ColorBlack)
		s.scr.SetContent(x, y, ledRune, nil, style)
	}
	s.scr.Show()
	return nil
}

// Close restores the terminal. It is safe to call more than once.
func (s *Sink) Close() error {
	s.closeOnce.Do(func() {
		s.scr.Fini()
		s.events.Wait()
	})
	return nil
}

func init() {
	core.RegisterSink("terminal", func(opts core.SinkOptions) (core.Sink, error) {
		return New(opts.NumPixels, opts.Interrupt)
	})
}

package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"

	"pixelfire/internal/core"
)

// PreviewSink is the sink name that opens the ebiten preview window instead
// of a registered sink.
const PreviewSink = "window"

// State is the lifecycle stage of an Animator.
type State int32

const (
	// Running is the initial and steady state.
	Running State = iota
	// ShuttingDown is entered once when the strip is being switched off.
	ShuttingDown
	// Terminated follows the final reset.
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case ShuttingDown:
		return "shutting down"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Simulation is advanced once per frame and exposes its heat values.
type Simulation interface {
	Step()
	Heat() []float64
}

// Painter turns heat values into a flushed frame on the sink.
type Painter interface {
	Render(heat []float64, sink core.Sink) error
}

// Options tune an Animator.
type Options struct {
	// MaxFPS caps the frame rate; zero runs frames back to back.
	MaxFPS int
	// Logger receives shutdown diagnostics and frame statistics. Nil discards.
	Logger *log.Logger
	// StatsEvery logs heat statistics every n frames when positive.
	StatsEvery int
}

// Animator drives simulation, painter and sink from a single goroutine.
type Animator struct {
	sim     Simulation
	painter Painter
	sink    core.Sink
	pacer   *core.Pacer
	logger  *log.Logger
	every   int

	stop     atomic.Bool
	state    atomic.Int32
	shutdown sync.Once
	resetMu  sync.Mutex

	frames int
}

// NewAnimator wires the loop together. The sink is not closed by the Animator.
func NewAnimator(sim Simulation, painter Painter, sink core.Sink, opts Options) *Animator {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Animator{
		sim:     sim,
		painter: painter,
		sink:    sink,
		pacer:   core.NewPacer(opts.MaxFPS),
		logger:  logger,
		every:   opts.StatsEvery,
	}
}

// State reports the current lifecycle stage.
func (a *Animator) State() State { return State(a.state.Load()) }

// Frames counts frames that reached the sink.
func (a *Animator) Frames() int { return a.frames }

// RequestShutdown asks the loop to stop after the current frame. It is safe
// to call from any goroutine, any number of times.
func (a *Animator) RequestShutdown() { a.stop.Store(true) }

// ShutdownRequested reports whether RequestShutdown has been called.
func (a *Animator) ShutdownRequested() bool { return a.stop.Load() }

// Frame runs one tick: step the simulation, then render and flush it.
func (a *Animator) Frame() error {
	a.sim.Step()
	heat := a.sim.Heat()
	if err := a.painter.Render(heat, a.sink); err != nil {
		return err
	}
	a.frames++
	if a.every > 0 && a.frames%a.every == 0 {
		total, peak := 0.0, 0.0
		for _, h := range heat {
			total += h
			if h > peak {
				peak = h
			}
		}
		a.logger.Printf("frame %d heat total=%.1f peak=%.1f", a.frames, total, peak)
	}
	return nil
}

// Run repeats Frame until shutdown is requested or ctx is done, then switches
// the strip off. A sink error ends the loop and is returned; there is no retry.
func (a *Animator) Run(ctx context.Context) error {
	for {
		if a.stop.Load() || ctx.Err() != nil {
			a.Shutdown()
			return nil
		}
		if err := a.Frame(); err != nil {
			a.Shutdown()
			return fmt.Errorf("frame %d: %w", a.frames+1, err)
		}
		// A cancelled wait is picked up by the check at the top.
		_ = a.pacer.Wait(ctx)
	}
}

// Shutdown performs the reset-and-terminate sequence once. Later calls return
// immediately.
func (a *Animator) Shutdown() {
	a.stop.Store(true)
	a.shutdown.Do(func() {
		a.state.Store(int32(ShuttingDown))
		a.Reset()
		a.state.Store(int32(Terminated))
	})
}

// Reset switches every pixel off and flushes. Sink errors are logged and
// swallowed so it can run on any exit path.
func (a *Animator) Reset() {
	a.resetMu.Lock()
	defer a.resetMu.Unlock()

	n := len(a.sim.Heat())
	failed := 0
	for i := 0; i < n; i++ {
		if err := a.sink.SetPixel(i, core.Off); err != nil {
			failed++
			if failed == 1 {
				a.logger.Printf("reset: pixel %d: %v", i, err)
			}
		}
	}
	if failed > 1 {
		a.logger.Printf("reset: %d pixels failed", failed)
	}
	if err := a.sink.Flush(); err != nil {
		a.logger.Printf("reset: flush: %v", err)
	}
}

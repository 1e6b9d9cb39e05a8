package core

import (
	"context"
	"time"
)

// Pacer caps a loop at a steady frames-per-second rate. A zero Pacer, or one
// built with fps <= 0, never waits.
type Pacer struct {
	step time.Duration
	next time.Time
}

// NewPacer constructs a Pacer targeting the given FPS.
func NewPacer(fps int) *Pacer {
	p := &Pacer{}
	if fps > 0 {
		p.step = time.Second / time.Duration(fps)
	}
	return p
}

// Step reports the configured frame interval; zero means unpaced.
func (p *Pacer) Step() time.Duration { return p.step }

// Wait blocks until the next frame slot or until ctx is done. Frames that
// overrun their slot do not accumulate debt.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.step <= 0 {
		return ctx.Err()
	}
	now := time.Now()
	if p.next.IsZero() || now.After(p.next) {
		p.next = now.Add(p.step)
		return ctx.Err()
	}
	timer := time.NewTimer(p.next.Sub(now))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		p.next = p.next.Add(p.step)
		return nil
	}
}

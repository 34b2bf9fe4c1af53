package engine

import (
	"time"

	"github.com/lixenwraith/ember/vmath"
)

// Loop drives a Sim at a fixed tick from wall-clock time. It exists for
// interactive hosts; tests and headless replays call Sim.Update directly
// with synthetic dt values.
type Loop struct {
	sim      *Sim
	interval time.Duration

	stop chan struct{}
}

// NewLoop wraps sim with a fixed tick interval; interval <= 0 defaults to
// 60 ticks per second
func NewLoop(sim *Sim, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Loop{
		sim:      sim,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Run blocks, stepping the sim every tick until Stop is called. target is
// sampled each tick; frame runs after each update for rendering and is
// optional. Ticks lost to a slow frame are skipped, not replayed: dt is
// clamped to the interval so simulation speed, not correctness, absorbs lag.
func (l *Loop) Run(target func() vmath.Vec3F, frame func()) {
	dt := l.interval.Seconds()

	// Deadline-based scheduling rather than a ticker, so drift from slow
	// frames does not accumulate
	next := time.Now().Add(l.interval)
	for {
		select {
		case <-l.stop:
			return
		default:
		}

		l.sim.Update(dt, target())
		if frame != nil {
			frame()
		}

		now := time.Now()
		if wait := next.Sub(now); wait > 0 {
			select {
			case <-l.stop:
				return
			case <-time.After(wait):
			}
			next = next.Add(l.interval)
		} else {
			// Behind schedule; rebase instead of bursting catch-up ticks
			next = now.Add(l.interval)
		}
	}
}

// Stop ends Run after the current tick. Safe to call once.
func (l *Loop) Stop() {
	close(l.stop)
}

// Package progress drives the cosmetic upload percentage. The numbers it
// produces say nothing about bytes actually transferred; they only keep
// the progress view moving while the request is in flight.
package progress

import (
	"context"
	"math/rand"
	"time"
)

const (
	// Ceiling is the highest value the simulator reports. Only a completed
	// upload moves the display to Complete.
	Ceiling  = 95.0
	Complete = 100.0

	// MaxStep bounds a single tick increment: each tick adds [0, MaxStep).
	MaxStep = 10.0
)

// TickPeriod picks the tick period from the selection size: smaller
// uploads tick faster.
func TickPeriod(totalBytes int64) time.Duration {
	switch {
	case totalBytes < 1024*1024:
		return 30 * time.Millisecond
	case totalBytes < 5*1024*1024:
		return 50 * time.Millisecond
	default:
		return 100 * time.Millisecond
	}
}

// Simulator produces a monotonically increasing percentage capped at
// Ceiling.
type Simulator struct {
	period time.Duration
	step   func() float64
	report func(float64)
}

// New returns a simulator ticking every period and calling report with the
// new percentage after each tick.
func New(period time.Duration, report func(float64)) *Simulator {
	return &Simulator{
		period: period,
		step:   func() float64 { return rand.Float64() * MaxStep },
		report: report,
	}
}

// WithStep replaces the random increment source.
func (s *Simulator) WithStep(step func() float64) *Simulator {
	s.step = step
	return s
}

// Run ticks until the percentage reaches Ceiling or ctx is done. Once
// Ceiling is reached the ticker stops for good.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	current := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			current += s.step()
			if current >= Ceiling {
				s.report(Ceiling)
				return
			}
			s.report(current)
		}
	}
}

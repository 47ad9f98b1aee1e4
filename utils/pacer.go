package utils

import "time"

// Pacer controls how often the simulation advances. The interval can be changed while
// running; ShouldStep serves frame-driven loops, Interval serves sleep-driven ones.
type Pacer struct {
	interval    time.Duration
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer returns a pacer ticking every interval, adjusted by step per speed change
func NewPacer(interval, step time.Duration) *Pacer {
	if step <= 0 {
		step = 10 * time.Millisecond
	}
	if interval <= 0 {
		interval = step
	}
	return &Pacer{interval: interval, step: step}
}

// Interval returns the current delay between generations
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Faster shortens the interval by one step, never reaching zero
func (p *Pacer) Faster() {
	if p.interval > p.step {
		p.interval -= p.step
	}
}

// Slower lengthens the interval by one step
func (p *Pacer) Slower() {
	p.interval += p.step
}

// ShouldStep reports whether a generation is due at now
func (p *Pacer) ShouldStep(now time.Time) bool {
	if p.last.IsZero() {
		p.last = now
		return true
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.interval {
		p.accumulator -= p.interval
		// Drop backlog after a stall instead of fast-forwarding through it.
		if p.accumulator > p.interval {
			p.accumulator = 0
		}
		return true
	}
	return false
}

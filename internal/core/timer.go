package core

import "time"

const (
	// maxCatchUp bounds how many steps Due reports after a long stall.
	maxCatchUp = 4
	// MaxRate is the fastest step rate a Pacer accepts.
	MaxRate = 1000
)

// Pacer decides how many generations are due so the viewer can redraw at the
// display rate while stepping at its own rate.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewPacer constructs a Pacer targeting rate steps per second.
func NewPacer(rate int) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetRate(rate)
	return p
}

// SetRate changes the step rate. Non-positive rates fall back to 15 and rates
// above MaxRate are clamped.
func (p *Pacer) SetRate(rate int) {
	if rate <= 0 {
		rate = 15
	}
	rate = min(rate, MaxRate)
	p.step = time.Second / time.Duration(rate)
}

// Rate returns the current steps per second.
func (p *Pacer) Rate() int { return int(time.Second / p.step) }

// Due returns how many steps have accumulated since the last call.
func (p *Pacer) Due() int {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
		return 0
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	n := int(p.accumulator / p.step)
	p.accumulator -= time.Duration(n) * p.step
	if n > maxCatchUp {
		n = maxCatchUp
		p.accumulator = 0
	}
	return n
}

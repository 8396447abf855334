package invoker

import (
	"math"
	"time"
)

// PollPolicy decides how long to wait before each status check. attempt starts at zero;
// ok is false once the budget is spent.
type PollPolicy interface {
	Next(attempt int) (delay time.Duration, ok bool)
}

// FixedPoll waits Interval before each of MaxAttempts checks.
type FixedPoll struct {
	Interval    time.Duration
	MaxAttempts int
}

// DefaultPollPolicy checks once a second, ten times.
func DefaultPollPolicy() FixedPoll {
	return FixedPoll{Interval: time.Second, MaxAttempts: 10}
}

// Next implements PollPolicy.
func (p FixedPoll) Next(attempt int) (time.Duration, bool) {
	if attempt >= p.MaxAttempts {
		return 0, false
	}
	return p.Interval, true
}

// BackoffPoll grows the delay geometrically from Initial by Multiplier, capped at Max.
type BackoffPoll struct {
	Initial     time.Duration
	Max         time.Duration
	Multiplier  float64
	MaxAttempts int
}

// Next implements PollPolicy.
func (p BackoffPoll) Next(attempt int) (time.Duration, bool) {
	if attempt >= p.MaxAttempts {
		return 0, false
	}
	mult := p.Multiplier
	if mult < 1 {
		mult = 1
	}
	d := float64(p.Initial) * math.Pow(mult, float64(attempt))
	if p.Max > 0 && d > float64(p.Max) {
		return p.Max, true
	}
	return time.Duration(d), true
}

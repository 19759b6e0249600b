package vtime

import (
	"errors"
	"fmt"
)

// ErrClockMismatch reports a comparison between FutureTimePoints that belong
// to different clocks.
var ErrClockMismatch = errors.New(
	"future time points belong to different clocks")

// ErrNotTimePoint reports a comparison between a FutureTimePoint and a value
// of some other type.
var ErrNotTimePoint = errors.New("not a future time point")

// A FutureTimePoint is a deadline on one specific clock. It is only
// meaningful, and only comparable, within the domain of that clock.
type FutureTimePoint struct {
	clock *Clock
	at    VTime
}

// Time returns the elapsed-time threshold at which this time point passes.
func (p FutureTimePoint) Time() VTime {
	return p.at
}

// HasPassed reports whether the associated clock has reached this time
// point.
func (p FutureTimePoint) HasPassed() bool {
	return p.clock.ElapsedTime() >= p.at
}

// Compare orders this time point against another value. It returns -1, 0, or
// 1 when other is a FutureTimePoint on the same clock, ErrNotTimePoint when
// other has a different type, and ErrClockMismatch when other is bound to a
// different clock.
func (p FutureTimePoint) Compare(other any) (int, error) {
	o, ok := other.(FutureTimePoint)
	if !ok {
		return 0, fmt.Errorf("%w: cannot compare with %T", ErrNotTimePoint, other)
	}

	if p.clock != o.clock {
		return 0, ErrClockMismatch
	}

	switch {
	case p.at < o.at:
		return -1, nil
	case p.at > o.at:
		return 1, nil
	default:
		return 0, nil
	}
}

// Before reports whether this time point passes strictly earlier than other.
// Both points must belong to the same clock.
func (p FutureTimePoint) Before(other FutureTimePoint) (bool, error) {
	c, err := p.Compare(other)
	if err != nil {
		return false, err
	}

	return c < 0, nil
}

// Equal reports whether the two time points share the same threshold. Both
// points must belong to the same clock.
func (p FutureTimePoint) Equal(other FutureTimePoint) (bool, error) {
	c, err := p.Compare(other)
	if err != nil {
		return false, err
	}

	return c == 0, nil
}

func (p FutureTimePoint) String() string {
	return fmt.Sprintf("FutureTimePoint(%.10f)", float64(p.at))
}

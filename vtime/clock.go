// Package vtime tracks virtual time. A Clock is advanced explicitly by the
// code that drives it, never by wall-clock time.
package vtime

import (
	"log"
	"sync"
)

// VTime is a point or duration in the virtual time space, in the unit of
// second.
type VTime float64

// A Clock accumulates virtual time. The elapsed time starts at zero and only
// grows as Advance is called.
type Clock struct {
	timeLock sync.RWMutex
	elapsed  VTime
}

// NewClock creates a Clock with zero elapsed time.
func NewClock() *Clock {
	return &Clock{}
}

// ElapsedTime returns the virtual time accumulated since the clock was
// created.
func (c *Clock) ElapsedTime() VTime {
	c.timeLock.RLock()
	t := c.elapsed
	c.timeLock.RUnlock()

	return t
}

// Advance assumes that delta seconds of virtual time have passed.
func (c *Clock) Advance(delta VTime) {
	if delta < 0 {
		log.Panic("cannot advance the clock by a negative amount")
	}

	c.timeLock.Lock()
	c.elapsed += delta
	c.timeLock.Unlock()
}

// After returns a FutureTimePoint that passes once delta more seconds of
// virtual time have elapsed on this clock.
func (c *Clock) After(delta VTime) FutureTimePoint {
	if delta < 0 {
		log.Panic("cannot create a time point in the past")
	}

	return FutureTimePoint{
		clock: c,
		at:    c.ElapsedTime() + delta,
	}
}

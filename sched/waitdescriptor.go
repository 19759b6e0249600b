package sched

import (
	"github.com/comanlab/coman/event"
)

// A waitDescriptor is what a task yields when it suspends. The variants are
// closed: a single event, a set of events captured at suspension time, or a
// selector function.
type waitDescriptor interface {
	isWaitDescriptor()
}

type waitSingle struct {
	event event.Event
}

type waitAnyOf struct {
	events map[event.Event]struct{}
}

type waitMatching struct {
	selector event.Selector
}

func (waitSingle) isWaitDescriptor()   {}
func (waitAnyOf) isWaitDescriptor()    {}
func (waitMatching) isWaitDescriptor() {}

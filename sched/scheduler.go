// Package sched implements a deterministic cooperative scheduler driven by
// a virtual clock. Tasks suspend themselves waiting for timers or events and
// are resumed, one at a time, as the driving code advances the clock.
package sched

import (
	"log"

	"github.com/comanlab/coman/event"
	"github.com/comanlab/coman/hooking"
	"github.com/comanlab/coman/vtime"
)

// HookPosBeforeTimedEvent marks the moment before a due delayed event is
// raised on the bus.
var HookPosBeforeTimedEvent = &hooking.HookPos{Name: "BeforeTimedEvent"}

// HookPosAfterTimedEvent marks the moment after a due delayed event has been
// raised.
var HookPosAfterTimedEvent = &hooking.HookPos{Name: "AfterTimedEvent"}

// A Scheduler owns a virtual clock, an event bus, and a queue of delayed
// events. It starts tasks, resumes them when the events they wait for are
// raised, and fires delayed events as Update advances the clock.
//
// All task work happens on the goroutine that calls Update, Start, Resume,
// or Bus().RaiseEvent. The scheduler must be driven from a single goroutine.
type Scheduler struct {
	hooking.HookableBase

	clock   *vtime.Clock
	bus     *event.Bus
	delayed *delayedEventQueue
}

// NewScheduler creates a Scheduler with a fresh clock and bus.
func NewScheduler() *Scheduler {
	return &Scheduler{
		clock:   vtime.NewClock(),
		bus:     event.NewBus(),
		delayed: newDelayedEventQueue(),
	}
}

// EventBus returns the bus used to dispatch events for this scheduler.
// Raising an event on it resumes the tasks waiting for that event.
func (s *Scheduler) EventBus() *event.Bus {
	return s.bus
}

// CurrentTime returns the virtual time accumulated by Update calls.
func (s *Scheduler) CurrentTime() vtime.VTime {
	return s.clock.ElapsedTime()
}

// PendingDelayedEvents returns the number of delayed events that have not
// fired yet.
func (s *Scheduler) PendingDelayedEvents() int {
	return s.delayed.Len()
}

// Update assumes delta seconds of virtual time have passed, then raises
// every delayed event that became due, in ascending order of due time.
// Events with equal due times fire in an unspecified relative order.
func (s *Scheduler) Update(delta vtime.VTime) {
	s.clock.Advance(delta)
	s.handleDelayedEvents()
}

func (s *Scheduler) handleDelayedEvents() {
	for s.delayed.Len() > 0 {
		entry := s.delayed.Peek()
		if !entry.Time.HasPassed() {
			break
		}

		if s.NumHooks() > 0 {
			s.InvokeHook(hooking.HookCtx{
				Domain: s,
				Pos:    HookPosBeforeTimedEvent,
				Item:   entry,
			})
		}

		s.bus.RaiseEvent(entry.Event)
		s.delayed.Pop()

		if s.NumHooks() > 0 {
			s.InvokeHook(hooking.HookCtx{
				Domain: s,
				Pos:    HookPosAfterTimedEvent,
				Item:   entry,
			})
		}
	}
}

// AddDelayedEvent schedules e to be raised once delay more seconds of
// virtual time have elapsed.
func (s *Scheduler) AddDelayedEvent(delay vtime.VTime, e event.Event) {
	s.delayed.Push(DelayedEvent{
		Time:  s.clock.After(delay),
		Event: e,
	})
}

// Start runs t until its first suspension or completion.
func (s *Scheduler) Start(t *Task) {
	s.Resume(t)
}

// Resume advances t until its next suspension or completion. When t
// suspends, a one-shot continuation is registered on the bus so that the
// awaited event resumes it again. Resuming a completed task is a no-op.
//
// A panic inside the task body propagates out of this call unmodified,
// leaving the bus and the delayed-event queue in their partially processed
// state.
func (s *Scheduler) Resume(t *Task) {
	if t.state == TaskCompleted {
		return
	}

	if !t.started {
		t.started = true
		ctx := &Context{scheduler: s, task: t}

		go func() {
			defer func() {
				if r := recover(); r != nil {
					t.signal <- taskSignal{done: true, panicVal: r}
				}
			}()

			t.fn(ctx)
			t.signal <- taskSignal{done: true}
		}()
	} else {
		t.resume <- struct{}{}
	}

	sig := <-t.signal
	if sig.done {
		t.state = TaskCompleted
		if sig.panicVal != nil {
			panic(sig.panicVal)
		}

		return
	}

	t.state = TaskSuspended
	s.registerContinuation(t, sig.desc)
}

func (s *Scheduler) registerContinuation(t *Task, desc waitDescriptor) {
	resumer := func(event.Event) {
		s.Resume(t)
	}

	switch d := desc.(type) {
	case waitSingle:
		s.bus.Subscribe(d.event, resumer)
	case waitAnyOf:
		s.bus.Multisubscribe(func(e event.Event) bool {
			_, ok := d.events[e]
			return ok
		}, resumer)
	case waitMatching:
		s.bus.Multisubscribe(d.selector, resumer)
	default:
		log.Panicf("unknown wait descriptor type %T", desc)
	}
}

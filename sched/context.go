package sched

import (
	"github.com/comanlab/coman/event"
	"github.com/comanlab/coman/vtime"
)

// A Context provides the suspension primitives available inside a task body.
// It is only valid within the task it was handed to; it must not leak to
// other goroutines.
type Context struct {
	scheduler *Scheduler
	task      *Task
}

// Sleep suspends the task for duration seconds of virtual time, as advanced
// through Scheduler.Update.
func (c *Context) Sleep(duration vtime.VTime) {
	e := c.scheduler.bus.UniqueEvent()
	c.scheduler.AddDelayedEvent(duration, e)
	c.WaitForEvent(e)
}

// WaitForEvent suspends the task until e is raised on the scheduler's bus.
func (c *Context) WaitForEvent(e event.Event) {
	c.suspend(waitSingle{event: e})
}

// WaitForAny suspends the task until any of the given events is raised. The
// set of events is captured at the moment of suspension.
func (c *Context) WaitForAny(events ...event.Event) {
	set := make(map[event.Event]struct{}, len(events))
	for _, e := range events {
		set[e] = struct{}{}
	}

	c.suspend(waitAnyOf{events: set})
}

// WaitMatching suspends the task until an event matched by selector is
// raised.
func (c *Context) WaitMatching(selector event.Selector) {
	c.suspend(waitMatching{selector: selector})
}

// Await runs another, not-yet-started task to completion as part of the
// current task. Suspensions inside t suspend the current task. Awaiting a
// task that some scheduler has already started is unsupported.
func (c *Context) Await(t *Task) {
	t.started = true
	t.fn(c)
	t.state = TaskCompleted
}

func (c *Context) suspend(desc waitDescriptor) {
	c.task.signal <- taskSignal{desc: desc}
	<-c.task.resume
}

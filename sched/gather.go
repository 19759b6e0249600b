package sched

import (
	"github.com/comanlab/coman/event"
)

// Gather creates a task that runs the given tasks logically in parallel and
// completes once every one of them has completed.
//
// When the gathering task first runs, it starts each input task in list
// order, so all of their initial synchronous work happens before the
// gathering task itself suspends. The order in which the tasks finish
// afterwards does not matter; only the ones passed in here are counted, and
// tasks started later cannot join an in-flight gather.
func (s *Scheduler) Gather(tasks []*Task) *Task {
	return NewTask(func(ctx *Context) {
		numTotal := len(tasks)
		numCompleted := 0

		completionEvents := make([]event.Event, numTotal)
		for i := range completionEvents {
			completionEvents[i] = s.bus.UniqueEvent()
		}

		for _, e := range completionEvents {
			s.bus.Subscribe(e, func(event.Event) {
				numCompleted++
			})
		}

		for i, t := range tasks {
			inner := t
			completionEvent := completionEvents[i]

			s.Start(NewTask(func(c *Context) {
				c.Await(inner)
				s.bus.RaiseEvent(completionEvent)
			}))
		}

		for numCompleted < numTotal {
			ctx.WaitForAny(completionEvents...)
		}
	})
}

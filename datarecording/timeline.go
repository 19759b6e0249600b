package datarecording

import (
	"fmt"

	"github.com/comanlab/coman/hooking"
	"github.com/comanlab/coman/sched"
)

// TimelineEntry is one fired delayed event as stored in the database.
type TimelineEntry struct {
	Time  float64
	Event string
}

// A TimelineTracer is a hook that records every delayed event a scheduler
// fires, together with the virtual time at which it fired.
type TimelineTracer struct {
	recorder  DataRecorder
	tableName string
}

// NewTimelineTracer creates a TimelineTracer writing into tableName through
// recorder. The table is created here.
func NewTimelineTracer(
	recorder DataRecorder,
	tableName string,
) *TimelineTracer {
	recorder.CreateTable(tableName, TimelineEntry{})

	return &TimelineTracer{
		recorder:  recorder,
		tableName: tableName,
	}
}

// Func records the fired event.
func (t *TimelineTracer) Func(ctx hooking.HookCtx) {
	if ctx.Pos != sched.HookPosBeforeTimedEvent {
		return
	}

	entry, ok := ctx.Item.(sched.DelayedEvent)
	if !ok {
		return
	}

	t.recorder.InsertData(t.tableName, TimelineEntry{
		Time:  float64(entry.Time.Time()),
		Event: fmt.Sprintf("%v", entry.Event),
	})
}

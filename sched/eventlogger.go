package sched

import (
	"log"

	"github.com/comanlab/coman/hooking"
)

// LogHookBase provides the common logic for hooks that write to a logger.
type LogHookBase struct {
	*log.Logger
}

// EventLogger is a hook that logs delayed events as they fire.
type EventLogger struct {
	LogHookBase
}

// NewEventLogger returns an EventLogger that writes into logger.
func NewEventLogger(logger *log.Logger) *EventLogger {
	h := new(EventLogger)
	h.Logger = logger

	return h
}

// Func writes the event information into the logger.
func (h *EventLogger) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosBeforeTimedEvent {
		return
	}

	entry, ok := ctx.Item.(DelayedEvent)
	if !ok {
		return
	}

	h.Printf("%.10f, %v", float64(entry.Time.Time()), entry.Event)
}

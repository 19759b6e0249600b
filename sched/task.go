package sched

import (
	"github.com/comanlab/coman/id"
)

// TaskState is the lifecycle state of a Task.
type TaskState int

const (
	// TaskRunnable marks a task that is ready to run: either not yet
	// started, or resumed and currently executing.
	TaskRunnable TaskState = iota

	// TaskSuspended marks a task that is waiting for an event.
	TaskSuspended

	// TaskCompleted marks a task whose body has returned. The state is
	// terminal.
	TaskCompleted
)

// A TaskFunc is the body of a task. It may suspend itself through the
// Context it receives.
type TaskFunc func(ctx *Context)

var taskIDGenerator = id.NewSequentialIDGenerator()

// A Task is a suspendable unit of computation. It must be started, and from
// then on driven, by exactly one Scheduler; handing it to a second scheduler
// is unsupported.
type Task struct {
	ID string

	fn      TaskFunc
	state   TaskState
	started bool

	// The task body runs on its own goroutine, but the scheduler and the
	// body hand control back and forth over these unbuffered channels, so
	// exactly one of them executes at any moment.
	resume chan struct{}
	signal chan taskSignal
}

type taskSignal struct {
	desc     waitDescriptor
	done     bool
	panicVal any
}

// NewTask wraps fn into a Task.
func NewTask(fn TaskFunc) *Task {
	return &Task{
		ID:     taskIDGenerator.Generate(),
		fn:     fn,
		resume: make(chan struct{}),
		signal: make(chan taskSignal),
	}
}

// State returns the current lifecycle state of the task.
func (t *Task) State() TaskState {
	return t.state
}

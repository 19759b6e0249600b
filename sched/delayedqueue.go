package sched

import (
	"container/heap"
	"sync"

	"github.com/comanlab/coman/event"
	"github.com/comanlab/coman/vtime"
)

// A DelayedEvent pairs an event with the future time point at which it is
// due to be raised.
type DelayedEvent struct {
	Time  vtime.FutureTimePoint
	Event event.Event
}

// delayedEventQueue is a queue of delayed events ordered by their due time.
// Entries with equal due times come out in an unspecified relative order.
type delayedEventQueue struct {
	sync.Mutex
	events delayedEventHeap
}

func newDelayedEventQueue() *delayedEventQueue {
	q := new(delayedEventQueue)
	q.events = make(delayedEventHeap, 0)
	heap.Init(&q.events)

	return q
}

func (q *delayedEventQueue) Push(e DelayedEvent) {
	q.Lock()
	heap.Push(&q.events, e)
	q.Unlock()
}

func (q *delayedEventQueue) Pop() DelayedEvent {
	q.Lock()
	e := heap.Pop(&q.events).(DelayedEvent)
	q.Unlock()

	return e
}

func (q *delayedEventQueue) Len() int {
	q.Lock()
	l := q.events.Len()
	q.Unlock()

	return l
}

func (q *delayedEventQueue) Peek() DelayedEvent {
	q.Lock()
	e := q.events[0]
	q.Unlock()

	return e
}

type delayedEventHeap []DelayedEvent

func (h delayedEventHeap) Len() int {
	return len(h)
}

// All entries belong to the scheduler's own clock, so the thresholds compare
// directly.
func (h delayedEventHeap) Less(i, j int) bool {
	return h[i].Time.Time() < h[j].Time.Time()
}

func (h delayedEventHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *delayedEventHeap) Push(x any) {
	*h = append(*h, x.(DelayedEvent))
}

func (h *delayedEventHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[0 : n-1]

	return e
}

// Package queueing provides a FIFO queue that can be drained safely while
// the draining callbacks keep appending to it.
package queueing

// DrainPolicy decides what a drain does with elements that are pushed while
// the drain is in progress.
type DrainPolicy int

const (
	// DrainAll keeps consuming until the queue is empty, including elements
	// pushed during the drain.
	DrainAll DrainPolicy = iota

	// DrainExistingOnly consumes only the elements that were queued when the
	// drain started. Elements pushed during the drain stay in the queue.
	DrainExistingOnly
)

// A Queue is an unbounded FIFO queue.
type Queue[T any] struct {
	elements []T
}

// Push adds an element to the back of the queue.
func (q *Queue[T]) Push(e T) {
	q.elements = append(q.elements, e)
}

// Pop removes and returns the front element. The second return value is
// false if the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	if len(q.elements) == 0 {
		var zero T
		return zero, false
	}

	e := q.elements[0]
	q.elements = q.elements[1:]

	return e, true
}

// Peek returns the front element without removing it. The second return
// value is false if the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.elements) == 0 {
		var zero T
		return zero, false
	}

	return q.elements[0], true
}

// Size returns the number of queued elements.
func (q *Queue[T]) Size() int {
	return len(q.elements)
}

// Drain pops elements front to back, calling f on each one. f may push new
// elements onto the queue. With DrainExistingOnly, such elements are not
// consumed by this drain; with DrainAll, the drain continues until the queue
// is empty. f must not touch the queue in any other way.
func (q *Queue[T]) Drain(f func(e T), policy DrainPolicy) {
	initialSize := len(q.elements)

	for i := 0; len(q.elements) > 0; i++ {
		if policy == DrainExistingOnly && i >= initialSize {
			break
		}

		e := q.elements[0]
		q.elements = q.elements[1:]
		f(e)
	}
}

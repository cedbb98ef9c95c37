package event

// Queue is a fixed-capacity FIFO ring buffer drained once per step
// Thread-Safety:
//   - Single producer, single consumer (simulation loop)
//
// Capacity is a deliberate bound sized above the most events one step can produce,
// so a drained-every-step queue never skips an event
// Overflow: Oldest events overwritten when full and counted by Dropped; only reachable
// when a consumer stops draining
type Queue[T any] struct {
	events  []T
	head    uint64 // Read index
	tail    uint64 // Write index
	mask    uint64
	dropped uint64
}

// NewQueue creates a queue; capacity is rounded up to a power of two
func NewQueue[T any](capacity int) *Queue[T] {
	size := uint64(1)
	for size < uint64(max(capacity, 1)) {
		size <<= 1
	}
	return &Queue[T]{
		events: make([]T, size),
		mask:   size - 1,
	}
}

// Push appends an event, overwriting the oldest unread one if full
func (q *Queue[T]) Push(ev T) {
	q.events[q.tail&q.mask] = ev
	q.tail++
	if q.tail-q.head > uint64(len(q.events)) {
		q.head = q.tail - uint64(len(q.events))
		q.dropped++
	}
}

// Drain returns all pending events in FIFO order and empties the queue
// Returns nil when empty
func (q *Queue[T]) Drain() []T {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}
	out := make([]T, 0, n)
	var zero T
	for i := q.head; i < q.tail; i++ {
		idx := i & q.mask
		out = append(out, q.events[idx])
		q.events[idx] = zero
	}
	q.head = q.tail
	return out
}

// Len returns pending event count
func (q *Queue[T]) Len() int {
	return int(q.tail - q.head)
}

// Cap returns the ring capacity
func (q *Queue[T]) Cap() int {
	return len(q.events)
}

// Dropped returns how many events were overwritten before being drained
func (q *Queue[T]) Dropped() uint64 {
	return q.dropped
}

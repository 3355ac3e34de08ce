package kernel

import (
	"runtime"
	"sync/atomic"
)

// Queue is a fixed-size multi-producer, single-consumer queue.
//
// It does not allocate after construction and waits by yielding with
// Gosched, so it behaves the same under TinyGo's cooperative scheduler.
type Queue[T any] struct {
	_      [0]func() // prevent accidental copying.
	head   atomic.Uint32
	tail   atomic.Uint32
	closed atomic.Bool
	mask   uint32
	slots  []queueSlot[T]
}

type queueSlot[T any] struct {
	// seq == index: free for the producer reserving index.
	// seq == index+1: holds the value for the consumer at index.
	seq atomic.Uint32
	v   T
}

// NewQueue returns a queue holding at least n values. The capacity is
// rounded up to a power of two.
func NewQueue[T any](n int) *Queue[T] {
	size := uint32(1)
	for int(size) < n {
		size <<= 1
	}
	q := &Queue[T]{mask: size - 1, slots: make([]queueSlot[T], size)}
	for i := range q.slots {
		q.slots[i].seq.Store(uint32(i))
	}
	return q
}

// Cap returns the number of slots.
func (q *Queue[T]) Cap() int { return len(q.slots) }

// Len returns the number of queued values.
func (q *Queue[T]) Len() int { return int(q.head.Load() - q.tail.Load()) }

// TrySend attempts to enqueue a value, returning false if the queue is full
// or closed.
func (q *Queue[T]) TrySend(v T) bool {
	if q.closed.Load() {
		return false
	}
	for {
		head := q.head.Load()
		slot := &q.slots[head&q.mask]
		switch diff := int32(slot.seq.Load() - head); {
		case diff == 0:
			// Reserve the slot.
			if q.head.CompareAndSwap(head, head+1) {
				slot.v = v
				slot.seq.Store(head + 1)
				return true
			}
		case diff < 0:
			return false
		}
	}
}

// Send enqueues a value, blocking while the queue is full. It returns false
// if the queue is closed.
func (q *Queue[T]) Send(v T) bool {
	for !q.TrySend(v) {
		if q.closed.Load() {
			return false
		}
		runtime.Gosched()
	}
	return true
}

// TryRecv attempts to dequeue one value, returning false if empty.
func (q *Queue[T]) TryRecv() (T, bool) {
	var zero T
	tail := q.tail.Load()
	slot := &q.slots[tail&q.mask]
	if slot.seq.Load() != tail+1 {
		return zero, false
	}
	v := slot.v
	slot.v = zero
	slot.seq.Store(tail + uint32(len(q.slots)))
	q.tail.Store(tail + 1)
	return v, true
}

// Recv blocks until a value is available. It returns false once the queue
// is closed and drained.
func (q *Queue[T]) Recv() (T, bool) {
	for {
		if v, ok := q.TryRecv(); ok {
			return v, true
		}
		if q.closed.Load() {
			return q.TryRecv()
		}
		runtime.Gosched()
	}
}

// Close stops further sends. It must be called after every Send has returned.
func (q *Queue[T]) Close() {
	q.closed.Store(true)
}

package game

import (
	"iter"
	"sync/atomic"
)

// DefaultInputBuffer is the number of actions an InputQueue holds before it
// starts dropping.
const DefaultInputBuffer = 64

// InputQueue carries actions from input handlers to the frame loop. Push is
// safe to call from any goroutine; actions are consumed only by the loop.
type InputQueue struct {
	ch      chan Action
	dropped *atomic.Int64
}

func NewInputQueue(size int) InputQueue {
	if size <= 0 {
		size = DefaultInputBuffer
	}
	return InputQueue{ch: make(chan Action, size), dropped: new(atomic.Int64)}
}

// Push enqueues a without blocking. It reports false, and counts the action
// as dropped, when the queue is full.
func (q *InputQueue) Push(a Action) bool {
	select {
	case q.ch <- a:
		return true
	default:
		q.dropped.Add(1)
		return false
	}
}

// Drain yields the actions queued so far, oldest first. Actions pushed while
// draining may be yielded in the same pass.
func (q *InputQueue) Drain() iter.Seq[Action] {
	return func(yield func(Action) bool) {
		for {
			select {
			case a := <-q.ch:
				if !yield(a) {
					return
				}
			default:
				return
			}
		}
	}
}

// Pending reports the number of queued actions.
func (q *InputQueue) Pending() int {
	return len(q.ch)
}

// Dropped counts actions rejected because the queue was full. It is safe to
// call from any goroutine.
func (q *InputQueue) Dropped() int {
	return int(q.dropped.Load())
}

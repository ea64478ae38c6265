package livesvc

import (
	"time"

	"github.com/alutan/trade-history/internal/metrics"
)

// Queue is the bounded FIFO between the ingester and the dispatcher. It is
// a thin wrapper over a buffered channel, which gives FIFO ordering and
// single-producer single-consumer safety for free.
type Queue struct {
	ch chan Record
}

// NewQueue returns a queue holding at most capacity records.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Queue{ch: make(chan Record, capacity)}
}

// Offer enqueues rec, blocking up to wait when the queue is full. Returns
// false when the record could not be placed within the window so the caller
// can re-check for termination and try again.
func (q *Queue) Offer(rec Record, wait time.Duration) bool {
	select {
	case q.ch <- rec:
		metrics.QueueDepth.Set(float64(len(q.ch)))
		return true
	default:
	}
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case q.ch <- rec:
		metrics.QueueDepth.Set(float64(len(q.ch)))
		return true
	case <-t.C:
		return false
	}
}

// Poll dequeues the oldest record, blocking up to wait when the queue is
// empty. The second return is false when nothing arrived within the window.
func (q *Queue) Poll(wait time.Duration) (Record, bool) {
	select {
	case rec := <-q.ch:
		metrics.QueueDepth.Set(float64(len(q.ch)))
		return rec, true
	default:
	}
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case rec := <-q.ch:
		metrics.QueueDepth.Set(float64(len(q.ch)))
		return rec, true
	case <-t.C:
		return Record{}, false
	}
}

// Len reports the number of buffered records.
func (q *Queue) Len() int { return len(q.ch) }

// Cap reports the queue capacity.
func (q *Queue) Cap() int { return cap(q.ch) }

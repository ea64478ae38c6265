package livesvc

import (
	"testing"
	"time"
)

func TestQueueOfferPollFIFO(t *testing.T) {
	q := NewQueue(4)
	for i := 0; i < 4; i++ {
		if !q.Offer(Record{Offset: int64(i)}, time.Millisecond) {
			t.Fatalf("offer %d rejected", i)
		}
	}
	if q.Len() != 4 {
		t.Fatalf("len = %d, want 4", q.Len())
	}
	for i := 0; i < 4; i++ {
		rec, ok := q.Poll(time.Millisecond)
		if !ok || rec.Offset != int64(i) {
			t.Fatalf("poll %d = (%+v, %v)", i, rec, ok)
		}
	}
}

func TestQueueOfferTimesOutWhenFull(t *testing.T) {
	q := NewQueue(1)
	if !q.Offer(Record{}, time.Millisecond) {
		t.Fatal("offer into empty queue rejected")
	}
	start := time.Now()
	if q.Offer(Record{}, 10*time.Millisecond) {
		t.Fatal("offer into full queue accepted")
	}
	if time.Since(start) < 10*time.Millisecond {
		t.Fatal("offer returned before the wait elapsed")
	}
}

func TestQueuePollTimesOutWhenEmpty(t *testing.T) {
	q := NewQueue(1)
	if _, ok := q.Poll(5 * time.Millisecond); ok {
		t.Fatal("poll on empty queue returned a record")
	}
}

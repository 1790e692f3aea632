package session

import (
	"container/heap"
	"time"
)

type event struct {
	due    time.Duration
	seq    uint64
	action func()
}

// eventQueue orders events by due time, then by the order they were scheduled.
type eventQueue []event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) { *q = append(*q, x.(event)) }

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = event{}
	*q = old[:n-1]
	return e
}

// scheduler runs deferred actions on the simulation clock.
type scheduler struct {
	queue eventQueue
	seq   uint64
}

func (s *scheduler) at(due time.Duration, action func()) {
	s.seq++
	heap.Push(&s.queue, event{due: due, seq: s.seq, action: action})
}

// runDue pops and runs every event due at or before now. Actions scheduled
// while draining are picked up in the same call if they are already due.
func (s *scheduler) runDue(now time.Duration) int {
	n := 0
	for len(s.queue) > 0 && s.queue[0].due <= now {
		e := heap.Pop(&s.queue).(event)
		e.action()
		n++
	}
	return n
}

func (s *scheduler) pending() int { return len(s.queue) }

package engine

import "container/heap"

// event is a scheduled future action at a specific simulated time. Once
// executed it is discarded; canceled events are skipped on dequeue rather
// than removed from the heap, since removing an arbitrary element from a
// binary heap is more expensive than lazily skipping it on pop.
type event struct {
	fireTime float64
	seq      uint64
	handler  func()
	canceled bool
}

// CancelFunc cancels a previously scheduled event. Calling it after the
// event has already fired, or more than once, is a no-op.
type CancelFunc func()

// eventHeap is a min-heap of events ordered by (fireTime, seq): a simulated
// float64 clock with a monotonic sequence number breaking ties so events
// scheduled for the same instant fire in FCFS order.
type eventHeap []*event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].fireTime != h[j].fireTime {
		return h[i].fireTime < h[j].fireTime
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(*event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}

// eventQueue owns the heap and the monotonically increasing sequence
// counter used to break ties between events scheduled at the same fire
// time.
type eventQueue struct {
	heap eventHeap
	next uint64
}

func newEventQueue() *eventQueue {
	q := &eventQueue{}
	heap.Init(&q.heap)
	return q
}

// insert schedules handler to fire at fireTime, returning the inserted
// event so the caller can build a CancelFunc around it.
func (q *eventQueue) insert(fireTime float64, handler func()) *event {
	e := &event{fireTime: fireTime, seq: q.next, handler: handler}
	q.next++
	heap.Push(&q.heap, e)
	return e
}

// popNext removes and returns the next non-canceled event, or nil if the
// queue is exhausted.
func (q *eventQueue) popNext() *event {
	for q.heap.Len() > 0 {
		e := heap.Pop(&q.heap).(*event)
		if e.canceled {
			continue
		}
		return e
	}
	return nil
}

func (q *eventQueue) empty() bool {
	// A canceled event left at the top of the heap should not count as
	// pending work; peek past any already-canceled entries.
	for q.heap.Len() > 0 {
		if !q.heap[0].canceled {
			return false
		}
		heap.Pop(&q.heap)
	}
	return true
}

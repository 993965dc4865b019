package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventQueue_PopsInFireTimeOrder(t *testing.T) {
	q := newEventQueue()
	q.insert(5, func() {})
	q.insert(1, func() {})
	q.insert(3, func() {})

	var order []float64
	for {
		e := q.popNext()
		if e == nil {
			break
		}
		order = append(order, e.fireTime)
	}
	assert.Equal(t, []float64{1, 3, 5}, order)
}

func TestEventQueue_TiesBreakByInsertionOrder(t *testing.T) {
	q := newEventQueue()
	var fired []int
	q.insert(10, func() { fired = append(fired, 1) })
	q.insert(10, func() { fired = append(fired, 2) })
	q.insert(10, func() { fired = append(fired, 3) })

	for {
		e := q.popNext()
		if e == nil {
			break
		}
		e.handler()
	}
	assert.Equal(t, []int{1, 2, 3}, fired)
}

func TestEventQueue_CanceledEventsAreSkipped(t *testing.T) {
	q := newEventQueue()
	e1 := q.insert(1, func() {})
	q.insert(2, func() {})
	e1.canceled = true

	next := q.popNext()
	assert.Equal(t, 2.0, next.fireTime)
}

func TestEventQueue_EmptyTreatsTrailingCanceledAsEmpty(t *testing.T) {
	q := newEventQueue()
	e := q.insert(1, func() {})
	e.canceled = true
	assert.True(t, q.empty())
}

func TestEventQueue_EmptyFalseWithLiveEvent(t *testing.T) {
	q := newEventQueue()
	q.insert(1, func() {})
	assert.False(t, q.empty())
}

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContinuous_NoData(t *testing.T) {
	c := NewContinuous(false)
	assert.Equal(t, 0.0, c.Mean())
	assert.Equal(t, 0.0, c.TotalTime())
}

func TestContinuous_TimeWeightedMean(t *testing.T) {
	c := NewContinuous(false)
	// value=0 for [0,10), value=2 for [10,20), value=0 for [20,30)
	c.Update(0, 0)
	c.Update(10, 2)
	c.Update(20, 0)
	c.Update(30, 0)
	// weighted sum = 0*10 + 2*10 + 0*10 = 20, over total time 30
	assert.InDelta(t, 20.0/30.0, c.Mean(), 1e-9)
}

func TestContinuous_MinMax(t *testing.T) {
	c := NewContinuous(false)
	c.Update(0, 5)
	c.Update(1, 1)
	c.Update(2, 9)
	assert.Equal(t, 1.0, c.Min())
	assert.Equal(t, 9.0, c.Max())
}

func TestContinuous_TraceOptIn(t *testing.T) {
	c := NewContinuous(true)
	c.Update(0, 1)
	c.Update(1, 2)
	require.Len(t, c.Trace(), 2)
	assert.Equal(t, TracePoint{Time: 1, Value: 2}, c.Trace()[1])
}

func TestContinuous_TraceOptOutByDefault(t *testing.T) {
	c := NewContinuous(false)
	c.Update(0, 1)
	c.Update(1, 2)
	assert.Nil(t, c.Trace())
}

func TestContinuous_ZeroDtDoesNotDoubleCount(t *testing.T) {
	c := NewContinuous(false)
	c.Update(5, 1)
	c.Update(5, 2)
	assert.Equal(t, 0.0, c.TotalTime())
}

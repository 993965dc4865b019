package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulator_ClockAdvancesToFireTime(t *testing.T) {
	sim := New()
	sim.Schedule(10, func() {})
	require.NoError(t, sim.Run())
	assert.Equal(t, 10.0, sim.Clock())
}

func TestSimulator_NegativeDelayClipsToZero(t *testing.T) {
	sim := New()
	sim.Schedule(-5, func() {})
	require.NoError(t, sim.Run())
	assert.Equal(t, 0.0, sim.Clock())
}

func TestSimulator_HandlersCanScheduleMore(t *testing.T) {
	sim := New()
	var order []int
	sim.Schedule(0, func() {
		order = append(order, 1)
		sim.Schedule(5, func() { order = append(order, 2) })
	})
	require.NoError(t, sim.Run())
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 5.0, sim.Clock())
}

func TestSimulator_CancelPreventsExecution(t *testing.T) {
	sim := New()
	fired := false
	cancel := sim.Schedule(5, func() { fired = true })
	cancel()
	require.NoError(t, sim.Run())
	assert.False(t, fired)
}

func TestSimulator_RecoversSentinelWrappedPanic(t *testing.T) {
	sim := New()
	sim.Schedule(0, func() {
		Fail(ErrInvalidConfig, "boom")
	})
	err := sim.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSimulator_RepanicsOnNonSentinelPanic(t *testing.T) {
	sim := New()
	sim.Schedule(0, func() {
		panic("not a sentinel-wrapped error")
	})
	assert.Panics(t, func() { _ = sim.Run() })
}

func TestSimulator_StatsTracksScheduledAndExecuted(t *testing.T) {
	sim := New()
	sim.Schedule(1, func() {})
	sim.Schedule(2, func() {})
	require.NoError(t, sim.Run())
	scheduled, executed := sim.Stats()
	assert.Equal(t, uint64(2), scheduled)
	assert.Equal(t, uint64(2), executed)
}

func TestFail_WrapsSentinelWithErrorsIs(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrNoSuccessor))
	}()
	Fail(ErrNoSuccessor, "station %q has no successor", "x")
}

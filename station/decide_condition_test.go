package station

import (
	"testing"

	"github.com/joeycumines/queuesim/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideCondition_RoutesByPredicate(t *testing.T) {
	sim := engine.New()
	d := NewDecideCondition(sim)
	short := &recordingStation{}
	long := &recordingStation{}
	d.AddSuccessor(short)
	d.AddSuccessor(long)
	d.SetCondition(func(c *engine.Client) int {
		if c.Type == "short" {
			return 0
		}
		return 1
	})
	require.NoError(t, d.Validate())

	sim.Schedule(0, func() { d.Receive(engine.NewClient("short", 0)) })
	sim.Schedule(0, func() { d.Receive(engine.NewClient("long", 0)) })
	require.NoError(t, sim.Run())

	assert.Len(t, short.received, 1)
	assert.Len(t, long.received, 1)
}

func TestDecideCondition_OutOfRangeIndexFails(t *testing.T) {
	sim := engine.New()
	d := NewDecideCondition(sim)
	d.AddSuccessor(&recordingStation{})
	d.SetCondition(func(c *engine.Client) int { return 5 })

	sim.Schedule(0, func() { d.Receive(engine.NewClient("x", 0)) })
	err := sim.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrRoutingOutOfRange)
}

func TestDecideCondition_ValidateRejectsMissingPredicate(t *testing.T) {
	sim := engine.New()
	d := NewDecideCondition(sim)
	d.AddSuccessor(&recordingStation{})
	assert.ErrorIs(t, d.Validate(), engine.ErrInvalidConfig)
}

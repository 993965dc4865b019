package station

import (
	"testing"

	"github.com/joeycumines/queuesim/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideClientType_RoutesByType(t *testing.T) {
	sim := engine.New()
	d := NewDecideClientType(sim)
	vip := &recordingStation{}
	standard := &recordingStation{}
	d.SetNextForType("vip", vip)
	d.SetNextDefault(standard)
	require.NoError(t, d.Validate())

	sim.Schedule(0, func() { d.Receive(engine.NewClient("vip", 0)) })
	sim.Schedule(0, func() { d.Receive(engine.NewClient("anything-else", 0)) })
	require.NoError(t, sim.Run())

	assert.Len(t, vip.received, 1)
	assert.Len(t, standard.received, 1)
}

func TestDecideClientType_NoDefaultAndUnknownTypeFails(t *testing.T) {
	sim := engine.New()
	d := NewDecideClientType(sim)
	d.SetNextForType("vip", &recordingStation{})

	sim.Schedule(0, func() { d.Receive(engine.NewClient("unknown", 0)) })
	err := sim.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrNoDefaultRoute)
}

func TestDecideClientType_ValidateRejectsNoRoutesAtAll(t *testing.T) {
	sim := engine.New()
	d := NewDecideClientType(sim)
	assert.ErrorIs(t, d.Validate(), engine.ErrNoSuccessor)
}

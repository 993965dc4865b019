package station

import (
	"github.com/joeycumines/queuesim/engine"
	"github.com/joeycumines/queuesim/sampler"
)

// Delay is a pure time advance: it draws a duration from its sampler and
// hands the client to its successor after that delay, with no resource
// contention and no per-client statistics beyond the ledger entries the
// client already carries.
type Delay struct {
	sim         *engine.Simulator
	timeSampler sampler.Sampler
	next        engine.Station
}

// NewDelay constructs a Delay bound to sim, drawing its durations from s.
func NewDelay(sim *engine.Simulator, s sampler.Sampler) *Delay {
	return &Delay{sim: sim, timeSampler: s}
}

// SetNext wires the station delayed clients are handed to.
func (d *Delay) SetNext(next engine.Station) {
	d.next = next
	d.sim.Logger().Debug().Log(`delay wired to successor`)
}

// Validate reports a configuration error, if any.
func (d *Delay) Validate() error {
	if d.timeSampler == nil {
		return engine.ErrInvalidConfig
	}
	if d.next == nil {
		return engine.ErrNoSuccessor
	}
	return nil
}

// Receive implements engine.Station.
func (d *Delay) Receive(c *engine.Client) {
	delay, ok := sampler.Clip(d.timeSampler.Next())
	if !ok {
		d.sim.Logger().Err().Log(`delay sampler produced a non-finite value`)
		engine.Fail(engine.ErrNonFiniteSample, "delay sampler produced a non-finite value")
	}
	next := d.next
	d.sim.Schedule(delay, func() { next.Receive(c) })
}

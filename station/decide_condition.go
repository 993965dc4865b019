package station

import "github.com/joeycumines/queuesim/engine"

// DecideCondition routes each arriving client via a user-supplied
// predicate returning a 0-based index into its ordered successor list.
type DecideCondition struct {
	sim        *engine.Simulator
	successors []engine.Station
	predicate  func(c *engine.Client) int
}

// NewDecideCondition constructs a DecideCondition bound to sim.
func NewDecideCondition(sim *engine.Simulator) *DecideCondition {
	return &DecideCondition{sim: sim}
}

// AddSuccessor appends a successor to the ordered routing list; its
// position is the index the predicate must return to select it.
func (d *DecideCondition) AddSuccessor(next engine.Station) {
	d.successors = append(d.successors, next)
	d.sim.Logger().Debug().Int(`index`, len(d.successors)-1).Log(`decide-condition wired to successor`)
}

// SetCondition wires the routing predicate.
func (d *DecideCondition) SetCondition(f func(c *engine.Client) int) {
	d.predicate = f
	d.sim.Logger().Debug().Log(`decide-condition predicate wired`)
}

// Validate reports a configuration error, if any.
func (d *DecideCondition) Validate() error {
	if d.predicate == nil {
		return engine.ErrInvalidConfig
	}
	if len(d.successors) == 0 {
		return engine.ErrNoSuccessor
	}
	return nil
}

// Receive implements engine.Station.
func (d *DecideCondition) Receive(c *engine.Client) {
	i := d.predicate(c)
	if i < 0 || i >= len(d.successors) {
		d.sim.Logger().Err().Int(`index`, i).Int(`successors`, len(d.successors)).Log(`decide-condition predicate returned an out-of-range index`)
		engine.Fail(engine.ErrRoutingOutOfRange, "predicate returned index %d for %d successors", i, len(d.successors))
	}
	next := d.successors[i]
	d.sim.Schedule(0, func() { next.Receive(c) })
}

package station

import (
	"math/rand"

	"github.com/joeycumines/queuesim/engine"
)

// Decide routes each arriving client to one of its successors with
// probability proportional to the rate configured for that successor.
// Routing is a single stage: no queue, no resource contention.
type Decide struct {
	sim *engine.Simulator
	rng *rand.Rand

	successors []engine.Station
	rates      []float64
	cumulative []float64
}

// NewDecide constructs a Decide bound to sim, drawing its routing
// decisions from rng.
func NewDecide(sim *engine.Simulator, rng *rand.Rand) *Decide {
	return &Decide{sim: sim, rng: rng}
}

// AddNext adds a successor with the given (unnormalised) rate. Rates are
// normalised into a cumulative probability vector the first time it is
// needed (Validate, or the first Receive if Validate was never called).
func (d *Decide) AddNext(next engine.Station, rate float64) {
	d.successors = append(d.successors, next)
	d.rates = append(d.rates, rate)
	d.cumulative = nil
	d.sim.Logger().Debug().Float64(`rate`, rate).Log(`decide wired to successor`)
}

// Validate reports a configuration error, if any, and builds the
// cumulative probability vector.
func (d *Decide) Validate() error {
	if len(d.successors) == 0 {
		return engine.ErrInvalidRate
	}
	var total float64
	for _, r := range d.rates {
		if r < 0 {
			return engine.ErrInvalidRate
		}
		total += r
	}
	if total <= 0 {
		return engine.ErrInvalidRate
	}

	cumulative := make([]float64, len(d.rates))
	var acc float64
	for i, r := range d.rates {
		acc += r / total
		cumulative[i] = acc
	}
	cumulative[len(cumulative)-1] = 1
	d.cumulative = cumulative
	return nil
}

// Receive implements engine.Station.
func (d *Decide) Receive(c *engine.Client) {
	if d.cumulative == nil {
		if err := d.Validate(); err != nil {
			d.sim.Logger().Err().Err(err).Log(`decide routing configuration invalid`)
			panic(err)
		}
	}
	u := d.rng.Float64()
	idx := 0
	for i, cp := range d.cumulative {
		if u < cp {
			idx = i
			break
		}
		idx = i
	}
	next := d.successors[idx]
	d.sim.Schedule(0, func() { next.Receive(c) })
}

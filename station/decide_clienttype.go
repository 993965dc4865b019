package station

import "github.com/joeycumines/queuesim/engine"

// DecideClientType routes each arriving client by its type tag, with an
// optional default successor for unrecognised types.
type DecideClientType struct {
	sim         *engine.Simulator
	routes      map[string]engine.Station
	defaultNext engine.Station
}

// NewDecideClientType constructs a DecideClientType bound to sim.
func NewDecideClientType(sim *engine.Simulator) *DecideClientType {
	return &DecideClientType{sim: sim, routes: make(map[string]engine.Station)}
}

// SetNextForType wires the successor used for clients of the given type.
func (d *DecideClientType) SetNextForType(typeName string, next engine.Station) {
	d.routes[typeName] = next
	d.sim.Logger().Debug().Str(`type`, typeName).Log(`decide-client-type wired to successor`)
}

// SetNextDefault wires the fallback successor used when a client's type
// has no configured route.
func (d *DecideClientType) SetNextDefault(next engine.Station) {
	d.defaultNext = next
	d.sim.Logger().Debug().Log(`decide-client-type default wired`)
}

// Validate reports a configuration error, if any.
func (d *DecideClientType) Validate() error {
	if len(d.routes) == 0 && d.defaultNext == nil {
		return engine.ErrNoSuccessor
	}
	return nil
}

// Receive implements engine.Station.
func (d *DecideClientType) Receive(c *engine.Client) {
	next, ok := d.routes[c.Type]
	if !ok {
		next = d.defaultNext
		if next == nil {
			d.sim.Logger().Err().Str(`type`, c.Type).Log(`decide-client-type has no route and no default`)
			engine.Fail(engine.ErrNoDefaultRoute, "no route for client type %q", c.Type)
		}
	}
	d.sim.Schedule(0, func() { next.Receive(c) })
}

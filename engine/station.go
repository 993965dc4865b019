package engine

// Station is the base contract every network node implements: receive a
// client at the current clock. Stations that don't support receiving on a
// particular path (e.g. a successor field left unset) should call
// engine.Fail(ErrNoSuccessor, ...) rather than silently dropping the client.
type Station interface {
	Receive(c *Client)
}

// Validator is implemented by stations whose configuration must be sanity
// checked before a run starts. Simulator.Run does not call this
// automatically (stations are constructed, and may be validated, well
// before any Simulator exists, e.g. in the network package); callers are
// expected to call ValidateAll over their station graph before Run.
type Validator interface {
	Validate() error
}

// ValidateAll runs Validate on every station that implements Validator,
// returning the first error encountered.
func ValidateAll(stations ...Station) error {
	for _, st := range stations {
		if v, ok := st.(Validator); ok {
			if err := v.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// SuccessorSetter is implemented by stations with a single primary
// successor.
type SuccessorSetter interface {
	SetNext(next Station)
}

// CancelSuccessorSetter is implemented by stations that route
// canceled/blocked clients to a secondary successor.
type CancelSuccessorSetter interface {
	SetNextCancel(next Station)
}

// RateSuccessorAdder is implemented by Decide-like stations that route by
// configured rate.
type RateSuccessorAdder interface {
	AddNext(next Station, rate float64)
}

// ConditionSetter is implemented by DecideCondition, routing on an
// arbitrary client predicate.
type ConditionSetter interface {
	SetCondition(f func(c *Client) int)
}

// TypeRouter is implemented by DecideClientType, routing by client type
// with a default fallback.
type TypeRouter interface {
	SetNextForType(typeName string, next Station)
	SetNextDefault(next Station)
}

package engine

import "errors"

// Sentinel errors for the engine's error taxonomy. Errors raised by the
// engine, station and network packages are one of these, either as is or
// wrapped via fmt.Errorf("%w: ..."), so callers can use errors.Is/errors.As.
// The sampler package reports its own parameter errors without them.
var (
	// ErrNoSuccessor is raised when a client is handed to a station that has
	// no wired successor for the taken path. A terminal station missing a
	// successor is a configuration error, not a routed domain outcome.
	ErrNoSuccessor = errors.New("engine: station has no successor wired for this path")

	// ErrInvalidConfig is raised by a station's Validate method when its
	// configuration is structurally invalid (non-positive capacity or batch
	// size, missing required sampler, etc).
	ErrInvalidConfig = errors.New("engine: invalid station configuration")

	// ErrInvalidRate is raised when a Decide (or network builder) rate
	// vector sums to zero, or contains a negative rate.
	ErrInvalidRate = errors.New("engine: invalid or all-zero rate vector")

	// ErrRoutingOutOfRange is raised when a DecideCondition predicate
	// returns an index outside the configured successor list.
	ErrRoutingOutOfRange = errors.New("engine: routing function returned an out-of-range index")

	// ErrNoDefaultRoute is raised when DecideClientType sees an unknown
	// client type and no default successor is configured.
	ErrNoDefaultRoute = errors.New("engine: no route for client type and no default successor")

	// ErrNonFiniteSample is raised when a Sampler yields NaN (or +/-Inf).
	// Negative samples are clipped to zero rather than raising this error.
	ErrNonFiniteSample = errors.New("engine: sampler produced a non-finite value")
)

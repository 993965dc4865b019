// Package station implements the library of interconnectable queueing
// network node types: Source, Process, Delay, Dispose, Decide,
// DecideCondition and DecideClientType. Every type in this package
// implements engine.Station, and the ones with configuration that can be
// wrong implement engine.Validator so a caller can sanity-check an entire
// graph with engine.ValidateAll before starting a run.
package station

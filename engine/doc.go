// Package engine implements the discrete-event core of queuesim: a
// single-threaded, cooperative event loop driving a simulated clock, the
// Client token carried between stations, and the Station contract that
// every queueing-network node implements.
//
// The event loop has no goroutines and no wall-clock I/O: there is no
// concurrency inside a single Simulator run (see golang.org/x/sync/errgroup
// usage in paramstudy for the one place multiple runs execute concurrently,
// each with its own engine). Its shape is a monotonic sequence counter
// breaking ties in a min-heap, plus a panic boundary around handler
// execution that converts known sentinel errors into a returned error.
package engine

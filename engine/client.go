package engine

import "sync/atomic"

// clientIDCounter assigns unique Client IDs across a process. Each Simulator
// run in a paramstudy worker gets its own counter value range simply by
// virtue of never resetting it; uniqueness across runs is not required,
// only uniqueness within a run.
var clientIDCounter atomic.Uint64

// ClientLedger accumulates the per-client timings a full trajectory
// tracks: waiting, service, post-processing and residence time. Process
// adds into Waiting/Service as the client passes through, and Dispose
// records those two into its discrete recorders (its residence figure is
// taken from the clock, not from Residence). No station in this module
// writes PostProcessing or Residence; post-processing is tracked on the
// server (see station.Process).
type ClientLedger struct {
	Waiting        float64
	Service        float64
	PostProcessing float64
	Residence      float64
}

// Client is the lightweight token carried between stations: created at a
// Source, handed off between stations via Simulator-scheduled events, and
// destroyed at a Dispose.
type Client struct {
	ID        uint64
	Type      string
	CreatedAt float64
	Ledger    ClientLedger
}

// NewClient constructs a Client with a fresh ID, stamped with the current
// simulated time as its creation time.
func NewClient(typeName string, createdAt float64) *Client {
	return &Client{
		ID:        clientIDCounter.Add(1),
		Type:      typeName,
		CreatedAt: createdAt,
	}
}

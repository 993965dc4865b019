package station

import (
	"github.com/joeycumines/queuesim/engine"
	"github.com/joeycumines/queuesim/stats"
)

// Dispose is a terminal sink: it records a client's trajectory sums and
// drops the client.
type Dispose struct {
	sim *engine.Simulator

	waiting   stats.Discrete
	service   stats.Discrete
	residence stats.Discrete
}

// NewDispose constructs an empty Dispose bound to sim, used to stamp each
// disposed client's residence time.
func NewDispose(sim *engine.Simulator) *Dispose {
	return &Dispose{sim: sim}
}

// Receive implements engine.Station.
func (d *Dispose) Receive(c *engine.Client) {
	d.waiting.Record(c.Ledger.Waiting)
	d.service.Record(c.Ledger.Service)
	d.residence.Record(d.sim.Clock() - c.CreatedAt)
}

// Waiting reports the distribution of total waiting time across every
// client's life.
func (d *Dispose) Waiting() *stats.Discrete { return &d.waiting }

// Service reports the distribution of total service time across every
// client's life.
func (d *Dispose) Service() *stats.Discrete { return &d.service }

// Residence reports the distribution of wall-clock residence time
// (creation to disposal) across disposed clients.
func (d *Dispose) Residence() *stats.Discrete { return &d.residence }

package station

import (
	"math/rand"

	"github.com/joeycumines/queuesim/engine"
	"github.com/joeycumines/queuesim/sampler"
	"github.com/joeycumines/queuesim/stats"
	"golang.org/x/exp/slices"
)

// Discipline selects which waiting clients start service next.
type Discipline int

const (
	// FIFO selects the earliest-enqueued waiting clients first.
	FIFO Discipline = iota
	// LIFO selects the most-recently-enqueued waiting clients first.
	LIFO
	// Random selects uniformly at random among waiting clients, ignoring
	// enqueue order entirely. Requires ProcessConfig.Rand.
	Random
)

// ProcessConfig configures a Process: a queue in front of c parallel
// servers, each able to hold a batch of b clients at once.
type ProcessConfig struct {
	// Servers is the number of parallel servers, c >= 1.
	Servers int
	// BatchSize is the number of clients a single server holds
	// concurrently, b >= 1. Zero defaults to 1.
	BatchSize int
	// Service draws the service-time for a batch. Required.
	Service sampler.Sampler
	// ServiceByType overrides Service for clients of the given type.
	ServiceByType map[string]sampler.Sampler
	// Patience draws how long a client will wait before abandoning the
	// queue. Nil means infinite patience.
	Patience sampler.Sampler
	// PatienceByType overrides Patience for clients of the given type.
	PatienceByType map[string]sampler.Sampler
	// PostProcessing draws additional server-bound work continuing after
	// a batch departs to its successor. Nil means none.
	PostProcessing sampler.Sampler
	// Capacity bounds queue+in-service population; 0 means unbounded.
	Capacity int
	// Discipline selects FIFO, LIFO or Random ordering, overridden by
	// Priority if it is set.
	Discipline Discipline
	// Rand draws the selection order for Random discipline. Required iff
	// Discipline is Random.
	Rand *rand.Rand
	// Priority, if set, overrides Discipline: clients are selected by
	// maximum priority(client, waited), ties broken by earliest enqueue.
	Priority func(c *engine.Client, waited float64) float64
	// RecordValues retains full time-series traces on the continuous
	// recorders.
	RecordValues bool
}

type waitingClient struct {
	client     *engine.Client
	enqueuedAt float64
	cancel     engine.CancelFunc
}

// Process is the queue-plus-servers station: arrivals queue per
// discipline, servers draw service time (and optional post-processing
// time) from configured samplers, clients may abandon the queue after a
// patience timeout, and the station may cap its total population.
type Process struct {
	sim *engine.Simulator
	cfg ProcessConfig

	successor       engine.Station
	cancelSuccessor engine.Station

	queue       []*waitingClient
	busyServers int
	inService   int

	waitingRec       stats.Discrete
	serviceRec       stats.Discrete
	postProcessRec   stats.Discrete
	residenceRec     stats.Discrete
	successRec       stats.Options
	queueLengthRec   *stats.Continuous
	wipRec           *stats.Continuous
	workloadRec      *stats.Continuous
}

// NewProcess constructs a Process bound to sim, configured per cfg.
func NewProcess(sim *engine.Simulator, cfg ProcessConfig) *Process {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 1
	}
	return &Process{
		sim:            sim,
		cfg:            cfg,
		queueLengthRec: stats.NewContinuous(cfg.RecordValues),
		wipRec:         stats.NewContinuous(cfg.RecordValues),
		workloadRec:    stats.NewContinuous(cfg.RecordValues),
	}
}

// SetNext wires the successor for clients that complete service.
func (p *Process) SetNext(next engine.Station) {
	p.successor = next
	p.sim.Logger().Debug().Log(`process wired to successor`)
}

// SetNextCancel wires the successor for clients that are blocked (over
// capacity) or abandon the queue via patience.
func (p *Process) SetNextCancel(next engine.Station) {
	p.cancelSuccessor = next
	p.sim.Logger().Debug().Log(`process wired to cancel successor`)
}

// Validate reports a configuration error, if any.
func (p *Process) Validate() error {
	if p.cfg.Servers < 1 {
		return engine.ErrInvalidConfig
	}
	if p.cfg.BatchSize < 1 {
		return engine.ErrInvalidConfig
	}
	if p.cfg.Service == nil {
		return engine.ErrInvalidConfig
	}
	if p.cfg.Capacity < 0 {
		return engine.ErrInvalidConfig
	}
	if p.cfg.Discipline == Random && p.cfg.Rand == nil {
		return engine.ErrInvalidConfig
	}
	if p.successor == nil {
		return engine.ErrNoSuccessor
	}
	needsCancelPath := p.cfg.Capacity > 0 || p.cfg.Patience != nil || len(p.cfg.PatienceByType) > 0
	if needsCancelPath && p.cancelSuccessor == nil {
		return engine.ErrNoSuccessor
	}
	return nil
}

func (p *Process) population() int {
	return len(p.queue) + p.inService
}

// Len reports the number of clients currently waiting in queue (excluding
// those already in service), for routing decisions that need the live
// queue state rather than a time-weighted statistic (e.g. shortest-queue
// routing via DecideCondition).
func (p *Process) Len() int { return len(p.queue) }

func (p *Process) serviceSamplerFor(c *engine.Client) sampler.Sampler {
	if s, ok := p.cfg.ServiceByType[c.Type]; ok {
		return s
	}
	return p.cfg.Service
}

func (p *Process) patienceSamplerFor(c *engine.Client) sampler.Sampler {
	if s, ok := p.cfg.PatienceByType[c.Type]; ok {
		return s
	}
	return p.cfg.Patience
}

// Receive implements engine.Station: the arrival path.
func (p *Process) Receive(c *engine.Client) {
	now := p.sim.Clock()

	if p.cfg.Capacity > 0 && p.population() >= p.cfg.Capacity {
		p.successRec.Record("blocked")
		p.updateRecorders(now)
		p.sim.Logger().Debug().Uint64(`client`, c.ID).Int(`population`, p.population()).Log(`process blocked an arrival: at capacity`)
		cancelSuccessor := p.cancelSuccessor
		p.sim.Schedule(0, func() { cancelSuccessor.Receive(c) })
		return
	}

	wc := &waitingClient{client: c, enqueuedAt: now}

	if nu := p.patienceSamplerFor(c); nu != nil {
		patience, ok := sampler.Clip(nu.Next())
		if !ok {
			p.sim.Logger().Err().Uint64(`client`, c.ID).Log(`process patience sampler produced a non-finite value`)
			engine.Fail(engine.ErrNonFiniteSample, "process patience sampler produced a non-finite value")
		}
		wc.cancel = p.sim.Schedule(patience, func() { p.abandon(wc) })
	}

	switch {
	case p.cfg.Discipline == LIFO && p.cfg.Priority == nil:
		p.queue = append([]*waitingClient{wc}, p.queue...)
	default:
		p.queue = append(p.queue, wc)
	}

	p.updateRecorders(now)
	p.tryStartService()
}

// abandon handles a patience timeout: it fires only if the cancel event
// was not already invalidated by the client entering service.
func (p *Process) abandon(wc *waitingClient) {
	idx := slices.IndexFunc(p.queue, func(o *waitingClient) bool { return o == wc })
	if idx < 0 {
		return
	}
	p.queue = append(p.queue[:idx], p.queue[idx+1:]...)

	now := p.sim.Clock()
	waited := now - wc.enqueuedAt
	p.waitingRec.Record(waited)
	wc.client.Ledger.Waiting += waited
	p.successRec.Record("cancel")
	p.sim.Logger().Debug().Uint64(`client`, wc.client.ID).Float64(`waited`, waited).Log(`process client abandoned the queue`)

	p.updateRecorders(now)
	cancelSuccessor := p.cancelSuccessor
	client := wc.client
	p.sim.Schedule(0, func() { cancelSuccessor.Receive(client) })
}

// tryStartService selects a full batch of waiting clients, if a server is
// free and enough clients are waiting, and starts service for them. It is
// idempotent and safe to call after any state change that could enable
// service to start.
func (p *Process) tryStartService() {
	if p.busyServers >= p.cfg.Servers {
		return
	}
	if len(p.queue) < p.cfg.BatchSize {
		return
	}

	now := p.sim.Clock()
	batch := p.selectBatch(now)

	waited := make([]float64, len(batch))
	for i, wc := range batch {
		if wc.cancel != nil {
			wc.cancel()
		}
		w := now - wc.enqueuedAt
		waited[i] = w
		p.waitingRec.Record(w)
		wc.client.Ledger.Waiting += w
	}

	p.busyServers++
	p.inService += len(batch)
	p.updateRecorders(now)

	clients := make([]*engine.Client, len(batch))
	for i, wc := range batch {
		clients[i] = wc.client
	}

	svc := p.serviceSamplerFor(clients[0])
	serviceTime, ok := sampler.Clip(svc.Next())
	if !ok {
		p.sim.Logger().Err().Log(`process service sampler produced a non-finite value`)
		engine.Fail(engine.ErrNonFiniteSample, "process service sampler produced a non-finite value")
	}
	p.serviceRec.Record(serviceTime)

	p.sim.Schedule(serviceTime, func() { p.completeService(clients, waited, serviceTime) })
}

// selectBatch removes and returns BatchSize waiting clients from the
// queue per the configured discipline.
func (p *Process) selectBatch(now float64) []*waitingClient {
	b := p.cfg.BatchSize

	if p.cfg.Priority != nil {
		ordered := make([]*waitingClient, len(p.queue))
		copy(ordered, p.queue)
		slices.SortFunc(ordered, func(a, c *waitingClient) int {
			pa := p.cfg.Priority(a.client, now-a.enqueuedAt)
			pc := p.cfg.Priority(c.client, now-c.enqueuedAt)
			switch {
			case pa > pc:
				return -1
			case pa < pc:
				return 1
			case a.enqueuedAt < c.enqueuedAt:
				return -1
			case a.enqueuedAt > c.enqueuedAt:
				return 1
			}
			return 0
		})
		selected := ordered[:b]
		p.queue = removeAll(p.queue, selected)
		return selected
	}

	if p.cfg.Discipline == Random {
		perm := p.cfg.Rand.Perm(len(p.queue))
		selected := make([]*waitingClient, b)
		for i := 0; i < b; i++ {
			selected[i] = p.queue[perm[i]]
		}
		p.queue = removeAll(p.queue, selected)
		return selected
	}

	// FIFO and LIFO both select from the front of p.queue: FIFO appends new
	// arrivals at the back, leaving the oldest client at the front; LIFO
	// prepends new arrivals at the front, leaving the newest client at the
	// front. Selection never needs to branch on FIFO vs LIFO directly.
	selected := append([]*waitingClient(nil), p.queue[:b]...)
	p.queue = p.queue[b:]
	return selected
}

func removeAll(queue, remove []*waitingClient) []*waitingClient {
	removed := make(map[*waitingClient]bool, len(remove))
	for _, wc := range remove {
		removed[wc] = true
	}
	kept := queue[:0:0]
	for _, wc := range queue {
		if !removed[wc] {
			kept = append(kept, wc)
		}
	}
	return kept
}

// completeService fires when a batch's service time elapses: each client
// in the batch departs to the successor, and the server either frees
// immediately or continues post-processing. waited holds each client's
// per-visit waiting time, parallel to clients, used to record this
// station's residence distribution (waiting + service, excluding any
// post-processing that follows after the client has already departed).
func (p *Process) completeService(clients []*engine.Client, waited []float64, serviceTime float64) {
	now := p.sim.Clock()

	for i, c := range clients {
		c.Ledger.Service += serviceTime
		p.successRec.Record("success")
		p.residenceRec.Record(waited[i] + serviceTime)
		successor := p.successor
		client := c
		p.sim.Schedule(0, func() { successor.Receive(client) })
	}
	p.inService -= len(clients)
	p.updateRecorders(now)

	if p.cfg.PostProcessing != nil {
		postTime, ok := sampler.Clip(p.cfg.PostProcessing.Next())
		if !ok {
			p.sim.Logger().Err().Log(`process post-processing sampler produced a non-finite value`)
			engine.Fail(engine.ErrNonFiniteSample, "process post-processing sampler produced a non-finite value")
		}
		p.sim.Schedule(postTime, func() { p.completePostProcessing(postTime) })
		return
	}

	p.freeServer()
}

func (p *Process) completePostProcessing(duration float64) {
	p.postProcessRec.Record(duration)
	p.freeServer()
}

func (p *Process) freeServer() {
	p.busyServers--
	p.updateRecorders(p.sim.Clock())
	p.tryStartService()
}

func (p *Process) updateRecorders(now float64) {
	p.queueLengthRec.Update(now, float64(len(p.queue)))
	p.wipRec.Update(now, float64(p.population()))
	p.workloadRec.Update(now, float64(p.busyServers)/float64(p.cfg.Servers))
}

// Waiting reports the station-waiting time distribution.
func (p *Process) Waiting() *stats.Discrete { return &p.waitingRec }

// Service reports the station-service time distribution.
func (p *Process) Service() *stats.Discrete { return &p.serviceRec }

// PostProcessing reports the station-post-processing time distribution.
func (p *Process) PostProcessing() *stats.Discrete { return &p.postProcessRec }

// Residence reports this station's residence time distribution: waiting
// plus service time for clients that passed through, excluding any
// post-processing (which continues after the client has already departed).
func (p *Process) Residence() *stats.Discrete { return &p.residenceRec }

// Success reports the success/cancel/blocked outcome counter.
func (p *Process) Success() *stats.Options { return &p.successRec }

// QueueLength reports the time-weighted queue-length signal.
func (p *Process) QueueLength() *stats.Continuous { return p.queueLengthRec }

// WIP reports the time-weighted work-in-progress (queue+in-service) signal.
func (p *Process) WIP() *stats.Continuous { return p.wipRec }

// Workload reports the time-weighted fraction-of-servers-busy signal.
func (p *Process) Workload() *stats.Continuous { return p.workloadRec }

package station

import (
	"github.com/joeycumines/queuesim/engine"
	"github.com/joeycumines/queuesim/sampler"
)

// SourceConfig configures a Source.
type SourceConfig struct {
	// N is the number of clients this source will ever emit.
	N int
	// InterArrival draws the delay until the next arrival event. Required.
	InterArrival sampler.Sampler
	// BatchSize draws how many clients a single arrival event produces.
	// Nil means a constant batch size of 1.
	BatchSize sampler.Sampler
	// Type is the type tag stamped onto every client this source creates.
	Type string
}

// Source emits a bounded sequence of clients, with configurable
// inter-arrival timing and optional batching. It is the only station that
// produces events from nothing; all downstream activity is derived from
// what a Source schedules.
type Source struct {
	sim       *engine.Simulator
	cfg       SourceConfig
	next      engine.Station
	remaining int
}

// NewSource constructs a Source bound to sim, configured per cfg.
func NewSource(sim *engine.Simulator, cfg SourceConfig) *Source {
	return &Source{sim: sim, cfg: cfg, remaining: cfg.N}
}

// SetNext wires the station every emitted client is handed to.
func (s *Source) SetNext(next engine.Station) {
	s.next = next
	s.sim.Logger().Debug().Str(`type`, s.cfg.Type).Log(`source wired to successor`)
}

// Validate reports a configuration error, if any.
func (s *Source) Validate() error {
	if s.cfg.N < 0 {
		return engine.ErrInvalidConfig
	}
	if s.cfg.InterArrival == nil {
		return engine.ErrInvalidConfig
	}
	if s.next == nil {
		return engine.ErrNoSuccessor
	}
	return nil
}

// Start schedules the first arrival event, at delay InterArrival.Next()
// from the current clock (not at t=0: the first inter-arrival gap is
// drawn exactly like every subsequent one). Callers must invoke Start
// before Simulator.Run; nothing else does it automatically.
func (s *Source) Start() {
	if s.remaining <= 0 {
		return
	}
	s.scheduleNext()
}

func (s *Source) scheduleNext() {
	delay, ok := sampler.Clip(s.cfg.InterArrival.Next())
	if !ok {
		s.sim.Logger().Err().Str(`type`, s.cfg.Type).Log(`source inter-arrival sampler produced a non-finite value`)
		engine.Fail(engine.ErrNonFiniteSample, "source inter-arrival sampler produced a non-finite value")
	}
	s.sim.Schedule(delay, s.arrive)
}

func (s *Source) arrive() {
	if s.remaining <= 0 {
		return
	}

	k := 1
	if s.cfg.BatchSize != nil {
		raw, ok := sampler.Clip(s.cfg.BatchSize.Next())
		if !ok {
			s.sim.Logger().Err().Str(`type`, s.cfg.Type).Log(`source batch-size sampler produced a non-finite value`)
			engine.Fail(engine.ErrNonFiniteSample, "source batch-size sampler produced a non-finite value")
		}
		k = int(raw)
		if k < 1 {
			k = 1
		}
	}
	if k > s.remaining {
		k = s.remaining
	}

	now := s.sim.Clock()
	for i := 0; i < k; i++ {
		c := engine.NewClient(s.cfg.Type, now)
		next := s.next
		s.sim.Schedule(0, func() { next.Receive(c) })
	}
	s.remaining -= k

	if s.remaining > 0 {
		s.scheduleNext()
	}
}

// Remaining reports how many more clients this source will emit.
func (s *Source) Remaining() int { return s.remaining }

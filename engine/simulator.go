package engine

import (
	"errors"
	"fmt"

	"github.com/joeycumines/queuesim/logging"
)

// Simulator owns the clock and the event queue. It is not safe for
// concurrent use: a single Simulator drives exactly one single-threaded
// cooperative run. Multiple independent Simulators may run concurrently in
// separate goroutines (see the paramstudy package).
type Simulator struct {
	clock     float64
	queue     *eventQueue
	log       *logging.Logger
	scheduled uint64
	executed  uint64
}

// Option configures a Simulator at construction time.
type Option func(*Simulator)

// WithLogger attaches a structured logger. If never called, the Simulator
// uses logging.Disabled, a genuine no-op.
func WithLogger(l *logging.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

// New constructs a Simulator with its clock at zero.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		queue: newEventQueue(),
		log:   logging.Disabled,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Clock returns the current simulated time.
func (s *Simulator) Clock() float64 { return s.clock }

// Logger returns the structured logger configured for this Simulator
// (never nil; defaults to a no-op).
func (s *Simulator) Logger() *logging.Logger { return s.log }

// Schedule inserts handler to fire at Clock()+max(0, delay). The returned
// CancelFunc marks the event invalid in place; calling it after the event
// has fired, or more than once, is a no-op.
func (s *Simulator) Schedule(delay float64, handler func()) CancelFunc {
	if delay < 0 {
		delay = 0
	}
	e := s.queue.insert(s.clock+delay, handler)
	s.scheduled++
	return func() {
		e.canceled = true
	}
}

// Stats reports how many events were scheduled and executed over the
// lifetime of this Simulator, useful for logging and sanity-checking a run.
func (s *Simulator) Stats() (scheduled, executed uint64) {
	return s.scheduled, s.executed
}

// Run drains the event queue: pop the minimum (fireTime, seq) pending
// event, advance the clock to its fireTime, and invoke its handler,
// repeating until the queue is empty. A panic raised by a handler that
// carries one of this package's sentinel errors is recovered and returned
// as a normal error; any other panic (an engine bug) is re-raised.
func (s *Simulator) Run() (err error) {
	s.log.Info().Uint64(`scheduled`, s.scheduled).Log(`simulator run starting`)

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				for _, sentinel := range []error{ErrNoSuccessor, ErrInvalidConfig, ErrInvalidRate, ErrRoutingOutOfRange, ErrNoDefaultRoute, ErrNonFiniteSample} {
					if errors.Is(e, sentinel) {
						err = e
						s.log.Err().Uint64(`executed`, s.executed).Str(`error`, e.Error()).Log(`simulator run aborted`)
						return
					}
				}
			}
			panic(r)
		}
	}()

	for {
		e := s.queue.popNext()
		if e == nil {
			break
		}
		s.clock = e.fireTime
		e.handler()
		s.executed++
	}

	s.log.Info().Uint64(`executed`, s.executed).Log(`simulator run complete`)
	return nil
}

// failf panics with an error wrapping one of the package sentinels, for use
// by station implementations reporting a configuration or routing error at
// event time. Using a typed panic (rather than os.Exit or log.Fatal) lets
// Run convert it into a normal returned error.
func failf(sentinel error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)))
}

// Fail is the exported form of failf, used by the station package to raise
// a fatal routing/configuration error from within an event handler.
func Fail(sentinel error, format string, args ...any) {
	failf(sentinel, format, args...)
}

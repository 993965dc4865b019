// Package paramstudy runs N independent queueing-network models
// concurrently and collects their results. The engine carries no shared
// mutable state across runs (each Simulator owns its own clock, event
// queue and station graph), so an in-process goroutine pool is the
// idiomatic Go rendering of the same run-to-run isolation a
// process-per-run design would give, without the process-spawning
// overhead.
package paramstudy

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/joeycumines/queuesim/engine"
)

// Config controls how a parameter study is executed.
type Config struct {
	// MaxConcurrency bounds how many runs execute at once. Zero defaults
	// to runtime.GOMAXPROCS(0).
	MaxConcurrency int
}

// Build constructs the run-th independent Simulator, together with a
// collector invoked once that Simulator's Run has returned successfully.
type Build[Result any] func(run int) (sim *engine.Simulator, collect func() Result)

// Run executes n independent (Simulator, collector) pairs built by build,
// with concurrency bounded by cfg.MaxConcurrency, returning results in
// run-index order. If any run's Simulator.Run returns an error, or ctx is
// cancelled, Run stops launching new runs and returns the first error
// encountered.
func Run[Result any](ctx context.Context, cfg Config, n int, build Build[Result]) ([]Result, error) {
	maxConcurrency := cfg.MaxConcurrency
	if maxConcurrency <= 0 {
		maxConcurrency = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)

	for run := 0; run < n; run++ {
		run := run
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sim, collect := build(run)
			if err := sim.Run(); err != nil {
				sim.Logger().Err().Int(`run`, run).Err(err).Log(`paramstudy run failed`)
				return err
			}
			results[run] = collect()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

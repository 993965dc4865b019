// Package network wires a bipartite/tripartite set of sources, processes
// and disposes from two transition-rate matrices, rather than requiring
// callers to build Decide stations by hand for every routing point.
package network

import (
	"fmt"
	"math/rand"

	"github.com/joeycumines/queuesim/engine"
	"github.com/joeycumines/queuesim/station"
)

// Build wires sources -> processes via arrivalRates (shape
// len(sources) x len(processes)) and processes -> processes|disposes via
// departureRates (shape len(processes) x (len(processes)+len(disposes))).
// For each source it creates a Decide with successors = processes and
// rates = that source's row; for each process it creates a Decide with
// successors = processes ++ disposes and rates = that process's row. Rows
// of the wrong length and rows with no positive rate are rejected before
// any wiring happens.
//
// rng seeds every created Decide's routing draws; pass independent
// *rand.Rand instances across parameter-study runs for independent
// routing outcomes.
func Build(
	sim *engine.Simulator,
	sources []*station.Source,
	processes []*station.Process,
	disposes []*station.Dispose,
	arrivalRates [][]float64,
	departureRates [][]float64,
	rng *rand.Rand,
) error {
	log := sim.Logger()

	if len(arrivalRates) != len(sources) {
		log.Err().Int(`rows`, len(arrivalRates)).Int(`want`, len(sources)).Log(`network build: arrivalRates row count mismatch`)
		return fmt.Errorf("%w: arrivalRates has %d rows, want %d (one per source)", engine.ErrInvalidRate, len(arrivalRates), len(sources))
	}
	for i, row := range arrivalRates {
		if len(row) != len(processes) {
			log.Err().Int(`row`, i).Int(`columns`, len(row)).Int(`want`, len(processes)).Log(`network build: arrivalRates column count mismatch`)
			return fmt.Errorf("%w: arrivalRates row %d has %d columns, want %d (one per process)", engine.ErrInvalidRate, i, len(row), len(processes))
		}
		if !hasPositive(row) {
			log.Err().Int(`row`, i).Log(`network build: arrivalRates row is all-zero`)
			return fmt.Errorf("%w: arrivalRates row %d is all-zero", engine.ErrInvalidRate, i)
		}
	}

	if len(departureRates) != len(processes) {
		log.Err().Int(`rows`, len(departureRates)).Int(`want`, len(processes)).Log(`network build: departureRates row count mismatch`)
		return fmt.Errorf("%w: departureRates has %d rows, want %d (one per process)", engine.ErrInvalidRate, len(departureRates), len(processes))
	}
	width := len(processes) + len(disposes)
	for j, row := range departureRates {
		if len(row) != width {
			log.Err().Int(`row`, j).Int(`columns`, len(row)).Int(`want`, width).Log(`network build: departureRates column count mismatch`)
			return fmt.Errorf("%w: departureRates row %d has %d columns, want %d (processes+disposes)", engine.ErrInvalidRate, j, len(row), width)
		}
		if !hasPositive(row) {
			log.Err().Int(`row`, j).Log(`network build: departureRates row is all-zero`)
			return fmt.Errorf("%w: departureRates row %d is all-zero", engine.ErrInvalidRate, j)
		}
	}

	downstream := make([]engine.Station, 0, width)
	for _, p := range processes {
		downstream = append(downstream, p)
	}
	for _, d := range disposes {
		downstream = append(downstream, d)
	}

	for i, src := range sources {
		decide := station.NewDecide(sim, rng)
		for j, p := range processes {
			decide.AddNext(p, arrivalRates[i][j])
		}
		if err := decide.Validate(); err != nil {
			log.Err().Int(`source`, i).Err(err).Log(`network build: source routing is invalid`)
			return err
		}
		src.SetNext(decide)
		log.Debug().Int(`source`, i).Log(`network build: source wired`)
	}

	for j, p := range processes {
		decide := station.NewDecide(sim, rng)
		for k, next := range downstream {
			decide.AddNext(next, departureRates[j][k])
		}
		if err := decide.Validate(); err != nil {
			log.Err().Int(`process`, j).Err(err).Log(`network build: process routing is invalid`)
			return err
		}
		p.SetNext(decide)
		log.Debug().Int(`process`, j).Log(`network build: process wired`)
	}

	log.Info().Int(`sources`, len(sources)).Int(`processes`, len(processes)).Int(`disposes`, len(disposes)).Log(`network build complete`)
	return nil
}

func hasPositive(row []float64) bool {
	for _, v := range row {
		if v > 0 {
			return true
		}
	}
	return false
}

// Package stats implements the three statistic recorder flavours every
// station reports through: discrete values, time-weighted continuous
// values, and categorical counts.
package stats

import "math"

const defaultBins = 128

// Discrete accumulates a stream of real values: count, mean, standard
// deviation, coefficient of variation, min, max, and an adaptive
// power-of-two-width histogram. Mean and variance use Welford's running
// algorithm to avoid catastrophic cancellation at the million-sample scale
// a long run can reach. The zero value is ready to use.
type Discrete struct {
	count    uint64
	mean     float64
	m2       float64 // sum of squared deviations from the running mean
	min      float64
	max      float64
	bins     [defaultBins]uint64
	binWidth float64 // 0 until the first sample sets it
}

// Record adds v to the distribution.
func (d *Discrete) Record(v float64) {
	d.count++
	delta := v - d.mean
	d.mean += delta / float64(d.count)
	delta2 := v - d.mean
	d.m2 += delta * delta2

	if d.count == 1 {
		d.min, d.max = v, v
	} else {
		if v < d.min {
			d.min = v
		}
		if v > d.max {
			d.max = v
		}
	}

	d.recordHistogram(v)
}

// recordHistogram places v into the adaptive histogram, doubling the bin
// width (pairwise-summing adjacent bins) until v fits within the upper
// edge. Bin i covers [i*binWidth, (i+1)*binWidth).
func (d *Discrete) recordHistogram(v float64) {
	if v < 0 {
		v = 0
	}
	if d.binWidth == 0 {
		d.binWidth = 1
	}
	for v >= float64(defaultBins)*d.binWidth {
		for i := 0; i < defaultBins/2; i++ {
			d.bins[i] = d.bins[2*i] + d.bins[2*i+1]
		}
		for i := defaultBins / 2; i < defaultBins; i++ {
			d.bins[i] = 0
		}
		d.binWidth *= 2
	}
	idx := int(v / d.binWidth)
	if idx >= defaultBins {
		idx = defaultBins - 1
	}
	d.bins[idx]++
}

// Count returns the number of recorded values.
func (d *Discrete) Count() uint64 { return d.count }

// Mean returns the running mean, or 0 if no values were recorded.
func (d *Discrete) Mean() float64 { return d.mean }

// Variance returns the sample variance (denominator n-1), or 0 if fewer
// than two values were recorded.
func (d *Discrete) Variance() float64 {
	if d.count < 2 {
		return 0
	}
	return d.m2 / float64(d.count-1)
}

// StdDev returns the sample standard deviation, or 0 if fewer than two
// values were recorded.
func (d *Discrete) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// CV returns the coefficient of variation (StdDev/Mean), or 0 if the mean
// is zero.
func (d *Discrete) CV() float64 {
	if d.mean == 0 {
		return 0
	}
	return d.StdDev() / d.mean
}

// Min returns the minimum recorded value, or 0 if none were recorded.
func (d *Discrete) Min() float64 { return d.min }

// Max returns the maximum recorded value, or 0 if none were recorded.
func (d *Discrete) Max() float64 { return d.max }

// Histogram returns a copy of the current bin counts and the bin width
// they share; bin i covers [i*width, (i+1)*width).
func (d *Discrete) Histogram() (bins [defaultBins]uint64, width float64) {
	return d.bins, d.binWidth
}

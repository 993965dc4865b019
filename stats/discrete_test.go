package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscrete_NoData(t *testing.T) {
	var d Discrete
	assert.Equal(t, uint64(0), d.Count())
	assert.Equal(t, 0.0, d.Mean())
	assert.Equal(t, 0.0, d.StdDev())
	assert.Equal(t, 0.0, d.CV())
	assert.Equal(t, 0.0, d.Min())
	assert.Equal(t, 0.0, d.Max())
}

func TestDiscrete_MeanAndStdDev(t *testing.T) {
	var d Discrete
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	for _, v := range values {
		d.Record(v)
	}
	assert.Equal(t, uint64(len(values)), d.Count())
	assert.InDelta(t, 5.0, d.Mean(), 1e-9)
	assert.InDelta(t, 2.138, d.StdDev(), 1e-3)
	assert.InDelta(t, d.StdDev()/d.Mean(), d.CV(), 1e-9)
	assert.Equal(t, 2.0, d.Min())
	assert.Equal(t, 9.0, d.Max())
}

func TestDiscrete_SingleValueHasZeroStdDev(t *testing.T) {
	var d Discrete
	d.Record(42)
	assert.Equal(t, 0.0, d.StdDev())
	assert.Equal(t, 42.0, d.Mean())
}

func TestDiscrete_HistogramDoublesOnOverflow(t *testing.T) {
	var d Discrete
	d.Record(1)
	_, width1 := d.Histogram()
	assert.Equal(t, 1.0, width1)

	// defaultBins * width1 == 128; pushing a value well past that must
	// force the bin width to double (possibly more than once).
	d.Record(500)
	bins, width2 := d.Histogram()
	assert.Greater(t, width2, width1)

	var total uint64
	for _, c := range bins {
		total += c
	}
	assert.Equal(t, uint64(2), total)
}

func TestDiscrete_HistogramNeverPanicsOnLargeValues(t *testing.T) {
	var d Discrete
	for i := 0; i < 1000; i++ {
		d.Record(float64(i) * float64(i))
	}
	bins, width := d.Histogram()
	assert.Greater(t, width, 0.0)
	var total uint64
	for _, c := range bins {
		total += c
	}
	assert.Equal(t, uint64(1000), total)
}

func TestDiscrete_NegativeValuesClampIntoFirstBin(t *testing.T) {
	var d Discrete
	d.Record(-5)
	bins, _ := d.Histogram()
	assert.Equal(t, uint64(1), bins[0])
}

func TestDiscrete_CVZeroWhenMeanZero(t *testing.T) {
	var d Discrete
	d.Record(0)
	d.Record(0)
	assert.Equal(t, 0.0, d.CV())
}

func TestDiscrete_WelfordMatchesNaiveOnLargeOffsetData(t *testing.T) {
	var d Discrete
	n := 10000
	offset := 1e9
	for i := 0; i < n; i++ {
		d.Record(offset + float64(i%7))
	}
	// mean of 0..6 repeating is 3.0
	assert.InDelta(t, offset+3.0, d.Mean(), 1e-3)
	assert.False(t, math.IsNaN(d.StdDev()))
}

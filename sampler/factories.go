package sampler

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"golang.org/x/exp/slices"
)

// Exponential returns a sampler drawing from an exponential distribution
// with the given mean.
func Exponential(rng *rand.Rand, mean float64) Sampler {
	if mean <= 0 {
		panic(fmt.Errorf("sampler: exponential mean must be positive, got %v", mean))
	}
	rate := 1 / mean
	return Func(func() float64 {
		return rng.ExpFloat64() / rate
	})
}

// LogNormal returns a sampler drawing from a log-normal distribution
// parameterized directly by (mean, sd) of the distribution itself, rather
// than the underlying normal's (mu, sigma); the conversion happens
// internally.
func LogNormal(rng *rand.Rand, mean, sd float64) Sampler {
	if mean <= 0 || sd < 0 {
		panic(fmt.Errorf("sampler: log-normal requires mean>0, sd>=0, got mean=%v sd=%v", mean, sd))
	}
	variance := sd * sd
	sigma2 := math.Log(1 + variance/(mean*mean))
	sigma := math.Sqrt(sigma2)
	mu := math.Log(mean) - sigma2/2
	return Func(func() float64 {
		return math.Exp(mu + sigma*rng.NormFloat64())
	})
}

// Gamma returns a sampler drawing from a gamma distribution parameterized
// directly by (mean, sd), converted internally to (shape, scale) via
// shape = (mean/sd)^2, scale = sd^2/mean. Uses the Marsaglia-Tsang method
// for shape >= 1, and Ahrens-Dieter boosting for shape < 1.
func Gamma(rng *rand.Rand, mean, sd float64) Sampler {
	if mean <= 0 || sd <= 0 {
		panic(fmt.Errorf("sampler: gamma requires mean>0, sd>0, got mean=%v sd=%v", mean, sd))
	}
	shape := (mean / sd) * (mean / sd)
	scale := (sd * sd) / mean
	return Func(func() float64 {
		return gammaVariate(rng, shape) * scale
	})
}

// gammaVariate draws from a standard gamma distribution (scale=1) with the
// given shape, using the Marsaglia-Tsang method.
func gammaVariate(rng *rand.Rand, shape float64) float64 {
	if shape < 1 {
		// Ahrens-Dieter boost: Gamma(shape) = Gamma(shape+1) * U^(1/shape)
		u := rng.Float64()
		return gammaVariate(rng, shape+1) * math.Pow(u, 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1 / math.Sqrt(9*d)
	for {
		var x, v float64
		for {
			x = rng.NormFloat64()
			v = 1 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := rng.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}

// Uniform returns a sampler drawing uniformly from [a, b).
func Uniform(rng *rand.Rand, a, b float64) Sampler {
	if b < a {
		panic(fmt.Errorf("sampler: uniform requires a<=b, got a=%v b=%v", a, b))
	}
	return Func(func() float64 {
		return a + (b-a)*rng.Float64()
	})
}

// Triangular returns a sampler drawing from a triangular distribution with
// lower limit a, mode m and upper limit b.
func Triangular(rng *rand.Rand, a, m, b float64) Sampler {
	if !(a <= m && m <= b) || a == b {
		panic(fmt.Errorf("sampler: triangular requires a<=m<=b and a<b, got a=%v m=%v b=%v", a, m, b))
	}
	fc := (m - a) / (b - a)
	return Func(func() float64 {
		u := rng.Float64()
		if u < fc {
			return a + math.Sqrt(u*(b-a)*(m-a))
		}
		return b - math.Sqrt((1-u)*(b-a)*(b-m))
	})
}

// Deterministic returns a sampler that always produces v.
func Deterministic(v float64) Sampler {
	if v < 0 {
		panic(fmt.Errorf("sampler: deterministic value must be non-negative, got %v", v))
	}
	return Func(func() float64 { return v })
}

// Empirical returns a sampler drawing from a discrete value->rate mapping,
// normalized internally to a cumulative probability vector. Values are
// sorted ascending so the mapping's iteration order never affects
// reproducibility.
func Empirical(rng *rand.Rand, valueRates map[float64]float64) Sampler {
	if len(valueRates) == 0 {
		panic(fmt.Errorf("sampler: empirical requires at least one value"))
	}

	values := make([]float64, 0, len(valueRates))
	var total float64
	for v, rate := range valueRates {
		if rate < 0 {
			panic(fmt.Errorf("sampler: empirical rate must be non-negative, got %v for value %v", rate, v))
		}
		values = append(values, v)
		total += rate
	}
	if total <= 0 {
		panic(fmt.Errorf("sampler: empirical rates must sum to a positive value"))
	}
	slices.Sort(values)

	cumulative := make([]float64, len(values))
	var acc float64
	for i, v := range values {
		acc += valueRates[v] / total
		cumulative[i] = acc
	}
	// Guard against floating point drift so the last bucket always reaches 1.
	cumulative[len(cumulative)-1] = 1

	return Func(func() float64 {
		u := rng.Float64()
		idx := sort.SearchFloat64s(cumulative, u)
		if idx >= len(values) {
			idx = len(values) - 1
		}
		return values[idx]
	})
}

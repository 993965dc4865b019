package sampler

import (
	"fmt"
	"math/rand"
)

// Kind enumerates the distribution families a Descriptor can build.
type Kind string

const (
	KindExponential   Kind = "exponential"
	KindLogNormal     Kind = "lognormal"
	KindGamma         Kind = "gamma"
	KindUniform       Kind = "uniform"
	KindTriangular    Kind = "triangular"
	KindDeterministic Kind = "deterministic"
	KindEmpirical     Kind = "empirical"
)

// Descriptor is a serializable, string-and-number-only description of a
// Sampler, so a network configuration can be built once and handed to many
// independently-seeded parameter study runs without sharing the *rand.Rand
// (or any other non-serializable state) across them. Build materializes
// the concrete Sampler lazily, against the run's own rng.
type Descriptor struct {
	Kind      Kind
	Params    []float64
	Empirical map[float64]float64
}

// ExponentialDescriptor returns a Descriptor for Exponential(mean).
func ExponentialDescriptor(mean float64) Descriptor {
	return Descriptor{Kind: KindExponential, Params: []float64{mean}}
}

// LogNormalDescriptor returns a Descriptor for LogNormal(mean, sd).
func LogNormalDescriptor(mean, sd float64) Descriptor {
	return Descriptor{Kind: KindLogNormal, Params: []float64{mean, sd}}
}

// GammaDescriptor returns a Descriptor for Gamma(mean, sd).
func GammaDescriptor(mean, sd float64) Descriptor {
	return Descriptor{Kind: KindGamma, Params: []float64{mean, sd}}
}

// UniformDescriptor returns a Descriptor for Uniform(a, b).
func UniformDescriptor(a, b float64) Descriptor {
	return Descriptor{Kind: KindUniform, Params: []float64{a, b}}
}

// TriangularDescriptor returns a Descriptor for Triangular(a, m, b).
func TriangularDescriptor(a, m, b float64) Descriptor {
	return Descriptor{Kind: KindTriangular, Params: []float64{a, m, b}}
}

// DeterministicDescriptor returns a Descriptor for Deterministic(v).
func DeterministicDescriptor(v float64) Descriptor {
	return Descriptor{Kind: KindDeterministic, Params: []float64{v}}
}

// EmpiricalDescriptor returns a Descriptor for Empirical(valueRates).
func EmpiricalDescriptor(valueRates map[float64]float64) Descriptor {
	cp := make(map[float64]float64, len(valueRates))
	for k, v := range valueRates {
		cp[k] = v
	}
	return Descriptor{Kind: KindEmpirical, Empirical: cp}
}

// Build materializes the Sampler this Descriptor describes, against rng.
// Each call with a fresh rng produces an independent Sampler, even for
// descriptors built once and reused across many parameter study runs.
func (d Descriptor) Build(rng *rand.Rand) (Sampler, error) {
	switch d.Kind {
	case KindExponential:
		if len(d.Params) != 1 {
			return nil, fmt.Errorf("sampler: exponential descriptor wants 1 param, got %d", len(d.Params))
		}
		return Exponential(rng, d.Params[0]), nil
	case KindLogNormal:
		if len(d.Params) != 2 {
			return nil, fmt.Errorf("sampler: lognormal descriptor wants 2 params, got %d", len(d.Params))
		}
		return LogNormal(rng, d.Params[0], d.Params[1]), nil
	case KindGamma:
		if len(d.Params) != 2 {
			return nil, fmt.Errorf("sampler: gamma descriptor wants 2 params, got %d", len(d.Params))
		}
		return Gamma(rng, d.Params[0], d.Params[1]), nil
	case KindUniform:
		if len(d.Params) != 2 {
			return nil, fmt.Errorf("sampler: uniform descriptor wants 2 params, got %d", len(d.Params))
		}
		return Uniform(rng, d.Params[0], d.Params[1]), nil
	case KindTriangular:
		if len(d.Params) != 3 {
			return nil, fmt.Errorf("sampler: triangular descriptor wants 3 params, got %d", len(d.Params))
		}
		return Triangular(rng, d.Params[0], d.Params[1], d.Params[2]), nil
	case KindDeterministic:
		if len(d.Params) != 1 {
			return nil, fmt.Errorf("sampler: deterministic descriptor wants 1 param, got %d", len(d.Params))
		}
		return Deterministic(d.Params[0]), nil
	case KindEmpirical:
		if len(d.Empirical) == 0 {
			return nil, fmt.Errorf("sampler: empirical descriptor has no values")
		}
		return Empirical(rng, d.Empirical), nil
	default:
		return nil, fmt.Errorf("sampler: unknown descriptor kind %q", d.Kind)
	}
}

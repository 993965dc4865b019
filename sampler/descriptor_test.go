package sampler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptor_BuildRoundTrip(t *testing.T) {
	cases := []Descriptor{
		ExponentialDescriptor(5),
		LogNormalDescriptor(5, 2),
		GammaDescriptor(4, 2),
		UniformDescriptor(1, 9),
		TriangularDescriptor(1, 3, 9),
		DeterministicDescriptor(6),
		EmpiricalDescriptor(map[float64]float64{1: 1, 2: 1}),
	}
	for _, d := range cases {
		rng := rand.New(rand.NewSource(42))
		s, err := d.Build(rng)
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.GreaterOrEqual(t, s.Next(), 0.0)
	}
}

func TestDescriptor_IndependentRunsDoNotShareState(t *testing.T) {
	d := ExponentialDescriptor(10)
	s1, err := d.Build(rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	s2, err := d.Build(rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		assert.Equal(t, s1.Next(), s2.Next())
	}
}

func TestDescriptor_WrongParamCount(t *testing.T) {
	d := Descriptor{Kind: KindExponential, Params: []float64{1, 2}}
	_, err := d.Build(rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestDescriptor_UnknownKind(t *testing.T) {
	d := Descriptor{Kind: "bogus"}
	_, err := d.Build(rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestDescriptor_EmpiricalCopiesMap(t *testing.T) {
	src := map[float64]float64{1: 1}
	d := EmpiricalDescriptor(src)
	src[2] = 5
	assert.Len(t, d.Empirical, 1)
}

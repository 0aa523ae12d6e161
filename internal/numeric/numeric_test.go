package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGamma(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{1, 1},
		{5, 24},
		{0.5, math.Sqrt(math.Pi)},
		{-0.5, -2 * math.Sqrt(math.Pi)},
		{10, 362880},
	}
	for _, tc := range cases {
		got, ok := Gamma(tc.in)
		require.True(t, ok, "gamma(%g)", tc.in)
		assert.InEpsilon(t, tc.want, got, 1e-10, "gamma(%g)", tc.in)
	}

	for _, pole := range []float64{0, -1, -2, -10} {
		_, ok := Gamma(pole)
		assert.False(t, ok, "gamma(%g) is a pole", pole)
	}
}

func TestZeta(t *testing.T) {
	got, ok := Zeta(2)
	require.True(t, ok)
	assert.InEpsilon(t, math.Pi*math.Pi/6, got, 1e-10)

	got, ok = Zeta(4)
	require.True(t, ok)
	assert.InEpsilon(t, math.Pow(math.Pi, 4)/90, got, 1e-10)

	for _, bad := range []float64{1, 0.5, -3} {
		_, ok := Zeta(bad)
		assert.False(t, ok, "zeta(%g)", bad)
	}
}

func TestRootScanFindsSineRoots(t *testing.T) {
	cfg := ScanConfig{SearchRange: 4, Tolerance: 1e-10, MaxIterations: 100, Seeds: 100}
	roots := RootScan(math.Sin, math.Cos, cfg)

	require.NotEmpty(t, roots)
	for _, r := range roots {
		assert.InDelta(t, 0, math.Sin(r), 1e-9)
	}
	// Roots come back sorted.
	for i := 1; i < len(roots); i++ {
		assert.Less(t, roots[i-1], roots[i])
	}
}

func TestRootScanHandlesNaN(t *testing.T) {
	f := func(x float64) float64 {
		if x < 0 {
			return math.NaN()
		}
		return x - 2
	}
	df := func(x float64) float64 { return 1 }

	roots := RootScan(f, df, ScanConfig{SearchRange: 10, Seeds: 50})
	require.NotEmpty(t, roots)
	assert.InDelta(t, 2, roots[0], 1e-8)
}

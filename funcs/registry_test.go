package funcs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvix/solvix/expr"
)

func TestRegisterRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	r.Register(&Properties{Name: "f", Arity: 1})

	assert.PanicsWithValue(t, `solvix: function "f" registered twice`, func() {
		r.Register(&Properties{Name: "f", Arity: 1})
	})
	assert.Panics(t, func() { r.Register(&Properties{Name: "", Arity: 1}) })
}

func TestLookupIsConstantTimeStyle(t *testing.T) {
	r := Builtin()

	p, ok := r.Lookup("gamma")
	require.True(t, ok)
	assert.Equal(t, 1, p.Arity)
	assert.True(t, p.Transcendental)

	_, ok = r.Lookup("nonexistent")
	assert.False(t, ok)
}

func TestGammaExactAtPositiveIntegers(t *testing.T) {
	r := Builtin()

	ev := r.Evaluate("gamma", expr.N(5))
	require.Equal(t, Exact, ev.Kind)
	assert.True(t, ev.Exact.Equal(expr.N(24)))

	ev = r.Evaluate("gamma", expr.N(1))
	require.Equal(t, Exact, ev.Kind)
	assert.True(t, ev.Exact.Equal(expr.N(1)))
}

func TestGammaHalfIsSqrtPi(t *testing.T) {
	r := Builtin()

	ev := r.Evaluate("gamma", expr.F(1, 2))
	require.Equal(t, Exact, ev.Kind)
	assert.True(t, ev.Exact.Equal(expr.SqrtOf(expr.Pi())))

	// The closed form still evaluates numerically.
	n, ok := ev.Exact.Eval()
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt(math.Pi), n.Float64(), 1e-9)
}

func TestGammaNumericFallback(t *testing.T) {
	r := Builtin()

	ev := r.Evaluate("gamma", expr.F(7, 2))
	require.Equal(t, Numeric, ev.Kind)
	assert.InDelta(t, 3.3233509704478426, ev.Value, 1e-9)
}

func TestGammaPolesAreUndefined(t *testing.T) {
	r := Builtin()

	for _, arg := range []*expr.Num{expr.N(0), expr.N(-1), expr.N(-3)} {
		ev := r.Evaluate("gamma", arg)
		assert.Equal(t, Undefined, ev.Kind, "gamma(%s)", arg)
		assert.True(t, math.IsNaN(ev.Value), "gamma(%s) carries the NaN sentinel", arg)
	}
}

func TestZetaSpecialValues(t *testing.T) {
	r := Builtin()

	ev := r.Evaluate("zeta", expr.N(2))
	require.Equal(t, Exact, ev.Kind)
	want := expr.MulOf(expr.F(1, 6), expr.PowOf(expr.Pi(), expr.N(2)))
	assert.True(t, ev.Exact.Equal(want))

	n, ok := ev.Exact.Eval()
	require.True(t, ok)
	assert.InDelta(t, math.Pi*math.Pi/6, n.Float64(), 1e-9)

	ev = r.Evaluate("zeta", expr.N(-1))
	require.Equal(t, Exact, ev.Kind)
	assert.True(t, ev.Exact.Equal(expr.F(-1, 12)))

	// The pole at 1 is undefined, not an error.
	ev = r.Evaluate("zeta", expr.N(1))
	assert.Equal(t, Undefined, ev.Kind)
}

func TestZetaNumeric(t *testing.T) {
	r := Builtin()

	ev := r.Evaluate("zeta", expr.N(3))
	require.Equal(t, Numeric, ev.Kind)
	assert.InDelta(t, 1.2020569031595943, ev.Value, 1e-9)
}

func TestBetaSymmetry(t *testing.T) {
	r := Builtin()

	ab := r.Evaluate("beta", expr.N(3), expr.N(4))
	ba := r.Evaluate("beta", expr.N(4), expr.N(3))
	require.Equal(t, Exact, ab.Kind)
	require.Equal(t, Exact, ba.Kind)
	assert.True(t, ab.Exact.Equal(ba.Exact))
	assert.True(t, ab.Exact.Equal(expr.F(1, 60)))
}

func TestBetaEvaluatesThroughGamma(t *testing.T) {
	r := Builtin()

	ev := r.Evaluate("beta", expr.NFloat(0.5), expr.NFloat(0.5))
	require.Equal(t, Numeric, ev.Kind)
	assert.InDelta(t, math.Pi, ev.Value, 1e-9)
}

func TestFactorial(t *testing.T) {
	r := Builtin()

	ev := r.Evaluate("factorial", expr.N(6))
	require.Equal(t, Exact, ev.Kind)
	assert.True(t, ev.Exact.Equal(expr.N(720)))

	ev = r.Evaluate("factorial", expr.N(0))
	require.Equal(t, Exact, ev.Kind)
	assert.True(t, ev.Exact.Equal(expr.N(1)))

	// Non-integer arguments route through gamma(x+1).
	ev = r.Evaluate("factorial", expr.F(1, 2))
	require.Equal(t, Numeric, ev.Kind)
	assert.InDelta(t, math.Sqrt(math.Pi)/2, ev.Value, 1e-9)
}

func TestSymbolicArgumentsStayUnevaluated(t *testing.T) {
	r := Builtin()

	ev := r.Evaluate("gamma", expr.S("x"))
	assert.Equal(t, Unevaluated, ev.Kind)

	// Wrong arity and unknown names are unevaluated, never undefined.
	ev = r.Evaluate("gamma", expr.N(1), expr.N(2))
	assert.Equal(t, Unevaluated, ev.Kind)
	ev = r.Evaluate("frobnicate", expr.N(1))
	assert.Equal(t, Unevaluated, ev.Kind)
}

func TestElementarySpecialValues(t *testing.T) {
	r := Builtin()

	ev := r.Evaluate("sin", expr.Pi())
	require.Equal(t, Exact, ev.Kind)
	assert.True(t, ev.Exact.Equal(expr.N(0)))

	ev = r.Evaluate("ln", expr.E())
	require.Equal(t, Exact, ev.Kind)
	assert.True(t, ev.Exact.Equal(expr.N(1)))

	// Out of domain is undefined.
	ev = r.Evaluate("ln", expr.N(-1))
	assert.Equal(t, Undefined, ev.Kind)

	ev = r.Evaluate("asin", expr.N(2))
	assert.Equal(t, Undefined, ev.Kind)
}

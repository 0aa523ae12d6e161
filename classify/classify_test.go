package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvix/solvix/expr"
	"github.com/solvix/solvix/funcs"
)

func newClassifier() *Classifier { return New(funcs.Builtin()) }

func TestPolynomialDegrees(t *testing.T) {
	c := newClassifier()
	x := expr.S("x")

	cases := []struct {
		eq   *expr.Equation
		want EquationType
	}{
		{expr.Eq(expr.N(5), expr.N(5)), Constant},
		{expr.Eq(expr.AddOf(expr.MulOf(expr.N(2), x), expr.N(4)), expr.N(0)), Linear},
		{expr.Eq(expr.AddOf(expr.PowOf(x, expr.N(2)), expr.MulOf(expr.N(-5), x), expr.N(6)), expr.N(0)), Quadratic},
		{expr.Eq(expr.PowOf(x, expr.N(3)), expr.N(8)), Cubic},
		{expr.Eq(expr.AddOf(expr.PowOf(x, expr.N(4)), expr.MulOf(expr.N(-5), expr.PowOf(x, expr.N(2))), expr.N(4)), expr.N(0)), Quartic},
		{expr.Eq(expr.PowOf(x, expr.N(5)), expr.N(1)), Unknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.Classify(tc.eq, x), "equation %s", tc.eq)
	}
}

func TestExpandedFormsClassifyByTrueDegree(t *testing.T) {
	c := newClassifier()
	x := expr.S("x")

	// (x+1)^2 - x^2 is linear after expansion.
	eq := expr.Eq(expr.PowOf(expr.AddOf(x, expr.N(1)), expr.N(2)), expr.PowOf(x, expr.N(2)))
	assert.Equal(t, Linear, c.Classify(eq, x))
}

func TestTranscendentalComesFromRegisteredProperties(t *testing.T) {
	c := newClassifier()
	x := expr.S("x")

	eq := expr.Eq(expr.SinOf(x), expr.F(1, 2))
	assert.Equal(t, Transcendental, c.Classify(eq, x))

	eq = expr.Eq(expr.GammaOf(x), expr.N(24))
	assert.Equal(t, Transcendental, c.Classify(eq, x))

	// An unregistered function name carries no properties, so nothing is
	// assumed from its name.
	eq = expr.Eq(expr.FuncOf("gammaish", x), expr.N(0))
	assert.Equal(t, Unknown, c.Classify(eq, x))

	// The variable in the exponent of a constant base is the structural
	// exponential form.
	eq = expr.Eq(expr.PowOf(expr.N(2), x), expr.N(5))
	assert.Equal(t, Transcendental, c.Classify(eq, x))

	// A transcendental function of something else leaves a polynomial
	// classification intact.
	eq = expr.Eq(expr.AddOf(x, expr.SinOf(expr.S("a"))), expr.N(0))
	assert.Equal(t, Linear, c.Classify(eq, x))
}

func TestDerivativeMarkersWinOverDegree(t *testing.T) {
	c := newClassifier()
	y := expr.S("y")

	// dy/dx = y looks linear in y, but the marker decides first.
	eq := expr.Eq(expr.DerivOf(y, "x"), y)
	assert.Equal(t, OrdinaryDifferential, c.Classify(eq, y))

	// Second order in a single independent variable is still ordinary.
	eq = expr.Eq(expr.DerivOf(y, "x", "x"), expr.S("x"))
	assert.Equal(t, OrdinaryDifferential, c.Classify(eq, y))

	// Two distinct independent variables make it partial.
	u := expr.S("u")
	eq = expr.Eq(expr.AddOf(expr.DerivOf(u, "x"), expr.DerivOf(u, "y")), expr.N(0))
	assert.Equal(t, PartialDifferential, c.Classify(eq, u))
}

func TestMatrixForm(t *testing.T) {
	c := newClassifier()
	A := expr.SymOf("A", expr.MatrixKind)
	X := expr.SymOf("X", expr.MatrixKind)
	B := expr.SymOf("B", expr.MatrixKind)

	assert.Equal(t, Matrix, c.Classify(expr.Eq(expr.MulOf(A, X), B), X))
	assert.Equal(t, Matrix, c.Classify(expr.Eq(expr.MulOf(X, A), B), X))
	assert.Equal(t, Matrix, c.Classify(expr.Eq(expr.MulOf(expr.PowOf(A, expr.N(-1)), X), B), X))

	// Scalar symbols in the same shape are just a product equation.
	a := expr.S("a")
	x := expr.S("x")
	b := expr.S("b")
	got := c.Classify(expr.Eq(expr.MulOf(a, x), b), x)
	assert.NotEqual(t, Matrix, got)
}

func TestSingleEquationMultipleUnknowns(t *testing.T) {
	c := newClassifier()
	x, y := expr.S("x"), expr.S("y")

	// Polynomial in x even with a second symbol present.
	eq := expr.Eq(expr.AddOf(x, y), expr.N(3))
	assert.Equal(t, Linear, c.Classify(eq, x))

	// Non-polynomial in x with several unknowns and no transcendental
	// application falls through to the general multivariable bucket.
	eq = expr.Eq(expr.MulOf(y, expr.PowOf(x, expr.F(1, 2))), expr.N(1))
	assert.Equal(t, GeneralSystem, c.Classify(eq, x))
}

func TestClassifySystem(t *testing.T) {
	c := newClassifier()
	x, y := expr.S("x"), expr.S("y")

	linear := []*expr.Equation{
		expr.Eq(expr.AddOf(x, y), expr.N(3)),
		expr.Eq(expr.AddOf(x, expr.MulOf(expr.N(-1), y)), expr.N(1)),
	}
	assert.Equal(t, PolynomialSystem, c.ClassifySystem(linear, []*expr.Sym{x, y}))

	mixed := []*expr.Equation{
		expr.Eq(expr.AddOf(expr.SinOf(x), y), expr.N(1)),
		expr.Eq(x, expr.N(2)),
	}
	assert.Equal(t, GeneralSystem, c.ClassifySystem(mixed, []*expr.Sym{x, y}))
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := newClassifier()
	x := expr.S("x")
	eq := expr.Eq(expr.AddOf(expr.PowOf(x, expr.N(2)), expr.SinOf(expr.S("k"))), expr.N(0))

	first := c.Classify(eq, x)
	for i := 0; i < 50; i++ {
		require.Equal(t, first, c.Classify(eq, x))
	}
}

package solve

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/solvix/solvix/explain"
	"github.com/solvix/solvix/expr"
)

// The rendered trail is part of the user-facing surface; pin it.
func TestQuadraticTrailGolden(t *testing.T) {
	e := newEngine()
	x := expr.S("x")
	eq := expr.Eq(
		expr.AddOf(expr.PowOf(x, expr.N(2)), expr.MulOf(expr.N(-5), x), expr.N(6)),
		expr.N(0),
	)
	trail := explain.New()

	res := e.SolveWithExplanation(eq, x, trail)
	require.Equal(t, Solutions, res.Kind)

	g := goldie.New(t)
	g.Assert(t, "quadratic_trail", []byte(trail.Render()))
}

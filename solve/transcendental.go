package solve

import (
	"fmt"
	"math"

	"github.com/solvix/solvix/explain"
	"github.com/solvix/solvix/expr"
	"github.com/solvix/solvix/internal/numeric"
)

// solveTranscendental locates real roots numerically. An empty scan is
// reported as Partial, never NoSolution: failing to find a root proves
// nothing.
func (e *Engine) solveTranscendental(eq *expr.Equation, v *expr.Sym, trail *explain.Explanation) Result {
	residual := eq.Residual()
	for name := range expr.FreeSymbols(residual) {
		if name != v.Name() {
			trail.Add("Stopped", "parameter "+name+" prevents numeric evaluation")
			return PartialWith("parameters present: "+residual.String(), residual)
		}
	}

	f := func(x float64) float64 {
		r, ok := e.evalNumeric(residual, v.Name(), x)
		if !ok {
			return math.NaN()
		}
		return r
	}
	// Central difference keeps the search going when the symbolic
	// derivative introduces functions the registry cannot evaluate.
	df := func(x float64) float64 {
		const h = 1e-7
		return (f(x+h) - f(x-h)) / (2 * h)
	}
	if sym, ok := symbolicDerivative(residual, v.Name()); ok {
		df = func(x float64) float64 {
			r, ok := e.evalNumeric(sym, v.Name(), x)
			if !ok {
				return math.NaN()
			}
			return r
		}
	}

	trail.Add("Started root scan",
		fmt.Sprintf("Newton's method over [%g, %g]", -e.scan.SearchRange, e.scan.SearchRange))
	roots := numeric.RootScan(f, df, e.scan)
	if len(roots) == 0 {
		trail.Add("Search finished", "no roots located; this is not a proof of nonexistence")
		return PartialWith("no roots located in the search range", residual)
	}

	values := make([]expr.Expr, len(roots))
	for i, r := range roots {
		values[i] = snapNum(r, e.scan.Tolerance*100)
	}
	trail.Add("Search finished", fmt.Sprintf("%d root(s) located", len(roots)))
	return Found(values...)
}

// symbolicDerivative differentiates e and reports whether the result is
// free of unresolved derivative markers.
func symbolicDerivative(e expr.Expr, varName string) (expr.Expr, bool) {
	d := e.Diff(varName).Simplify()
	if len(expr.DerivativeMarkers(d)) > 0 {
		return nil, false
	}
	return d, true
}

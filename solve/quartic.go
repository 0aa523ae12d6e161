package solve

import (
	"fmt"
	"math"

	"github.com/solvix/solvix/explain"
	"github.com/solvix/solvix/expr"
	"github.com/solvix/solvix/internal/numeric"
)

// solveQuartic handles degree-four equations. The biquadratic shape
// (no odd-degree terms) is solved exactly through a quadratic in x^2;
// everything else is located numerically.
func (e *Engine) solveQuartic(eq *expr.Equation, v *expr.Sym, trail *explain.Explanation) Result {
	cs := expr.PolyCoeffsOf(eq.Residual(), v.Name())
	coeffs, ok := numericCoeffs(cs, 4)
	if !ok {
		trail.Add("Stopped", "coefficients are symbolic")
		return PartialWith("quartic with symbolic coefficients", expr.Collect(eq.Residual(), v.Name()))
	}

	if coeffs[3].IsZero() && coeffs[1].IsZero() {
		return solveBiquadratic(coeffs, v, trail)
	}

	trail.Add("Chose numeric search", "quartic has odd-degree terms, scanning for real roots")
	f := func(x float64) float64 { return evalPolyFloat(coeffs, x) }
	df := func(x float64) float64 { return evalPolyDerivFloat(coeffs, x) }
	roots := numeric.RootScan(f, df, e.scan)
	if len(roots) == 0 {
		trail.Add("Search finished", "no real roots located in the search range")
		return PartialWith("no real roots located in the search range", eq.Residual())
	}
	values := make([]expr.Expr, len(roots))
	for i, r := range roots {
		values[i] = snapNum(r, e.scan.Tolerance*100)
	}
	// Every real root lies within the Cauchy bound; when the bound
	// exceeds the scanned range the hits cannot be claimed complete.
	if bound := cauchyBound(coeffs); bound > e.scan.SearchRange {
		trail.Add("Checked root bound",
			fmt.Sprintf("real roots may reach |%s| ≈ %.4g, beyond the scanned range", v.Name(), bound))
		return PartialWith("real roots may lie outside the search range", values...)
	}
	trail.Add("Search finished", Result{Kind: Solutions, Values: values}.String())
	return Found(values...)
}

// cauchyBound returns 1 + max|aᵢ/aₙ|, an upper bound on the magnitude of
// every real root of the polynomial with the given coefficients.
func cauchyBound(coeffs []*expr.Num) float64 {
	n := len(coeffs) - 1
	lead := math.Abs(coeffs[n].Float64())
	maxRatio := 0.0
	for i := 0; i < n; i++ {
		if r := math.Abs(coeffs[i].Float64()) / lead; r > maxRatio {
			maxRatio = r
		}
	}
	return 1 + maxRatio
}

// solveBiquadratic solves a*x^4 + c*x^2 + e = 0 exactly by substituting
// u = x^2.
func solveBiquadratic(coeffs []*expr.Num, v *expr.Sym, trail *explain.Explanation) Result {
	trail.Add("Substituted", "u = "+v.Name()+"^2 turns the quartic into a quadratic in u")
	uRoots := quadraticRoots(coeffs[4], coeffs[2], coeffs[0])
	if len(uRoots) == 0 {
		trail.Add("Checked sign", "the quadratic in u has no real roots")
		return None("no real solutions")
	}

	var values []expr.Expr
	for _, u := range uRoots {
		un, isNum := u.(*expr.Num)
		if !isNum {
			// Irrational u: keep the back-substitution symbolic, skipping
			// roots that evaluate negative.
			if approx, ok := u.Eval(); ok && approx.IsNegative() {
				continue
			}
			values = append(values, neg(expr.SqrtOf(u)), expr.SqrtOf(u))
			continue
		}
		if un.IsNegative() {
			continue
		}
		if un.IsZero() {
			values = append(values, expr.N(0))
			continue
		}
		var root expr.Expr = expr.SqrtOf(un)
		if exact, ok := ratSqrt(un); ok {
			root = exact
		}
		values = append(values, neg(root), root)
	}
	if len(values) == 0 {
		trail.Add("Back-substituted", "every root in u is negative, so x^2 = u has no real solution")
		return None("no real solutions")
	}
	trail.Add("Back-substituted", v.Name()+" = ±√u for each nonnegative u")
	return Found(sortAscending(dedupe(values)...)...)
}

func evalPolyFloat(coeffs []*expr.Num, x float64) float64 {
	acc := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*x + coeffs[i].Float64()
	}
	return acc
}

func evalPolyDerivFloat(coeffs []*expr.Num, x float64) float64 {
	acc := 0.0
	for i := len(coeffs) - 1; i >= 1; i-- {
		acc = acc*x + float64(i)*coeffs[i].Float64()
	}
	return acc
}

package solve

import (
	"strconv"

	"github.com/solvix/solvix/explain"
	"github.com/solvix/solvix/expr"
)

// solveODE handles two first-order families in closed form: directly
// integrable equations y' = f(x) (any order, by repeated integration) and
// linear homogeneous equations y' = k(x)·y. Everything else is reported
// Unsupported with a diagnostic.
func solveODE(eq *expr.Equation, v *expr.Sym, trail *explain.Explanation) Result {
	d, rhs, ok := isolateDerivative(eq)
	if !ok {
		trail.Add("Stopped", "could not isolate the derivative on one side")
		return NotSupported("rewrite the equation with the derivative isolated")
	}
	fn, isSym := d.Fn().(*expr.Sym)
	if !isSym || fn.Name() != v.Name() {
		trail.Add("Stopped", "derivative is not taken of the unknown "+v.Name())
		return NotSupported("derivative of " + d.Fn().String() + ", expected " + v.Name())
	}
	indep := d.Wrt()[0]
	order := len(d.Wrt())
	trail.Add("Normalized", d.String()+" = "+rhs.String())

	if !expr.Contains(rhs, v.Name()) {
		return integrateDirect(rhs, v, indep, order, trail)
	}
	if order == 1 {
		if k, ok := linearHomogeneousRate(rhs, v); ok {
			return solveLinearHomogeneous(k, v, indep, trail)
		}
	}
	trail.Add("Stopped", "right-hand side couples "+v.Name()+" in an unsupported way")
	return NotSupported("only directly integrable and linear homogeneous first-order forms are solved")
}

// isolateDerivative finds the single derivative marker and rewrites the
// equation as marker = rest. It tolerates the forms D = f, f = D, and
// c·D + rest = 0.
func isolateDerivative(eq *expr.Equation) (*expr.Derivative, expr.Expr, bool) {
	if d, ok := eq.LHS.Simplify().(*expr.Derivative); ok && len(expr.DerivativeMarkers(eq.RHS)) == 0 {
		return d, eq.RHS.Simplify(), true
	}
	if d, ok := eq.RHS.Simplify().(*expr.Derivative); ok && len(expr.DerivativeMarkers(eq.LHS)) == 0 {
		return d, eq.LHS.Simplify(), true
	}

	residual := eq.Residual()
	terms := []expr.Expr{residual}
	if sum, ok := residual.(*expr.Add); ok {
		terms = sum.Terms()
	}
	var marker *expr.Derivative
	var coeff expr.Expr = expr.N(1)
	var rest []expr.Expr
	for _, t := range terms {
		c, d := derivativeTerm(t)
		if d == nil {
			if len(expr.DerivativeMarkers(t)) > 0 {
				return nil, nil, false
			}
			rest = append(rest, t)
			continue
		}
		if marker != nil {
			return nil, nil, false
		}
		marker, coeff = d, c
	}
	if marker == nil {
		return nil, nil, false
	}
	rhs := div(neg(expr.AddOf(rest...)), coeff)
	return marker, rhs.Simplify(), true
}

// derivativeTerm recognizes D and c·D shapes, returning the coefficient.
func derivativeTerm(t expr.Expr) (expr.Expr, *expr.Derivative) {
	if d, ok := t.(*expr.Derivative); ok {
		return expr.N(1), d
	}
	m, ok := t.(*expr.Mul)
	if !ok {
		return nil, nil
	}
	var marker *expr.Derivative
	var coeff []expr.Expr
	for _, f := range m.Factors() {
		if d, isD := f.(*expr.Derivative); isD {
			if marker != nil {
				return nil, nil
			}
			marker = d
			continue
		}
		if len(expr.DerivativeMarkers(f)) > 0 {
			return nil, nil
		}
		coeff = append(coeff, f)
	}
	if marker == nil {
		return nil, nil
	}
	return expr.MulOf(coeff...), marker
}

// integrateDirect solves y⁽ⁿ⁾ = f(x) by integrating n times, adding one
// constant of integration per pass.
func integrateDirect(rhs expr.Expr, v *expr.Sym, indep string, order int, trail *explain.Explanation) Result {
	result := rhs
	for k := 0; k < order; k++ {
		next, ok := expr.Integrate(result, indep)
		if !ok {
			trail.Add("Stopped", "no closed-form antiderivative for "+result.String())
			return NotSupported("cannot integrate " + result.String() + " in closed form")
		}
		next = expr.AddOf(next, expr.S("C"+strconv.Itoa(k+1)))
		trail.Add("Integrated", "∫ d"+indep+" pass "+strconv.Itoa(k+1)+": "+next.String())
		result = next
	}
	trail.Add("General solution", v.Name()+" = "+result.String())
	return Found(result)
}

// linearHomogeneousRate extracts k from rhs = k·y, requiring k free of y.
func linearHomogeneousRate(rhs expr.Expr, v *expr.Sym) (expr.Expr, bool) {
	if rhs.Equal(v) {
		return expr.N(1), true
	}
	m, ok := rhs.(*expr.Mul)
	if !ok {
		return nil, false
	}
	found := false
	var rate []expr.Expr
	for _, f := range m.Factors() {
		if s, isSym := f.(*expr.Sym); isSym && s.Equal(v) {
			if found {
				return nil, false
			}
			found = true
			continue
		}
		if expr.Contains(f, v.Name()) {
			return nil, false
		}
		rate = append(rate, f)
	}
	if !found {
		return nil, false
	}
	return expr.MulOf(rate...), true
}

// solveLinearHomogeneous solves y' = k(x)·y as y = C·exp(∫k dx).
func solveLinearHomogeneous(k expr.Expr, v *expr.Sym, indep string, trail *explain.Explanation) Result {
	g, ok := expr.Integrate(k, indep)
	if !ok {
		trail.Add("Stopped", "no closed-form antiderivative for the rate "+k.String())
		return NotSupported("cannot integrate the rate " + k.String() + " in closed form")
	}
	solution := expr.MulOf(expr.S("C"), expr.ExpOf(g))
	trail.Add("Separated variables", "d"+v.Name()+"/"+v.Name()+" = ("+k.String()+") d"+indep)
	trail.Add("General solution", v.Name()+" = "+solution.String())
	return Found(solution)
}

package solve

import (
	"strconv"

	"github.com/solvix/solvix/classify"
	"github.com/solvix/solvix/explain"
	"github.com/solvix/solvix/expr"
)

// solveSystem dispatches a set of simultaneous equations. Square linear
// systems are solved exactly through the coefficient matrix; nonlinear
// polynomial systems are reduced by substitution, and whatever cannot be
// finished is returned as Partial with the reduced basis, never as
// NoSolution.
func solveSystem(eqs []*expr.Equation, vars []*expr.Sym, t classify.EquationType, trail *explain.Explanation) Result {
	switch t {
	case classify.OrdinaryDifferential, classify.PartialDifferential:
		trail.Add("Stopped", "systems of differential equations are not supported")
		return NotSupported("systems of differential equations are not supported")
	}

	if A, b, ok := linearSystem(eqs, vars); ok {
		if res, solved := solveLinearSystem(A, b, vars, trail); solved {
			return res
		}
		// Singular matrix: substitution can still prove a contradiction
		// or expose the dependency.
	}
	return reduceBySubstitution(eqs, vars, trail)
}

// linearSystem extracts the coefficient matrix and constant vector when
// every residual is degree one in every variable with no cross terms.
func linearSystem(eqs []*expr.Equation, vars []*expr.Sym) (*expr.Matrix, *expr.Matrix, bool) {
	if len(eqs) != len(vars) {
		return nil, nil, false
	}
	n := len(vars)
	A := expr.NewMatrix(n, n)
	b := expr.NewMatrix(n, 1)
	for i, eq := range eqs {
		residual := expr.Expand(eq.Residual())
		for j, v := range vars {
			if d, ok := expr.Degree(residual, v.Name()); !ok || d > 1 {
				return nil, nil, false
			}
			coeff := expr.PolyCoeffsOf(residual, v.Name()).Coeff(1)
			// A coefficient mentioning another unknown is a cross term.
			for _, other := range vars {
				if expr.Contains(coeff, other.Name()) {
					return nil, nil, false
				}
			}
			A.Set(i, j, coeff)
		}
		constant := residual
		for _, v := range vars {
			constant = constant.Sub(v.Name(), expr.N(0))
		}
		b.Set(i, 0, neg(constant.Simplify()))
	}
	return A, b, true
}

// solveLinearSystem computes x = A⁻¹·b with exact matrix arithmetic.
// solved is false when the coefficient matrix is singular.
func solveLinearSystem(A, b *expr.Matrix, vars []*expr.Sym, trail *explain.Explanation) (Result, bool) {
	trail.Add("Built coefficient matrix", A.String())
	det := A.Det().Simplify()
	trail.Add("Computed determinant", "det = "+det.String())

	inv, err := A.Inverse()
	if err != nil {
		trail.Add("Matrix is singular", "falling back to elimination")
		return Result{}, false
	}
	x := inv.MatMul(b)

	values := make([]expr.Expr, len(vars))
	for i := range vars {
		values[i] = x.Get(i, 0).Simplify()
		trail.Add("Solved", vars[i].Name()+" = "+values[i].String())
	}
	return Found(values...), true
}

// reduceBySubstitution repeatedly solves any equation that is linear in
// some variable and substitutes the result into the rest. A full reduction
// yields Solutions ordered like vars; a consistent reduction with free
// unknowns yields Infinite with the parametric relations; a stuck
// reduction yields the reduced basis as Partial.
func reduceBySubstitution(eqs []*expr.Equation, vars []*expr.Sym, trail *explain.Explanation) Result {
	residuals := make([]expr.Expr, len(eqs))
	for i, eq := range eqs {
		residuals[i] = expr.Expand(eq.Residual())
	}
	solved := map[string]expr.Expr{}

	for progress := true; progress; {
		progress = false
		for i, r := range residuals {
			if r == nil {
				continue
			}
			for _, v := range vars {
				if _, done := solved[v.Name()]; done {
					continue
				}
				d, ok := expr.Degree(r, v.Name())
				if !ok || d != 1 {
					continue
				}
				cs := expr.PolyCoeffsOf(r, v.Name())
				a := cs.Coeff(1)
				if an, isNum := a.(*expr.Num); !isNum || an.IsZero() {
					continue
				}
				value := div(neg(cs.Coeff(0)), a)
				solved[v.Name()] = value
				trail.Add("Eliminated", v.Name()+" = "+value.String())
				residuals[i] = nil
				for j, other := range residuals {
					if other != nil {
						residuals[j] = expr.Expand(other.Sub(v.Name(), value))
					}
				}
				// Earlier eliminations may mention v; resolve them now.
				for name, val := range solved {
					solved[name] = val.Sub(v.Name(), value).Simplify()
				}
				progress = true
				break
			}
			if progress {
				break
			}
		}
	}

	var leftover []expr.Expr
	for _, r := range residuals {
		if r == nil {
			continue
		}
		s := r.Simplify()
		if n, isNum := s.(*expr.Num); isNum {
			if n.IsZero() {
				continue
			}
			trail.Add("Found contradiction", s.String()+" = 0 is false")
			return None("substitution reduces an equation to " + s.String() + " = 0")
		}
		leftover = append(leftover, s)
	}
	if len(leftover) == 0 {
		if len(solved) == len(vars) {
			values := make([]expr.Expr, len(vars))
			for i, v := range vars {
				values[i] = solved[v.Name()].Simplify()
			}
			return Found(values...)
		}
		// Every residual reduced to zero with unknowns left free: the
		// system is consistent with unconstrained degrees of freedom.
		// The parametric relations (free variables stand for themselves)
		// are carried so callers can still use the reduction.
		values := make([]expr.Expr, len(vars))
		for i, v := range vars {
			if val, ok := solved[v.Name()]; ok {
				values[i] = val.Simplify()
			} else {
				values[i] = v
			}
		}
		note := "system is dependent; " + strconv.Itoa(len(vars)-len(solved)) + " unknown(s) remain free"
		trail.Add("Found dependency", note)
		return Result{Kind: Infinite, Values: values, Note: note}
	}

	note := "reduced basis with " + strconv.Itoa(len(leftover)) + " equation(s) remaining"
	trail.Add("Stopped", note)
	return PartialWith(note, leftover...)
}

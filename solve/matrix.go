package solve

import (
	"github.com/solvix/solvix/explain"
	"github.com/solvix/solvix/expr"
)

// solveMatrix isolates a noncommutative unknown in a product equation.
// Multiplication order matters: A·X = B yields X = A⁻¹·B while X·A = B
// yields X = B·A⁻¹, and the two are different answers.
func solveMatrix(eq *expr.Equation, v *expr.Sym, trail *explain.Explanation) Result {
	lhs, rhs := eq.LHS.Simplify(), eq.RHS.Simplify()
	if !expr.Contains(lhs, v.Name()) {
		lhs, rhs = rhs, lhs
	}
	if expr.Contains(rhs, v.Name()) {
		trail.Add("Stopped", "unknown appears on both sides")
		return PartialWith("unknown "+v.Name()+" appears on both sides", eq.Residual())
	}

	left, right, ok := splitAround(lhs, v)
	if !ok {
		trail.Add("Stopped", "unknown does not appear exactly once as a factor")
		return PartialWith("cannot isolate "+v.Name()+" in "+lhs.String(), eq.Residual())
	}

	// (L·X·R = B) ⇒ (X = L⁻¹·B·R⁻¹), with inverse factors applied in
	// reverse order since (L1·L2)⁻¹ = L2⁻¹·L1⁻¹.
	factors := make([]expr.Expr, 0, len(left)+len(right)+1)
	for i := len(left) - 1; i >= 0; i-- {
		factors = append(factors, expr.PowOf(left[i], expr.N(-1)))
	}
	factors = append(factors, rhs)
	for i := len(right) - 1; i >= 0; i-- {
		factors = append(factors, expr.PowOf(right[i], expr.N(-1)))
	}
	solution := expr.MulOf(factors...)
	if len(left) > 0 && len(right) > 0 {
		trail.Add("Inverted on both sides", v.Name()+" = "+solution.String())
	} else if len(right) > 0 {
		trail.Add("Inverted on the right", v.Name()+" = "+solution.String())
	} else {
		trail.Add("Inverted on the left", v.Name()+" = "+solution.String())
	}
	return Found(solution)
}

// splitAround partitions the factors of a product into those preceding and
// following the single occurrence of v.
func splitAround(e expr.Expr, v *expr.Sym) (left, right []expr.Expr, ok bool) {
	if s, isSym := e.(*expr.Sym); isSym {
		if s.Equal(v) {
			return nil, nil, true
		}
		return nil, nil, false
	}
	m, isMul := e.(*expr.Mul)
	if !isMul {
		return nil, nil, false
	}
	found := false
	for _, f := range m.Factors() {
		if s, isSym := f.(*expr.Sym); isSym && s.Equal(v) {
			if found {
				return nil, nil, false
			}
			found = true
			continue
		}
		if expr.Contains(f, v.Name()) {
			return nil, nil, false
		}
		if found {
			right = append(right, f)
		} else {
			left = append(left, f)
		}
	}
	return left, right, found
}

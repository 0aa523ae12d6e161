package solve

import (
	"math"
	"math/big"
	"sort"

	"github.com/solvix/solvix/explain"
	"github.com/solvix/solvix/expr"
)

// solveConstant handles equations with no occurrence of the variable.
func solveConstant(eq *expr.Equation, trail *explain.Explanation) Result {
	residual := eq.Residual()
	if n, ok := residual.(*expr.Num); ok {
		if n.IsZero() {
			trail.Add("Reduced both sides", "0 = 0 holds for every value")
			return AllValues()
		}
		trail.Add("Reduced both sides", residual.String()+" = 0 is false")
		return None("both sides reduce to unequal constants")
	}
	// Evaluable constants such as pi still prove inconsistency.
	if n, ok := residual.Eval(); ok && !n.IsZero() {
		trail.Add("Evaluated both sides", residual.String()+" ≈ "+n.String()+", which is not 0")
		return None(residual.String() + " is a nonzero constant")
	}
	// Symbolic constants: truth depends on parameter values we cannot see.
	trail.Add("Stopped", "residual "+residual.String()+" depends on parameters")
	return PartialWith("holds only when "+residual.String()+" = 0", residual)
}

// solveLinear isolates the variable in a degree-one equation.
func solveLinear(eq *expr.Equation, v *expr.Sym, trail *explain.Explanation) Result {
	cs := expr.PolyCoeffsOf(eq.Residual(), v.Name())
	a, b := cs.Coeff(1), cs.Coeff(0)
	trail.Add("Collected coefficients", "a = "+a.String()+", b = "+b.String())

	if an, ok := a.(*expr.Num); ok && an.IsZero() {
		// Degenerate: the variable cancelled out during expansion.
		if bn, ok := b.(*expr.Num); ok {
			if bn.IsZero() {
				return AllValues()
			}
			return None("variable cancels and " + b.String() + " = 0 is false")
		}
		return PartialWith("variable cancels; holds only when "+b.String()+" = 0", b)
	}

	root := div(neg(b), a)
	trail.Add("Isolated variable", v.Name()+" = -b/a = "+root.String())
	return Found(root)
}

// solveQuadratic applies the quadratic formula, keeping the result exact
// whenever the coefficients are.
func solveQuadratic(eq *expr.Equation, v *expr.Sym, trail *explain.Explanation) Result {
	cs := expr.PolyCoeffsOf(eq.Residual(), v.Name())
	a, b, c := cs.Coeff(2), cs.Coeff(1), cs.Coeff(0)
	trail.Add("Collected coefficients",
		"a = "+a.String()+", b = "+b.String()+", c = "+c.String())

	disc := expr.AddOf(expr.PowOf(b, expr.N(2)), expr.MulOf(expr.N(-4), a, c))
	trail.Add("Computed discriminant", "Δ = b^2 - 4ac = "+disc.String())

	dn, numeric := disc.(*expr.Num)
	if numeric && dn.IsNegative() {
		trail.Add("Checked sign", "Δ < 0, no real solutions")
		return None("negative discriminant")
	}
	if numeric && dn.IsZero() {
		root := div(neg(b), expr.MulOf(expr.N(2), a))
		trail.Add("Applied quadratic formula", v.Name()+" = -b/(2a) = "+root.String())
		return Found(root)
	}

	var sqrtD expr.Expr = expr.SqrtOf(disc)
	if numeric {
		if r, ok := ratSqrt(dn); ok {
			sqrtD = r
		}
	}
	twoA := expr.MulOf(expr.N(2), a)
	lo := div(expr.AddOf(neg(b), neg(sqrtD)), twoA)
	hi := div(expr.AddOf(neg(b), sqrtD), twoA)
	trail.Add("Applied quadratic formula",
		v.Name()+" = (-b ± √Δ)/(2a), giving "+lo.String()+" and "+hi.String())
	return Found(sortAscending(lo, hi)...)
}

// quadraticRoots solves a*x^2 + b*x + c = 0 over the reals for rational
// coefficients. It returns nil when no real root exists.
func quadraticRoots(a, b, c *expr.Num) []expr.Expr {
	disc := expr.NumSub(expr.NumMul(b, b), expr.NumMul(expr.N(4), expr.NumMul(a, c)))
	if disc.IsNegative() {
		return nil
	}
	twoA := expr.NumMul(expr.N(2), a)
	if disc.IsZero() {
		return []expr.Expr{expr.NumDiv(expr.NumNeg(b), twoA)}
	}
	if r, ok := ratSqrt(disc); ok {
		return []expr.Expr{
			expr.NumDiv(expr.NumSub(expr.NumNeg(b), r), twoA),
			expr.NumDiv(expr.NumAdd(expr.NumNeg(b), r), twoA),
		}
	}
	sqrtD := expr.SqrtOf(disc)
	return []expr.Expr{
		div(expr.AddOf(expr.NumNeg(b), neg(sqrtD)), twoA),
		div(expr.AddOf(expr.NumNeg(b), sqrtD), twoA),
	}
}

func neg(e expr.Expr) expr.Expr { return expr.MulOf(expr.N(-1), e) }

func div(a, b expr.Expr) expr.Expr { return expr.MulOf(a, expr.PowOf(b, expr.N(-1))) }

// ratSqrt computes the exact square root of a nonnegative rational, when
// one exists.
func ratSqrt(n *expr.Num) (*expr.Num, bool) {
	if n.IsNegative() {
		return nil, false
	}
	r := n.Rat()
	num := new(big.Int).Sqrt(r.Num())
	den := new(big.Int).Sqrt(r.Denom())
	if new(big.Int).Mul(num, num).Cmp(r.Num()) != 0 {
		return nil, false
	}
	if new(big.Int).Mul(den, den).Cmp(r.Denom()) != 0 {
		return nil, false
	}
	return expr.NRat(new(big.Rat).SetFrac(num, den)), true
}

// snapNum converts a numerically located root to an exact integer literal
// when it sits within tol of one; otherwise the float is kept as-is.
func snapNum(r, tol float64) expr.Expr {
	n := math.Round(r)
	if math.Abs(n) < 1e15 && math.Abs(r-n) <= tol*math.Max(1, math.Abs(n)) {
		return expr.N(int64(n))
	}
	return expr.NFloat(r)
}

// sortAscending orders solutions by numeric value where possible so callers
// see a stable, predictable order. Non-numeric entries keep their position.
func sortAscending(values ...expr.Expr) []expr.Expr {
	nums := make([]*expr.Num, len(values))
	for i, v := range values {
		n, ok := v.Eval()
		if !ok {
			return values
		}
		nums[i] = n
	}
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return expr.NumCmp(nums[idx[i]], nums[idx[j]]) < 0
	})
	out := make([]expr.Expr, len(values))
	for i, j := range idx {
		out[i] = values[j]
	}
	return out
}

package solve

import (
	"math"
	"math/big"
	"sort"

	"github.com/solvix/solvix/explain"
	"github.com/solvix/solvix/expr"
)

// solveCubic handles degree-three equations. Rational roots are found and
// split off exactly; the remainder falls back to the closed-form real-root
// formulas.
func (e *Engine) solveCubic(eq *expr.Equation, v *expr.Sym, trail *explain.Explanation) Result {
	cs := expr.PolyCoeffsOf(eq.Residual(), v.Name())
	coeffs, ok := numericCoeffs(cs, 3)
	if !ok {
		trail.Add("Stopped", "coefficients are symbolic")
		return PartialWith("cubic with symbolic coefficients", expr.Collect(eq.Residual(), v.Name()))
	}
	a, b, c, d := coeffs[3], coeffs[2], coeffs[1], coeffs[0]
	trail.Add("Collected coefficients",
		"a = "+a.String()+", b = "+b.String()+", c = "+c.String()+", d = "+d.String())

	if r, ok := rationalRoot(coeffs); ok {
		trail.Add("Found rational root", v.Name()+" = "+r.String())
		qa, qb, qc := deflate(coeffs, r)
		roots := []expr.Expr{r}
		roots = append(roots, quadraticRoots(qa, qb, qc)...)
		trail.Add("Deflated to quadratic",
			qa.String()+"·"+v.Name()+"^2 + "+qb.String()+"·"+v.Name()+" + "+qc.String()+" = 0")
		return Found(sortAscending(dedupe(roots)...)...)
	}

	trail.Add("No rational root", "switching to the closed-form real-root formulas")
	roots := cubicReals(a.Float64(), b.Float64(), c.Float64(), d.Float64())
	values := make([]expr.Expr, len(roots))
	for i, r := range roots {
		values[i] = expr.NFloat(r)
	}
	return Found(values...)
}

// numericCoeffs extracts coefficients 0..deg, requiring each to be an exact
// rational.
func numericCoeffs(cs expr.PolyCoeffs, deg int) ([]*expr.Num, bool) {
	out := make([]*expr.Num, deg+1)
	for i := 0; i <= deg; i++ {
		n, ok := cs.Coeff(i).(*expr.Num)
		if !ok {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

// rationalRoot searches for an exact rational root of the polynomial with
// the given low-to-high coefficients, using the rational root theorem on
// the integer-scaled form.
func rationalRoot(coeffs []*expr.Num) (*expr.Num, bool) {
	n := len(coeffs) - 1
	if coeffs[0].IsZero() {
		return expr.N(0), true
	}

	// Clear denominators so the candidates are p/q with p | a0 and q | an.
	scale := big.NewInt(1)
	for _, c := range coeffs {
		scale.Mul(scale, new(big.Int).Div(c.Rat().Denom(), new(big.Int).GCD(nil, nil, scale, c.Rat().Denom())))
	}
	ints := make([]*big.Int, n+1)
	for i, c := range coeffs {
		r := new(big.Rat).Mul(c.Rat(), new(big.Rat).SetInt(scale))
		ints[i] = r.Num()
	}
	a0, an := new(big.Int).Abs(ints[0]), new(big.Int).Abs(ints[n])
	if !a0.IsInt64() || !an.IsInt64() {
		return nil, false
	}

	for _, p := range divisors(a0.Int64()) {
		for _, q := range divisors(an.Int64()) {
			for _, sign := range []int64{1, -1} {
				cand := new(big.Rat).SetFrac64(sign*p, q)
				if evalPolyRat(coeffs, cand).Sign() == 0 {
					return expr.NRat(cand), true
				}
			}
		}
	}
	return nil, false
}

func divisors(n int64) []int64 {
	if n < 0 {
		n = -n
	}
	var out []int64
	for d := int64(1); d*d <= n; d++ {
		if n%d == 0 {
			out = append(out, d)
			if d != n/d {
				out = append(out, n/d)
			}
		}
	}
	return out
}

// evalPolyRat evaluates the polynomial exactly at x via Horner.
func evalPolyRat(coeffs []*expr.Num, x *big.Rat) *big.Rat {
	acc := new(big.Rat)
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, coeffs[i].Rat())
	}
	return acc
}

// deflate divides the cubic by (x - r), returning the quadratic quotient.
func deflate(coeffs []*expr.Num, r *expr.Num) (a, b, c *expr.Num) {
	a = coeffs[3]
	b = expr.NumAdd(coeffs[2], expr.NumMul(r, a))
	c = expr.NumAdd(coeffs[1], expr.NumMul(r, b))
	return a, b, c
}

// cubicReals returns the real roots of a*x^3+b*x^2+c*x+d in ascending
// order. Three real roots use the trigonometric form, one real root the
// Cardano form.
func cubicReals(a, b, c, d float64) []float64 {
	// Depress: x = t - b/(3a) gives t^3 + p*t + q.
	shift := b / (3 * a)
	p := c/a - b*b/(3*a*a)
	q := 2*b*b*b/(27*a*a*a) - b*c/(3*a*a) + d/a

	var roots []float64
	disc := -4*p*p*p - 27*q*q
	switch {
	case disc > 0:
		m := 2 * math.Sqrt(-p/3)
		theta := math.Acos(3*q/(2*p)*math.Sqrt(-3/p)) / 3
		for k := 0; k < 3; k++ {
			roots = append(roots, m*math.Cos(theta-2*math.Pi*float64(k)/3)-shift)
		}
	default:
		s := math.Sqrt(q*q/4 + p*p*p/27)
		u := math.Cbrt(-q/2 + s)
		w := math.Cbrt(-q/2 - s)
		roots = append(roots, u+w-shift)
	}
	sort.Float64s(roots)
	return roots
}

// dedupe removes structurally equal duplicates, keeping first occurrences.
func dedupe(values []expr.Expr) []expr.Expr {
	var out []expr.Expr
	for _, v := range values {
		dup := false
		for _, seen := range out {
			if seen.Equal(v) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, v)
		}
	}
	return out
}

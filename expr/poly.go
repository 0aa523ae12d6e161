package expr

import "sort"

// Degree returns the polynomial degree of e in varName. ok is false when e
// is not a polynomial in varName (the variable appears inside a function
// application, a non-integer power, a negative power, or a derivative
// marker).
func Degree(e Expr, varName string) (int, bool) {
	return degree(Expand(e), varName)
}

func degree(e Expr, varName string) (int, bool) {
	switch v := e.(type) {
	case *Num, *Const:
		return 0, true
	case *Sym:
		if v.name == varName {
			return 1, true
		}
		return 0, true
	case *Pow:
		if !Contains(v.base, varName) && !Contains(v.exp, varName) {
			return 0, true
		}
		if Contains(v.exp, varName) {
			return 0, false
		}
		n, ok := v.exp.(*Num)
		if !ok || !n.IsInteger() || n.IsNegative() {
			return 0, false
		}
		baseDeg, baseOK := degree(v.base, varName)
		if !baseOK {
			return 0, false
		}
		return baseDeg * int(n.Int64()), true
	case *Add:
		maxDeg := 0
		for _, t := range v.terms {
			d, ok := degree(t, varName)
			if !ok {
				return 0, false
			}
			if d > maxDeg {
				maxDeg = d
			}
		}
		return maxDeg, true
	case *Mul:
		total := 0
		for _, f := range v.factors {
			d, ok := degree(f, varName)
			if !ok {
				return 0, false
			}
			total += d
		}
		return total, true
	case *Func:
		if Contains(v, varName) {
			return 0, false
		}
		return 0, true
	case *Derivative:
		if Contains(v, varName) {
			return 0, false
		}
		return 0, true
	}
	return 0, true
}

// Expand distributes products over sums and unrolls small integer powers.
func Expand(e Expr) Expr { return expandExpr(e.Simplify()).Simplify() }

func expandExpr(e Expr) Expr {
	switch v := e.(type) {
	case *Mul:
		if Noncommutative(v) {
			return v
		}
		expanded := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			expanded[i] = expandExpr(f)
		}
		for i, f := range expanded {
			if a, ok := f.(*Add); ok {
				rest := make([]Expr, 0, len(expanded)-1)
				for j, ef := range expanded {
					if j != i {
						rest = append(rest, ef)
					}
				}
				terms := make([]Expr, len(a.terms))
				for k, t := range a.terms {
					terms[k] = expandExpr(MulOf(append([]Expr{t}, rest...)...))
				}
				return expandExpr(AddOf(terms...))
			}
		}
		return MulOf(expanded...)
	case *Add:
		newTerms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			newTerms[i] = expandExpr(t)
		}
		return AddOf(newTerms...)
	case *Pow:
		if n, ok := v.exp.(*Num); ok && n.IsInteger() && !Noncommutative(v.base) {
			exp := n.Int64()
			if exp >= 0 && exp <= 10 {
				result := Expr(N(1))
				base := expandExpr(v.base)
				for i := int64(0); i < exp; i++ {
					result = expandExpr(MulOf(result, base))
				}
				return result
			}
		}
		return &Pow{base: expandExpr(v.base), exp: expandExpr(v.exp)}
	}
	return e
}

// PolyCoeffs maps degree -> coefficient for a polynomial in varName. The
// input is expanded first so (x+1)^2 style trees extract correctly. Callers
// should confirm polynomiality with Degree before trusting the result.
type PolyCoeffs map[int]Expr

func PolyCoeffsOf(e Expr, varName string) PolyCoeffs {
	out := PolyCoeffs{}
	extractCoeffs(Expand(e), varName, out)
	return out
}

func extractCoeffs(e Expr, varName string, out PolyCoeffs) {
	switch v := e.(type) {
	case *Num:
		addCoeff(out, 0, v)
	case *Const:
		addCoeff(out, 0, v)
	case *Sym:
		if v.name == varName {
			addCoeff(out, 1, N(1))
		} else {
			addCoeff(out, 0, v)
		}
	case *Pow:
		if sym, ok := v.base.(*Sym); ok && sym.name == varName {
			if n, ok2 := v.exp.(*Num); ok2 && n.IsInteger() && !n.IsNegative() {
				addCoeff(out, int(n.Int64()), N(1))
				return
			}
		}
		addCoeff(out, 0, e)
	case *Mul:
		deg := 0
		coeffFactors := []Expr{}
		for _, f := range v.factors {
			if d, ok := degree(f, varName); ok && d > 0 {
				deg += d
			} else {
				coeffFactors = append(coeffFactors, f)
			}
		}
		var coeff Expr
		switch len(coeffFactors) {
		case 0:
			coeff = N(1)
		case 1:
			coeff = coeffFactors[0]
		default:
			coeff = MulOf(coeffFactors...)
		}
		addCoeff(out, deg, coeff)
	case *Add:
		for _, t := range v.terms {
			extractCoeffs(t, varName, out)
		}
	default:
		addCoeff(out, 0, e)
	}
}

func addCoeff(out PolyCoeffs, deg int, val Expr) {
	if existing, ok := out[deg]; ok {
		out[deg] = AddOf(existing, val).Simplify()
	} else {
		out[deg] = val.Simplify()
	}
}

// Coeff returns the coefficient at degree d, defaulting to zero.
func (pc PolyCoeffs) Coeff(d int) Expr {
	if c, ok := pc[d]; ok {
		return c
	}
	return N(0)
}

// Collect regroups a polynomial by descending powers of varName.
func Collect(e Expr, varName string) Expr {
	coeffs := PolyCoeffsOf(e, varName)
	if len(coeffs) == 0 {
		return N(0)
	}
	degrees := make([]int, 0, len(coeffs))
	for d := range coeffs {
		degrees = append(degrees, d)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(degrees)))
	terms := make([]Expr, 0, len(degrees))
	for _, d := range degrees {
		c := coeffs[d]
		if cn, ok := c.(*Num); ok && cn.IsZero() {
			continue
		}
		switch d {
		case 0:
			terms = append(terms, c)
		case 1:
			terms = append(terms, MulOf(c, S(varName)))
		default:
			terms = append(terms, MulOf(c, PowOf(S(varName), N(int64(d)))))
		}
	}
	if len(terms) == 0 {
		return N(0)
	}
	return AddOf(terms...).Simplify()
}

// ExtractCoefficient splits a leading numeric coefficient off a product.
func ExtractCoefficient(e Expr) (*Num, Expr) {
	if m, ok := e.(*Mul); ok && len(m.factors) >= 2 {
		if coeff, ok2 := m.factors[0].(*Num); ok2 {
			rest := m.factors[1:]
			if len(rest) == 1 {
				return coeff, rest[0]
			}
			return coeff, &Mul{factors: rest}
		}
	}
	return N(1), e
}

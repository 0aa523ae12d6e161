package expr

import (
	"sort"
	"strings"
)

// Mul is an n-ary product. Factors containing noncommutative symbols keep
// their relative order; everything else is canonically sorted.
type Mul struct{ factors []Expr }

// MulOf multiplies the given factors, folding numeric literals.
func MulOf(factors ...Expr) Expr { return (&Mul{factors: factors}).Simplify() }

func (m *Mul) Simplify() Expr {
	flat := make([]Expr, 0, len(m.factors))
	for _, f := range m.factors {
		s := f.Simplify()
		if inner, ok := s.(*Mul); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, s)
		}
	}
	coeff := N(1)
	commuting := []Expr{}
	ordered := []Expr{}
	for _, f := range flat {
		switch {
		case isNum(f):
			coeff = NumMul(coeff, f.(*Num))
		case Noncommutative(f):
			ordered = append(ordered, f)
		default:
			commuting = append(commuting, f)
		}
	}
	if coeff.IsZero() {
		return N(0)
	}

	// Precompute sort keys to avoid repeated String() calls in comparator.
	type keyed struct {
		e   Expr
		key string
	}
	ks := make([]keyed, len(commuting))
	for i, e := range commuting {
		ks[i] = keyed{e: e, key: e.String()}
	}
	sort.Slice(ks, func(i, j int) bool { return ks[i].key < ks[j].key })
	others := make([]Expr, 0, len(commuting)+len(ordered))
	for i := range ks {
		others = append(others, ks[i].e)
	}
	others = append(others, ordered...)

	if len(others) == 0 {
		return coeff
	}
	if coeff.IsOne() {
		if len(others) == 1 {
			return others[0]
		}
		return &Mul{factors: others}
	}
	return &Mul{factors: append([]Expr{coeff}, others...)}
}

func isNum(e Expr) bool {
	_, ok := e.(*Num)
	return ok
}

func (m *Mul) String() string {
	if len(m.factors) == 0 {
		return "1"
	}
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if _, isAdd := f.(*Add); isAdd {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, "*")
}

func (m *Mul) LaTeX() string {
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if _, isAdd := f.(*Add); isAdd {
			parts[i] = "\\left(" + f.LaTeX() + "\\right)"
		} else {
			parts[i] = f.LaTeX()
		}
	}
	return strings.Join(parts, " ")
}

func (m *Mul) Sub(varName string, value Expr) Expr {
	newFactors := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		newFactors[i] = f.Sub(varName, value)
	}
	return MulOf(newFactors...)
}

// Diff applies the product rule. For noncommutative factors the summand
// order d(fi) kept in place is already correct because factor order is
// preserved end to end.
func (m *Mul) Diff(varName string) Expr {
	terms := make([]Expr, len(m.factors))
	for i, fi := range m.factors {
		dfi := fi.Diff(varName)
		row := make([]Expr, 0, len(m.factors))
		for j, fj := range m.factors {
			if j == i {
				row = append(row, dfi)
			} else {
				row = append(row, fj)
			}
		}
		terms[i] = MulOf(row...)
	}
	return AddOf(terms...)
}

func (m *Mul) Eval() (*Num, bool) {
	acc := N(1)
	for _, f := range m.factors {
		v, ok := f.Eval()
		if !ok {
			return nil, false
		}
		acc = NumMul(acc, v)
	}
	return acc, true
}

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	if !ok || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

func (m *Mul) Hash() uint64 {
	parts := make([]uint64, len(m.factors))
	for i, f := range m.factors {
		parts[i] = f.Hash()
	}
	return hashOf("mul", parts...)
}

func (m *Mul) exprType() string { return "mul" }
func (m *Mul) toJSON() map[string]interface{} {
	fs := make([]map[string]interface{}, len(m.factors))
	for i, f := range m.factors {
		fs[i] = f.toJSON()
	}
	return map[string]interface{}{"type": "mul", "factors": fs}
}

// Factors exposes the factor slice; callers must not mutate it.
func (m *Mul) Factors() []Expr { return m.factors }

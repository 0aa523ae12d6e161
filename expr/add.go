package expr

import (
	"sort"
	"strings"
)

// Add is an n-ary sum.
type Add struct{ terms []Expr }

// AddOf sums the given terms, folding numeric literals and like symbols.
func AddOf(terms ...Expr) Expr { return (&Add{terms: terms}).Simplify() }

func (a *Add) Simplify() Expr {
	flat := make([]Expr, 0, len(a.terms))
	for _, t := range a.terms {
		s := t.Simplify()
		if inner, ok := s.(*Add); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, s)
		}
	}
	// Fold like terms by splitting each into a numeric coefficient and a
	// remaining part, grouping on the part. x + 2x and 3y^2 - 3y^2 both
	// collapse here.
	numAccum := N(0)
	type group struct {
		coeff *Num
		rest  Expr
	}
	groups := map[string]*group{}
	keys := []string{}
	for _, t := range flat {
		if n, ok := t.(*Num); ok {
			numAccum = NumAdd(numAccum, n)
			continue
		}
		coeff, rest := ExtractCoefficient(t)
		key := rest.String()
		g, seen := groups[key]
		if !seen {
			g = &group{coeff: N(0), rest: rest}
			groups[key] = g
			keys = append(keys, key)
		}
		g.coeff = NumAdd(g.coeff, coeff)
	}
	sort.Strings(keys)
	result := []Expr{}
	for _, key := range keys {
		g := groups[key]
		if g.coeff.IsZero() {
			continue
		}
		if g.coeff.IsOne() {
			result = append(result, g.rest)
		} else {
			result = append(result, MulOf(g.coeff, g.rest))
		}
	}
	if !numAccum.IsZero() {
		result = append(result, numAccum)
	}
	if len(result) == 0 {
		return N(0)
	}
	if len(result) == 1 {
		return result[0]
	}
	return &Add{terms: result}
}

func (a *Add) String() string {
	if len(a.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

func (a *Add) LaTeX() string {
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.LaTeX()
	}
	return strings.Join(parts, " + ")
}

func (a *Add) Sub(varName string, value Expr) Expr {
	newTerms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		newTerms[i] = t.Sub(varName, value)
	}
	return AddOf(newTerms...)
}

func (a *Add) Diff(varName string) Expr {
	dTerms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		dTerms[i] = t.Diff(varName)
	}
	return AddOf(dTerms...)
}

func (a *Add) Eval() (*Num, bool) {
	acc := N(0)
	for _, t := range a.terms {
		v, ok := t.Eval()
		if !ok {
			return nil, false
		}
		acc = NumAdd(acc, v)
	}
	return acc, true
}

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	if !ok || len(a.terms) != len(o.terms) {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

func (a *Add) Hash() uint64 {
	parts := make([]uint64, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.Hash()
	}
	return hashOf("add", parts...)
}

func (a *Add) exprType() string { return "add" }
func (a *Add) toJSON() map[string]interface{} {
	ts := make([]map[string]interface{}, len(a.terms))
	for i, t := range a.terms {
		ts[i] = t.toJSON()
	}
	return map[string]interface{}{"type": "add", "terms": ts}
}

// Terms exposes the term slice; callers must not mutate it.
func (a *Add) Terms() []Expr { return a.terms }

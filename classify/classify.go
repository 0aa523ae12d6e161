// Package classify assigns every equation to exactly one solver family.
// Classification is structural: it walks tree shapes and registered
// property flags and never matches on a function's name text, so new
// functions with known properties route correctly without touching this
// package.
package classify

import (
	"github.com/solvix/solvix/expr"
	"github.com/solvix/solvix/funcs"
)

// EquationType is the closed set of solver families.
type EquationType int

const (
	Unknown EquationType = iota
	Constant
	Linear
	Quadratic
	Cubic
	Quartic
	PolynomialSystem
	GeneralSystem
	Transcendental
	Matrix
	OrdinaryDifferential
	PartialDifferential
)

func (t EquationType) String() string {
	switch t {
	case Constant:
		return "Constant"
	case Linear:
		return "Linear"
	case Quadratic:
		return "Quadratic"
	case Cubic:
		return "Cubic"
	case Quartic:
		return "Quartic"
	case PolynomialSystem:
		return "PolynomialSystem"
	case GeneralSystem:
		return "GeneralSystem"
	case Transcendental:
		return "Transcendental"
	case Matrix:
		return "Matrix"
	case OrdinaryDifferential:
		return "OrdinaryDifferential"
	case PartialDifferential:
		return "PartialDifferential"
	}
	return "Unknown"
}

// Classifier answers "which family does this equation belong to". It holds
// the read-only function registry for property lookups and is safe to
// share across goroutines.
type Classifier struct {
	reg *funcs.Registry
}

// New builds a classifier over reg.
func New(reg *funcs.Registry) *Classifier {
	return &Classifier{reg: reg}
}

// Classify determines the family of eq in variable v. It is a pure
// function of its inputs: repeated calls on structurally equal trees
// return the same tag.
//
// Precedence, in order: partial-derivative markers, ordinary-derivative
// markers, matrix form, polynomial degree, transcendental form,
// multivariable split, Unknown. Derivative detection always wins over
// degree analysis because a derivative marker makes degree meaningless.
func (c *Classifier) Classify(eq *expr.Equation, v *expr.Sym) EquationType {
	if t, ok := differentialType(eq.LHS, eq.RHS); ok {
		return t
	}
	if isMatrixEquation(eq) {
		return Matrix
	}

	residual := eq.Residual()
	deg, isPoly := expr.Degree(residual, v.Name())
	if isPoly {
		switch deg {
		case 0:
			return Constant
		case 1:
			return Linear
		case 2:
			return Quadratic
		case 3:
			return Cubic
		case 4:
			return Quartic
		}
		// Degree five and beyond has no closed-form family.
		return Unknown
	}

	if c.transcendentalIn(residual, v.Name()) {
		return Transcendental
	}
	if len(expr.FreeSymbols(residual)) > 1 {
		if polynomialInAll(residual) {
			return PolynomialSystem
		}
		return GeneralSystem
	}
	return Unknown
}

// ClassifySystem determines the family of a set of simultaneous equations.
func (c *Classifier) ClassifySystem(eqs []*expr.Equation, vars []*expr.Sym) EquationType {
	if len(eqs) == 1 && len(vars) == 1 {
		return c.Classify(eqs[0], vars[0])
	}
	for _, eq := range eqs {
		if t, ok := differentialType(eq.LHS, eq.RHS); ok {
			return t
		}
	}
	for _, eq := range eqs {
		residual := eq.Residual()
		for _, v := range vars {
			if _, isPoly := expr.Degree(residual, v.Name()); !isPoly {
				return GeneralSystem
			}
		}
	}
	return PolynomialSystem
}

// differentialType scans for derivative markers. Partial form (two or more
// distinct independent variables) takes precedence over ordinary form.
func differentialType(sides ...expr.Expr) (EquationType, bool) {
	independent := map[string]struct{}{}
	found := false
	for _, side := range sides {
		for _, d := range expr.DerivativeMarkers(side) {
			found = true
			for _, w := range d.Wrt() {
				independent[w] = struct{}{}
			}
		}
	}
	if !found {
		return Unknown, false
	}
	if len(independent) >= 2 {
		return PartialDifferential, true
	}
	return OrdinaryDifferential, true
}

// isMatrixEquation reports whether noncommutative-kind symbols are the sole
// top-level factors on both sides.
func isMatrixEquation(eq *expr.Equation) bool {
	return noncommProduct(eq.LHS) && noncommProduct(eq.RHS)
}

// noncommProduct accepts a noncommutative symbol, its inverse, or a product
// of those (with an optional scalar literal coefficient).
func noncommProduct(e expr.Expr) bool {
	switch v := e.(type) {
	case *expr.Sym:
		return !v.Kind().Commutative()
	case *expr.Pow:
		base, ok := v.Base().(*expr.Sym)
		if !ok || base.Kind().Commutative() {
			return false
		}
		n, isNum := v.ExpExpr().(*expr.Num)
		return isNum && n.IsInteger()
	case *expr.Mul:
		sawNoncomm := false
		for _, f := range v.Factors() {
			if _, isNum := f.(*expr.Num); isNum {
				continue
			}
			if !noncommProduct(f) {
				return false
			}
			sawNoncomm = true
		}
		return sawNoncomm
	}
	return false
}

// transcendentalIn reports whether varName appears inside a function
// application whose registered properties mark it transcendental, or in
// the exponent of a constant-base power (the structural exponential form).
func (c *Classifier) transcendentalIn(e expr.Expr, varName string) bool {
	switch v := e.(type) {
	case *expr.Func:
		if expr.Contains(v, varName) {
			if p, ok := c.reg.Lookup(v.FuncName()); ok && p.Transcendental {
				return true
			}
		}
		for _, a := range v.Args() {
			if c.transcendentalIn(a, varName) {
				return true
			}
		}
	case *expr.Add:
		for _, t := range v.Terms() {
			if c.transcendentalIn(t, varName) {
				return true
			}
		}
	case *expr.Mul:
		for _, f := range v.Factors() {
			if c.transcendentalIn(f, varName) {
				return true
			}
		}
	case *expr.Pow:
		if expr.Contains(v.ExpExpr(), varName) && !expr.Contains(v.Base(), varName) {
			return true
		}
		return c.transcendentalIn(v.Base(), varName) || c.transcendentalIn(v.ExpExpr(), varName)
	}
	return false
}

// polynomialInAll reports whether e is polynomial in each of its free
// symbols.
func polynomialInAll(e expr.Expr) bool {
	for name := range expr.FreeSymbols(e) {
		if _, ok := expr.Degree(e, name); !ok {
			return false
		}
	}
	return true
}

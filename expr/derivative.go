package expr

import (
	"strconv"
	"strings"
)

// Derivative is a structural derivative marker: the derivative of fn with
// respect to the ordered independent variables wrt. Classification keys off
// this node type, never off a function name, so differential equations can
// be detected without string matching.
type Derivative struct {
	fn  Expr
	wrt []string
}

// DerivOf marks the derivative of fn with respect to wrt. It stays
// unevaluated; solvers decide what to do with it.
func DerivOf(fn Expr, wrt ...string) Expr {
	if len(wrt) == 0 {
		return fn
	}
	return &Derivative{fn: fn, wrt: wrt}
}

func (d *Derivative) Simplify() Expr {
	return &Derivative{fn: d.fn.Simplify(), wrt: d.wrt}
}

func (d *Derivative) String() string {
	return "D[" + d.fn.String() + "; " + strings.Join(d.wrt, ", ") + "]"
}

func (d *Derivative) LaTeX() string {
	if len(d.wrt) == 1 {
		return "\\frac{d}{d" + d.wrt[0] + "}\\left(" + d.fn.LaTeX() + "\\right)"
	}
	var sb strings.Builder
	sb.WriteString("\\frac{\\partial^{")
	sb.WriteString(strconv.Itoa(len(d.wrt)))
	sb.WriteString("}}{")
	for _, w := range d.wrt {
		sb.WriteString("\\partial ")
		sb.WriteString(w)
		sb.WriteString(" ")
	}
	sb.WriteString("}\\left(")
	sb.WriteString(d.fn.LaTeX())
	sb.WriteString("\\right)")
	return sb.String()
}

// Sub substitutes inside the differentiated expression. Independent
// variables are binders here and are left alone.
func (d *Derivative) Sub(varName string, value Expr) Expr {
	for _, w := range d.wrt {
		if w == varName {
			return d
		}
	}
	return &Derivative{fn: d.fn.Sub(varName, value), wrt: d.wrt}
}

func (d *Derivative) Diff(varName string) Expr {
	return &Derivative{fn: d.fn, wrt: append(append([]string{}, d.wrt...), varName)}
}

func (d *Derivative) Eval() (*Num, bool) { return nil, false }

func (d *Derivative) Equal(other Expr) bool {
	o, ok := other.(*Derivative)
	if !ok || len(d.wrt) != len(o.wrt) || !d.fn.Equal(o.fn) {
		return false
	}
	for i := range d.wrt {
		if d.wrt[i] != o.wrt[i] {
			return false
		}
	}
	return true
}

func (d *Derivative) Hash() uint64 {
	parts := []uint64{d.fn.Hash()}
	for _, w := range d.wrt {
		parts = append(parts, hashOfString("wrt", w))
	}
	return hashOf("deriv", parts...)
}

func (d *Derivative) exprType() string { return "derivative" }

func (d *Derivative) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "derivative", "fn": d.fn.toJSON(), "wrt": d.wrt}
}

// Fn returns the differentiated expression.
func (d *Derivative) Fn() Expr { return d.fn }

// Wrt returns the ordered independent variable names; callers must not
// mutate the slice.
func (d *Derivative) Wrt() []string { return d.wrt }

// DerivativeMarkers walks e and returns every derivative marker in it, in
// depth-first order.
func DerivativeMarkers(e Expr) []*Derivative {
	var out []*Derivative
	walkDerivatives(e, &out)
	return out
}

func walkDerivatives(e Expr, out *[]*Derivative) {
	switch v := e.(type) {
	case *Derivative:
		*out = append(*out, v)
		walkDerivatives(v.fn, out)
	case *Add:
		for _, t := range v.terms {
			walkDerivatives(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			walkDerivatives(f, out)
		}
	case *Pow:
		walkDerivatives(v.base, out)
		walkDerivatives(v.exp, out)
	case *Func:
		for _, a := range v.args {
			walkDerivatives(a, out)
		}
	}
}

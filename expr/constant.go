package expr

import "math"

// Const is a named mathematical constant: exact as a symbol, numeric on
// demand. It keeps closed forms such as pi^2/6 symbolic while still letting
// residual checks evaluate them.
type Const struct {
	name   string
	latex  string
	approx float64
}

// Pi returns the circle constant.
func Pi() *Const { return &Const{name: "pi", latex: "\\pi", approx: math.Pi} }

// E returns Euler's number.
func E() *Const { return &Const{name: "e", latex: "e", approx: math.E} }

// ConstFromName resolves a constant by wire name.
func ConstFromName(name string) (*Const, bool) {
	switch name {
	case "pi":
		return Pi(), true
	case "e":
		return E(), true
	}
	return nil, false
}

func (c *Const) Simplify() Expr        { return c }
func (c *Const) String() string        { return c.name }
func (c *Const) LaTeX() string         { return c.latex }
func (c *Const) Sub(string, Expr) Expr { return c }
func (c *Const) Diff(string) Expr      { return N(0) }
func (c *Const) Eval() (*Num, bool)    { return NFloat(c.approx), true }
func (c *Const) Equal(other Expr) bool {
	o, ok := other.(*Const)
	return ok && c.name == o.name
}
func (c *Const) Hash() uint64     { return hashOfString("const", c.name) }
func (c *Const) exprType() string { return "const" }
func (c *Const) Name() string     { return c.name }
func (c *Const) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "const", "name": c.name}
}

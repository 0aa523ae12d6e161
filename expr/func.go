package expr

import (
	"math"
	"strings"
)

// Func is a named function application with an ordered argument list.
// The expression layer folds only the elementary single-argument cases it
// can decide locally; everything else is opaque here and interpreted by the
// function property registry.
type Func struct {
	name string
	args []Expr
}

// FuncOf applies name to args.
func FuncOf(name string, args ...Expr) Expr {
	return (&Func{name: name, args: args}).Simplify()
}

func SinOf(arg Expr) Expr   { return FuncOf("sin", arg) }
func CosOf(arg Expr) Expr   { return FuncOf("cos", arg) }
func TanOf(arg Expr) Expr   { return FuncOf("tan", arg) }
func ExpOf(arg Expr) Expr   { return FuncOf("exp", arg) }
func LnOf(arg Expr) Expr    { return FuncOf("ln", arg) }
func SqrtOf(arg Expr) Expr  { return PowOf(arg, F(1, 2)) }
func AbsOf(arg Expr) Expr   { return FuncOf("abs", arg) }
func AsinOf(arg Expr) Expr  { return FuncOf("asin", arg) }
func AcosOf(arg Expr) Expr  { return FuncOf("acos", arg) }
func AtanOf(arg Expr) Expr  { return FuncOf("atan", arg) }
func SinhOf(arg Expr) Expr  { return FuncOf("sinh", arg) }
func CoshOf(arg Expr) Expr  { return FuncOf("cosh", arg) }
func TanhOf(arg Expr) Expr  { return FuncOf("tanh", arg) }
func GammaOf(arg Expr) Expr { return FuncOf("gamma", arg) }
func BetaOf(a, b Expr) Expr { return FuncOf("beta", a, b) }
func ZetaOf(arg Expr) Expr  { return FuncOf("zeta", arg) }

var elementary = map[string]func(float64) (float64, bool){
	"sin":  func(v float64) (float64, bool) { return math.Sin(v), true },
	"cos":  func(v float64) (float64, bool) { return math.Cos(v), true },
	"tan":  func(v float64) (float64, bool) { return math.Tan(v), true },
	"exp":  func(v float64) (float64, bool) { return math.Exp(v), true },
	"ln":   func(v float64) (float64, bool) { return math.Log(v), v > 0 },
	"abs":  func(v float64) (float64, bool) { return math.Abs(v), true },
	"asin": func(v float64) (float64, bool) { return math.Asin(v), v >= -1 && v <= 1 },
	"acos": func(v float64) (float64, bool) { return math.Acos(v), v >= -1 && v <= 1 },
	"atan": func(v float64) (float64, bool) { return math.Atan(v), true },
	"sinh": func(v float64) (float64, bool) { return math.Sinh(v), true },
	"cosh": func(v float64) (float64, bool) { return math.Cosh(v), true },
	"tanh": func(v float64) (float64, bool) { return math.Tanh(v), true },
}

func (f *Func) Simplify() Expr {
	args := make([]Expr, len(f.args))
	for i, a := range f.args {
		args[i] = a.Simplify()
	}
	if len(args) == 1 {
		if folded, ok := simplifyUnary(f.name, args[0]); ok {
			return folded
		}
	}
	return &Func{name: f.name, args: args}
}

func simplifyUnary(name string, arg Expr) (Expr, bool) {
	if n, ok := arg.(*Num); ok {
		// abs of an exact rational stays exact.
		if name == "abs" {
			return NumAbs(n), true
		}
		if fn, known := elementary[name]; known {
			if v, inDomain := fn(n.Float64()); inDomain {
				// Exact zero/one results survive as exact literals.
				if v == math.Trunc(v) && math.Abs(v) < 1e6 {
					return N(int64(v)), true
				}
				return NFloat(v), true
			}
		}
	}
	switch name {
	case "sin":
		if isNumEqual(arg, 0) {
			return N(0), true
		}
	case "cos":
		if isNumEqual(arg, 0) {
			return N(1), true
		}
	case "ln":
		if n, ok := arg.(*Num); ok && n.IsOne() {
			return N(0), true
		}
		if inner, ok := arg.(*Func); ok && inner.name == "exp" && len(inner.args) == 1 {
			return inner.args[0], true
		}
		if c, ok := arg.(*Const); ok && c.name == "e" {
			return N(1), true
		}
	case "exp":
		if n, ok := arg.(*Num); ok && n.IsZero() {
			return N(1), true
		}
		if inner, ok := arg.(*Func); ok && inner.name == "ln" && len(inner.args) == 1 {
			return inner.args[0], true
		}
	case "abs":
		if m, ok := arg.(*Mul); ok && len(m.factors) >= 1 {
			if coeff, ok2 := m.factors[0].(*Num); ok2 && coeff.IsNegOne() {
				return AbsOf(MulOf(m.factors[1:]...)), true
			}
		}
	}
	return nil, false
}

func (f *Func) String() string {
	parts := make([]string, len(f.args))
	for i, a := range f.args {
		parts[i] = a.String()
	}
	return f.name + "(" + strings.Join(parts, ", ") + ")"
}

func (f *Func) LaTeX() string {
	parts := make([]string, len(f.args))
	for i, a := range f.args {
		parts[i] = a.LaTeX()
	}
	body := strings.Join(parts, ", ")
	switch f.name {
	case "sin", "cos", "tan", "exp", "ln", "sinh", "cosh", "tanh":
		return "\\" + f.name + "\\left(" + body + "\\right)"
	case "asin":
		return "\\arcsin\\left(" + body + "\\right)"
	case "acos":
		return "\\arccos\\left(" + body + "\\right)"
	case "atan":
		return "\\arctan\\left(" + body + "\\right)"
	case "abs":
		return "\\left|" + body + "\\right|"
	case "gamma":
		return "\\Gamma\\left(" + body + "\\right)"
	case "beta":
		return "\\mathrm{B}\\left(" + body + "\\right)"
	case "zeta":
		return "\\zeta\\left(" + body + "\\right)"
	}
	return "\\operatorname{" + f.name + "}\\left(" + body + "\\right)"
}

func (f *Func) Sub(varName string, value Expr) Expr {
	args := make([]Expr, len(f.args))
	for i, a := range f.args {
		args[i] = a.Sub(varName, value)
	}
	return FuncOf(f.name, args...)
}

func (f *Func) Diff(varName string) Expr {
	if !Contains(f, varName) {
		return N(0)
	}
	if len(f.args) != 1 {
		// Multi-argument applications differentiate to a marker; the solver
		// families that need more treat them through the registry.
		return DerivOf(f, varName)
	}
	arg := f.args[0]
	du := arg.Diff(varName)
	var outer Expr
	switch f.name {
	case "sin":
		outer = CosOf(arg)
	case "cos":
		outer = MulOf(N(-1), SinOf(arg))
	case "tan":
		outer = AddOf(N(1), PowOf(TanOf(arg), N(2)))
	case "exp":
		outer = ExpOf(arg)
	case "ln":
		outer = PowOf(arg, N(-1))
	case "asin":
		outer = PowOf(AddOf(N(1), MulOf(N(-1), PowOf(arg, N(2)))), F(-1, 2))
	case "acos":
		outer = MulOf(N(-1), PowOf(AddOf(N(1), MulOf(N(-1), PowOf(arg, N(2)))), F(-1, 2)))
	case "atan":
		outer = PowOf(AddOf(N(1), PowOf(arg, N(2))), N(-1))
	case "sinh":
		outer = CoshOf(arg)
	case "cosh":
		outer = SinhOf(arg)
	case "tanh":
		outer = AddOf(N(1), MulOf(N(-1), PowOf(TanhOf(arg), N(2))))
	default:
		return DerivOf(f, varName)
	}
	return MulOf(outer, du).Simplify()
}

func (f *Func) Eval() (*Num, bool) {
	if len(f.args) != 1 {
		return nil, false
	}
	n, ok := f.args[0].Eval()
	if !ok {
		return nil, false
	}
	fn, known := elementary[f.name]
	if !known {
		return nil, false
	}
	v, inDomain := fn(n.Float64())
	if !inDomain || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	return NFloat(v), true
}

func (f *Func) Equal(other Expr) bool {
	o, ok := other.(*Func)
	if !ok || f.name != o.name || len(f.args) != len(o.args) {
		return false
	}
	for i := range f.args {
		if !f.args[i].Equal(o.args[i]) {
			return false
		}
	}
	return true
}

func (f *Func) Hash() uint64 {
	parts := make([]uint64, 0, len(f.args)+1)
	parts = append(parts, hashOfString("name", f.name))
	for _, a := range f.args {
		parts = append(parts, a.Hash())
	}
	return hashOf("func", parts...)
}

func (f *Func) exprType() string { return "func" }
func (f *Func) toJSON() map[string]interface{} {
	as := make([]map[string]interface{}, len(f.args))
	for i, a := range f.args {
		as[i] = a.toJSON()
	}
	return map[string]interface{}{"type": "func", "name": f.name, "args": as}
}
func (f *Func) FuncName() string { return f.name }

// Args exposes the argument slice; callers must not mutate it.
func (f *Func) Args() []Expr { return f.args }

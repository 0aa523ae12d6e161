package funcs

import (
	"math"

	"github.com/solvix/solvix/expr"
	"github.com/solvix/solvix/internal/numeric"
)

// Builtin returns a registry populated with the elementary functions and
// the special functions the solver families rely on. Call it once during
// initialization and share the result.
func Builtin() *Registry {
	r := NewRegistry()
	registerElementary(r)
	registerSpecial(r)
	return r
}

func unary(f func(float64) (float64, bool)) func([]float64) (float64, bool) {
	return func(args []float64) (float64, bool) { return f(args[0]) }
}

func registerElementary(r *Registry) {
	pi := expr.Pi()

	r.Register(&Properties{
		Name: "sin", Arity: 1, Transcendental: true,
		Domain: "all reals",
		SpecialValues: map[string]expr.Expr{
			"0":      expr.N(0),
			"pi":     expr.N(0),
			"1/2*pi": expr.N(1),
		},
		Evaluator: unary(func(v float64) (float64, bool) { return math.Sin(v), true }),
	})
	r.Register(&Properties{
		Name: "cos", Arity: 1, Transcendental: true,
		Domain: "all reals",
		SpecialValues: map[string]expr.Expr{
			"0":      expr.N(1),
			"pi":     expr.N(-1),
			"1/2*pi": expr.N(0),
		},
		Evaluator: unary(func(v float64) (float64, bool) { return math.Cos(v), true }),
	})
	r.Register(&Properties{
		Name: "tan", Arity: 1, Transcendental: true,
		Domain: "reals except odd multiples of pi/2",
		SpecialValues: map[string]expr.Expr{
			"0":  expr.N(0),
			"pi": expr.N(0),
		},
		Evaluator: unary(func(v float64) (float64, bool) { return math.Tan(v), true }),
	})
	r.Register(&Properties{
		Name: "exp", Arity: 1, Transcendental: true,
		Domain: "all reals",
		SpecialValues: map[string]expr.Expr{
			"0": expr.N(1),
			"1": expr.E(),
		},
		Evaluator: unary(func(v float64) (float64, bool) { return math.Exp(v), true }),
	})
	r.Register(&Properties{
		Name: "ln", Arity: 1, Transcendental: true,
		Domain: "positive reals",
		SpecialValues: map[string]expr.Expr{
			"1": expr.N(0),
			"e": expr.N(1),
		},
		Evaluator: unary(func(v float64) (float64, bool) { return math.Log(v), v > 0 }),
	})
	r.Register(&Properties{
		Name: "abs", Arity: 1,
		Domain:    "all reals",
		Evaluator: unary(func(v float64) (float64, bool) { return math.Abs(v), true }),
	})
	r.Register(&Properties{
		Name: "asin", Arity: 1, Transcendental: true,
		Domain: "[-1, 1]",
		SpecialValues: map[string]expr.Expr{
			"0": expr.N(0),
			"1": expr.MulOf(expr.F(1, 2), pi),
		},
		Evaluator: unary(func(v float64) (float64, bool) { return math.Asin(v), v >= -1 && v <= 1 }),
	})
	r.Register(&Properties{
		Name: "acos", Arity: 1, Transcendental: true,
		Domain: "[-1, 1]",
		SpecialValues: map[string]expr.Expr{
			"1":  expr.N(0),
			"-1": pi,
		},
		Evaluator: unary(func(v float64) (float64, bool) { return math.Acos(v), v >= -1 && v <= 1 }),
	})
	r.Register(&Properties{
		Name: "atan", Arity: 1, Transcendental: true,
		Domain: "all reals",
		SpecialValues: map[string]expr.Expr{
			"0": expr.N(0),
			"1": expr.MulOf(expr.F(1, 4), pi),
		},
		Evaluator: unary(func(v float64) (float64, bool) { return math.Atan(v), true }),
	})
	r.Register(&Properties{
		Name: "sinh", Arity: 1, Transcendental: true,
		Domain:    "all reals",
		Evaluator: unary(func(v float64) (float64, bool) { return math.Sinh(v), true }),
	})
	r.Register(&Properties{
		Name: "cosh", Arity: 1, Transcendental: true,
		Domain:    "all reals",
		Evaluator: unary(func(v float64) (float64, bool) { return math.Cosh(v), true }),
	})
	r.Register(&Properties{
		Name: "tanh", Arity: 1, Transcendental: true,
		Domain:    "all reals",
		Evaluator: unary(func(v float64) (float64, bool) { return math.Tanh(v), true }),
	})
}

func registerSpecial(r *Registry) {
	pi := expr.Pi()

	// gamma: exact at positive integers via the factorial rule, exact at
	// 1/2, Lanczos everywhere else. Poles at zero and negative integers.
	r.Register(&Properties{
		Name: "gamma", Arity: 1, Transcendental: true,
		Domain: "reals except zero and negative integers",
		SpecialValues: map[string]expr.Expr{
			"1/2": expr.SqrtOf(pi),
		},
		ExactRule: func(args []expr.Expr) (expr.Expr, bool) {
			n, ok := args[0].(*expr.Num)
			if !ok || !n.IsInteger() || !n.IsPositive() {
				return nil, false
			}
			k := n.Int64()
			if k > 64 {
				// Still exact in principle, but let the numeric path carry
				// large arguments.
				return nil, false
			}
			return factorialExact(k - 1), true
		},
		Evaluator: unary(numeric.Gamma),
	})

	// beta evaluates through gamma via the registry; the dependency is
	// one-way and acyclic.
	r.Register(&Properties{
		Name: "beta", Arity: 2, Transcendental: true,
		Domain: "arguments away from the gamma poles",
		ExactRule: func(args []expr.Expr) (expr.Expr, bool) {
			a, okA := args[0].(*expr.Num)
			b, okB := args[1].(*expr.Num)
			if !okA || !okB || !a.IsInteger() || !b.IsInteger() || !a.IsPositive() || !b.IsPositive() {
				return nil, false
			}
			ai, bi := a.Int64(), b.Int64()
			if ai+bi > 64 {
				return nil, false
			}
			num := expr.NumMul(factorialExact(ai-1), factorialExact(bi-1))
			return expr.NumDiv(num, factorialExact(ai+bi-1)), true
		},
		Evaluator: func(args []float64) (float64, bool) {
			ga, ok1 := r.EvaluateNumeric("gamma", args[0])
			gb, ok2 := r.EvaluateNumeric("gamma", args[1])
			gab, ok3 := r.EvaluateNumeric("gamma", args[0]+args[1])
			if !ok1 || !ok2 || !ok3 || gab == 0 {
				return math.NaN(), false
			}
			return ga * gb / gab, true
		},
	})

	r.Register(&Properties{
		Name: "zeta", Arity: 1, Transcendental: true,
		Domain: "reals greater than 1 (pole at 1)",
		SpecialValues: map[string]expr.Expr{
			"0":  expr.F(-1, 2),
			"-1": expr.F(-1, 12),
			"2":  expr.MulOf(expr.F(1, 6), expr.PowOf(pi, expr.N(2))),
			"4":  expr.MulOf(expr.F(1, 90), expr.PowOf(pi, expr.N(4))),
		},
		Evaluator: unary(numeric.Zeta),
	})

	// factorial is gamma shifted by one; the numeric path goes through the
	// registry the same way beta does.
	r.Register(&Properties{
		Name: "factorial", Arity: 1, Transcendental: true,
		Domain: "reals except negative integers",
		ExactRule: func(args []expr.Expr) (expr.Expr, bool) {
			n, ok := args[0].(*expr.Num)
			if !ok || !n.IsInteger() || n.IsNegative() {
				return nil, false
			}
			k := n.Int64()
			if k > 64 {
				return nil, false
			}
			return factorialExact(k), true
		},
		Evaluator: func(args []float64) (float64, bool) {
			return r.EvaluateNumeric("gamma", args[0]+1)
		},
	})
}

// factorialExact computes k! as an exact literal; k! for k < 0 never
// reaches here.
func factorialExact(k int64) *expr.Num {
	acc := expr.N(1)
	for i := int64(2); i <= k; i++ {
		acc = expr.NumMul(acc, expr.N(i))
	}
	return acc
}

// Package solve routes equations to solver families and reports honest
// outcomes. Every equation is classified first, then dispatched; a family
// that cannot finish returns Partial or Unsupported, never a fabricated
// NoSolution.
package solve

import (
	"math"

	"github.com/solvix/solvix/classify"
	"github.com/solvix/solvix/explain"
	"github.com/solvix/solvix/expr"
	"github.com/solvix/solvix/funcs"
	"github.com/solvix/solvix/internal/numeric"
)

// Solver is the solving surface the engine exposes; callers that only
// dispatch equations can hold this instead of a concrete *Engine.
type Solver interface {
	// Solve returns the outcome for eq in variable v.
	Solve(eq *expr.Equation, v *expr.Sym) Result
	// SolveWithExplanation does the same while appending steps to trail.
	SolveWithExplanation(eq *expr.Equation, v *expr.Sym, trail *explain.Explanation) Result
	// CanSolve reports whether an algorithm exists for equations of type t.
	CanSolve(t classify.EquationType) bool
	// CanSolveEquation classifies eq and reports whether a solver family
	// covers it.
	CanSolveEquation(eq *expr.Equation, v *expr.Sym) bool
}

var _ Solver = (*Engine)(nil)

// Engine classifies an equation and dispatches it to the matching family.
// It is safe for concurrent use once constructed.
type Engine struct {
	classifier *classify.Classifier
	reg        *funcs.Registry
	scan       numeric.ScanConfig
}

// NewEngine builds an engine over reg. scan controls the numeric root
// search used by the transcendental family.
func NewEngine(reg *funcs.Registry, scan numeric.ScanConfig) *Engine {
	return &Engine{
		classifier: classify.New(reg),
		reg:        reg,
		scan:       scan.Normalized(),
	}
}

// Classifier exposes the engine's classifier for callers that only want
// the tag.
func (e *Engine) Classifier() *classify.Classifier { return e.classifier }

// CanSolve reports whether the engine has an algorithm for t. Partial
// outcomes still count: a family exists even when it cannot always finish.
func (e *Engine) CanSolve(t classify.EquationType) bool {
	switch t {
	case classify.PartialDifferential, classify.Unknown:
		return false
	}
	return true
}

// CanSolveEquation classifies eq and reports whether a solver family
// covers it.
func (e *Engine) CanSolveEquation(eq *expr.Equation, v *expr.Sym) bool {
	return e.CanSolve(e.classifier.Classify(eq, v))
}

// Solve classifies eq and dispatches to the matching family.
func (e *Engine) Solve(eq *expr.Equation, v *expr.Sym) Result {
	return e.SolveWithExplanation(eq, v, explain.New())
}

// SolveWithExplanation is Solve with a step trail. The classification step
// is always the first entry, whatever family runs afterwards.
func (e *Engine) SolveWithExplanation(eq *expr.Equation, v *expr.Sym, trail *explain.Explanation) Result {
	t := e.classifier.Classify(eq, v)
	trail.Add("Classified equation", "recognized as "+t.String())

	switch t {
	case classify.Constant:
		return solveConstant(eq, trail)
	case classify.Linear:
		return solveLinear(eq, v, trail)
	case classify.Quadratic:
		return solveQuadratic(eq, v, trail)
	case classify.Cubic:
		return e.solveCubic(eq, v, trail)
	case classify.Quartic:
		return e.solveQuartic(eq, v, trail)
	case classify.Transcendental:
		return e.solveTranscendental(eq, v, trail)
	case classify.Matrix:
		return solveMatrix(eq, v, trail)
	case classify.OrdinaryDifferential:
		return solveODE(eq, v, trail)
	case classify.PolynomialSystem, classify.GeneralSystem:
		trail.Add("Stopped", "single equation in several unknowns is underdetermined")
		return PartialWith("underdetermined: "+eq.String(), eq.Residual())
	case classify.PartialDifferential:
		trail.Add("Stopped", "no algorithm for partial differential equations")
		return NotSupported("partial differential equations are not supported")
	}
	trail.Add("Stopped", "equation fits no known family")
	return NotSupported("no solver family matches " + eq.String())
}

// SolveSystem solves a set of simultaneous equations for vars.
func (e *Engine) SolveSystem(eqs []*expr.Equation, vars []*expr.Sym) Result {
	return e.SolveSystemWithExplanation(eqs, vars, explain.New())
}

// SolveSystemWithExplanation is SolveSystem with a step trail.
func (e *Engine) SolveSystemWithExplanation(eqs []*expr.Equation, vars []*expr.Sym, trail *explain.Explanation) Result {
	t := e.classifier.ClassifySystem(eqs, vars)
	trail.Add("Classified system", "recognized as "+t.String())
	return solveSystem(eqs, vars, t, trail)
}

// Verify substitutes value for varName in eq and reports the numeric
// residual magnitude. ok is false when the residual cannot be evaluated
// numerically.
func (e *Engine) Verify(eq *expr.Equation, varName string, value expr.Expr) (float64, bool) {
	residual := eq.Residual().Sub(varName, value).Simplify()
	if n, ok := residual.(*expr.Num); ok {
		return math.Abs(n.Float64()), true
	}
	r, ok := e.evalNumeric(residual, "", 0)
	if !ok {
		return 0, false
	}
	return math.Abs(r), true
}

// evalNumeric evaluates e as a float64, substituting x for the symbol
// named varName and resolving function applications through the registry.
func (e *Engine) evalNumeric(ex expr.Expr, varName string, x float64) (float64, bool) {
	switch v := ex.(type) {
	case *expr.Num:
		return v.Float64(), true
	case *expr.Const:
		n, ok := v.Eval()
		if !ok {
			return 0, false
		}
		return n.Float64(), true
	case *expr.Sym:
		if v.Name() == varName {
			return x, true
		}
		return 0, false
	case *expr.Add:
		sum := 0.0
		for _, t := range v.Terms() {
			f, ok := e.evalNumeric(t, varName, x)
			if !ok {
				return 0, false
			}
			sum += f
		}
		return sum, true
	case *expr.Mul:
		prod := 1.0
		for _, fac := range v.Factors() {
			f, ok := e.evalNumeric(fac, varName, x)
			if !ok {
				return 0, false
			}
			prod *= f
		}
		return prod, true
	case *expr.Pow:
		base, ok := e.evalNumeric(v.Base(), varName, x)
		if !ok {
			return 0, false
		}
		exp, ok := e.evalNumeric(v.ExpExpr(), varName, x)
		if !ok {
			return 0, false
		}
		r := math.Pow(base, exp)
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return 0, false
		}
		return r, true
	case *expr.Func:
		args := make([]float64, len(v.Args()))
		for i, a := range v.Args() {
			f, ok := e.evalNumeric(a, varName, x)
			if !ok {
				return 0, false
			}
			args[i] = f
		}
		return e.reg.EvaluateNumeric(v.FuncName(), args...)
	}
	return 0, false
}

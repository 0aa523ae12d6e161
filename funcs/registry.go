// Package funcs is the function property registry: the single source of
// truth mapping a function name to its mathematical metadata and numeric
// evaluator. A registry is populated once at initialization and read-only
// afterward, so concurrent callers can share one instance without locks.
package funcs

import (
	"fmt"
	"math"
	"strings"

	"github.com/solvix/solvix/expr"
)

// ResultKind tags an evaluation outcome.
type ResultKind int

const (
	// Unevaluated means the registry has nothing to say: unknown name,
	// symbolic arguments, or an arity the function does not take.
	Unevaluated ResultKind = iota
	// Exact carries a closed-form expression.
	Exact
	// Numeric carries a floating approximation.
	Numeric
	// Undefined is the sentinel for poles and out-of-domain numeric input.
	// It is a value, not an error, so batch evaluation is never interrupted.
	Undefined
)

func (k ResultKind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Numeric:
		return "numeric"
	case Undefined:
		return "undefined"
	}
	return "unevaluated"
}

// Evaluation is the result of Registry.Evaluate.
type Evaluation struct {
	Kind  ResultKind
	Exact expr.Expr // set when Kind == Exact
	Value float64   // set when Kind == Numeric
}

func exact(e expr.Expr) Evaluation {
	return Evaluation{Kind: Exact, Exact: e}
}

func numericOf(v float64) Evaluation {
	return Evaluation{Kind: Numeric, Value: v}
}

var undefined = Evaluation{Kind: Undefined, Value: math.NaN()}
var unevaluated = Evaluation{Kind: Unevaluated}

// Properties records the registered metadata of one named function.
//
// Evaluators may evaluate other registered names through the registry
// (beta is defined through gamma) but must not form a call cycle; the
// function set is fixed at build time and acyclicity is covered by the
// tests that accompany each registered function.
type Properties struct {
	Name string
	// Arity is the exact argument count the function takes.
	Arity int
	// Transcendental marks functions whose application to the unknown
	// makes an equation non-algebraic. The classifier reads this flag
	// instead of matching names.
	Transcendental bool
	// Domain documents the real domain constraint, for diagnostics.
	Domain string
	// SpecialValues maps the canonical string of the simplified argument
	// list to an exact closed form. Checked before everything else.
	SpecialValues map[string]expr.Expr
	// ExactRule covers families of exact values a fixed table cannot
	// enumerate (gamma at every positive integer).
	ExactRule func(args []expr.Expr) (expr.Expr, bool)
	// Evaluator is the numeric kernel. ok=false means a pole or
	// out-of-domain input.
	Evaluator func(args []float64) (float64, bool)
}

// Registry is an append-only name -> Properties table with O(1) lookup.
type Registry struct {
	table map[string]*Properties
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{table: map[string]*Properties{}}
}

// Register inserts once. Re-registering a name is a programming error and
// fatal at initialization, not a runtime condition.
func (r *Registry) Register(p *Properties) {
	if p == nil || p.Name == "" {
		panic("solvix: Register requires a named Properties value")
	}
	if _, exists := r.table[p.Name]; exists {
		panic(fmt.Sprintf("solvix: function %q registered twice", p.Name))
	}
	r.table[p.Name] = p
}

// Lookup never fails; absence means no intelligence is available and the
// function is treated as opaque.
func (r *Registry) Lookup(name string) (*Properties, bool) {
	p, ok := r.table[name]
	return p, ok
}

// Len reports the number of registered functions.
func (r *Registry) Len() int { return len(r.table) }

// Evaluate resolves name applied to args. Exact special values are checked
// before the numeric evaluator; this order is mandatory so closed forms are
// never shadowed by approximation.
func (r *Registry) Evaluate(name string, args ...expr.Expr) Evaluation {
	p, ok := r.table[name]
	if !ok {
		return unevaluated
	}
	if p.Arity != len(args) {
		return unevaluated
	}
	simplified := make([]expr.Expr, len(args))
	for i, a := range args {
		simplified[i] = a.Simplify()
	}

	if len(p.SpecialValues) > 0 {
		if v, hit := p.SpecialValues[argsKey(simplified)]; hit {
			return exact(v)
		}
	}
	if p.ExactRule != nil {
		if v, hit := p.ExactRule(simplified); hit {
			return exact(v)
		}
	}
	if p.Evaluator == nil {
		return unevaluated
	}

	floats := make([]float64, len(simplified))
	for i, a := range simplified {
		n, numeric := a.Eval()
		if !numeric {
			return unevaluated
		}
		f := n.Float64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return undefined
		}
		floats[i] = f
	}
	v, inDomain := p.Evaluator(floats)
	if !inDomain || math.IsNaN(v) || math.IsInf(v, 0) {
		return undefined
	}
	return numericOf(v)
}

// EvaluateNumeric is the float-only fast path evaluators use to call each
// other through the registry.
func (r *Registry) EvaluateNumeric(name string, args ...float64) (float64, bool) {
	p, ok := r.table[name]
	if !ok || p.Evaluator == nil || p.Arity != len(args) {
		return math.NaN(), false
	}
	for _, f := range args {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return math.NaN(), false
		}
	}
	v, inDomain := p.Evaluator(args)
	if !inDomain || math.IsNaN(v) || math.IsInf(v, 0) {
		return math.NaN(), false
	}
	return v, true
}

func argsKey(args []expr.Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}

package solve

import (
	"strings"

	"github.com/solvix/solvix/expr"
)

// ResultKind distinguishes the five possible outcomes of a solve call.
type ResultKind int

const (
	// Solutions carries one or more explicit solutions.
	Solutions ResultKind = iota
	// NoSolution means the equation is proven inconsistent. It is never
	// used for "we gave up"; that is Unsupported.
	NoSolution
	// Partial carries intermediate artifacts (a reduced basis, a candidate
	// set) when full solutions are out of reach.
	Partial
	// Infinite means every value of the variable satisfies the equation.
	Infinite
	// Unsupported means no solver family covers the equation.
	Unsupported
)

func (k ResultKind) String() string {
	switch k {
	case Solutions:
		return "Solutions"
	case NoSolution:
		return "NoSolution"
	case Partial:
		return "Partial"
	case Infinite:
		return "Infinite"
	}
	return "Unsupported"
}

// Result is the outcome of a solve call. Values is populated for Solutions
// and Partial, and carries the parametric relations of a dependent system
// for Infinite; Note holds a human-readable diagnostic for Partial,
// NoSolution and Unsupported.
type Result struct {
	Kind   ResultKind
	Values []expr.Expr
	Note   string
}

// Found wraps explicit solutions.
func Found(values ...expr.Expr) Result {
	return Result{Kind: Solutions, Values: values}
}

// None reports a proven inconsistency.
func None(note string) Result { return Result{Kind: NoSolution, Note: note} }

// PartialWith carries intermediate artifacts forward.
func PartialWith(note string, values ...expr.Expr) Result {
	return Result{Kind: Partial, Values: values, Note: note}
}

// AllValues reports that every value satisfies the equation.
func AllValues() Result { return Result{Kind: Infinite} }

// NotSupported reports that no algorithm covers the equation.
func NotSupported(note string) Result { return Result{Kind: Unsupported, Note: note} }

func (r Result) String() string {
	if len(r.Values) == 0 {
		if r.Note != "" {
			return r.Kind.String() + " (" + r.Note + ")"
		}
		return r.Kind.String()
	}
	parts := make([]string, len(r.Values))
	for i, v := range r.Values {
		parts[i] = v.String()
	}
	return r.Kind.String() + " [" + strings.Join(parts, ", ") + "]"
}

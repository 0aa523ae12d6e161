// Package expr provides the immutable expression tree every other part of
// the engine operates on.
//
// Design goals:
//   - Exact rational arithmetic (math/big.Rat)
//   - Deterministic simplification and stable output
//   - Constructors never fail; only evaluation can
//   - Structural equality and hashing
package expr

import "hash/fnv"

// Expr is an immutable symbolic expression node.
//
// Constructors (AddOf, MulOf, PowOf, FuncOf, ...) fold trivial cases at
// build time and always succeed. Eval is the only operation that can come
// up empty: it reports false when the tree is not fully numeric or hits a
// domain error such as division by zero.
type Expr interface {
	Simplify() Expr
	String() string
	LaTeX() string
	Sub(varName string, value Expr) Expr
	Diff(varName string) Expr
	Eval() (*Num, bool)
	Equal(other Expr) bool
	Hash() uint64
	exprType() string
	toJSON() map[string]interface{}
}

func hashOf(tag string, parts ...uint64) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(tag))
	var buf [8]byte
	for _, p := range parts {
		for i := 0; i < 8; i++ {
			buf[i] = byte(p >> (8 * i))
		}
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

func hashOfString(tag, s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(tag))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

func isNumEqual(e Expr, v int64) bool {
	n, ok := e.(*Num)
	return ok && n.Equal(N(v))
}

// Noncommutative reports whether e contains a symbol whose kind does not
// commute under multiplication. Products containing such symbols keep
// their factor order.
func Noncommutative(e Expr) bool {
	switch v := e.(type) {
	case *Sym:
		return !v.kind.Commutative()
	case *Add:
		for _, t := range v.terms {
			if Noncommutative(t) {
				return true
			}
		}
	case *Mul:
		for _, f := range v.factors {
			if Noncommutative(f) {
				return true
			}
		}
	case *Pow:
		return Noncommutative(v.base) || Noncommutative(v.exp)
	case *Func:
		for _, a := range v.args {
			if Noncommutative(a) {
				return true
			}
		}
	case *Derivative:
		return Noncommutative(v.fn)
	}
	return false
}

// FreeSymbols returns the set of symbols occurring in e, keyed by name.
func FreeSymbols(e Expr) map[string]*Sym {
	out := map[string]*Sym{}
	collectSymbols(e, out)
	return out
}

func collectSymbols(e Expr, out map[string]*Sym) {
	switch v := e.(type) {
	case *Sym:
		out[v.name] = v
	case *Add:
		for _, t := range v.terms {
			collectSymbols(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			collectSymbols(f, out)
		}
	case *Pow:
		collectSymbols(v.base, out)
		collectSymbols(v.exp, out)
	case *Func:
		for _, a := range v.args {
			collectSymbols(a, out)
		}
	case *Derivative:
		collectSymbols(v.fn, out)
	}
}

// Contains reports whether varName occurs free anywhere in e, including
// as an independent variable of a derivative marker.
func Contains(e Expr, varName string) bool {
	switch v := e.(type) {
	case *Sym:
		return v.name == varName
	case *Add:
		for _, t := range v.terms {
			if Contains(t, varName) {
				return true
			}
		}
	case *Mul:
		for _, f := range v.factors {
			if Contains(f, varName) {
				return true
			}
		}
	case *Pow:
		return Contains(v.base, varName) || Contains(v.exp, varName)
	case *Func:
		for _, a := range v.args {
			if Contains(a, varName) {
				return true
			}
		}
	case *Derivative:
		for _, w := range v.wrt {
			if w == varName {
				return true
			}
		}
		return Contains(v.fn, varName)
	}
	return false
}

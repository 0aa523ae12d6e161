package expr

import (
	"fmt"
	"math/big"
)

// Num is an exact rational literal.
type Num struct{ val *big.Rat }

// N builds an integer literal.
func N(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }

// F builds the fraction p/q. A zero denominator is a programming error.
func F(p, q int64) *Num {
	if q == 0 {
		panic("solvix: denominator is zero")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// NFloat builds the nearest exact rational to f.
func NFloat(f float64) *Num { return &Num{val: new(big.Rat).SetFloat64(f)} }

// NRat copies r into a literal.
func NRat(r *big.Rat) *Num { return &Num{val: new(big.Rat).Set(r)} }

func (n *Num) Simplify() Expr        { return n }
func (n *Num) Sub(string, Expr) Expr { return n }
func (n *Num) Diff(string) Expr      { return N(0) }
func (n *Num) Eval() (*Num, bool)    { return n, true }
func (n *Num) Equal(other Expr) bool { o, ok := other.(*Num); return ok && n.val.Cmp(o.val) == 0 }
func (n *Num) Hash() uint64          { return hashOfString("num", n.val.RatString()) }
func (n *Num) exprType() string      { return "num" }
func (n *Num) Float64() float64      { f, _ := n.val.Float64(); return f }
func (n *Num) IsZero() bool          { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool           { return n.val.Cmp(new(big.Rat).SetInt64(1)) == 0 }
func (n *Num) IsNegOne() bool        { return n.val.Cmp(new(big.Rat).SetInt64(-1)) == 0 }
func (n *Num) IsInteger() bool       { return n.val.IsInt() }
func (n *Num) Rat() *big.Rat         { return new(big.Rat).Set(n.val) }
func (n *Num) IsPositive() bool      { return n.val.Sign() > 0 }
func (n *Num) IsNegative() bool      { return n.val.Sign() < 0 }

// Int64 returns the numerator for integer values; callers must check
// IsInteger first.
func (n *Num) Int64() int64 { return n.val.Num().Int64() }

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func (n *Num) LaTeX() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(n.val)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return fmt.Sprintf("%s\\frac{%s}{%s}", sign, v.Num().String(), v.Denom().String())
}

func (n *Num) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "num", "value": n.String()}
}

func NumAdd(a, b *Num) *Num { return &Num{val: new(big.Rat).Add(a.val, b.val)} }
func NumSub(a, b *Num) *Num { return &Num{val: new(big.Rat).Sub(a.val, b.val)} }
func NumMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }
func NumNeg(a *Num) *Num    { return &Num{val: new(big.Rat).Neg(a.val)} }

// NumRecip inverts a. Inverting zero is a programming error; the evaluation
// paths guard against it before calling.
func NumRecip(a *Num) *Num {
	if a.IsZero() {
		panic("solvix: division by zero")
	}
	return &Num{val: new(big.Rat).Inv(a.val)}
}

func NumDiv(a, b *Num) *Num { return NumMul(a, NumRecip(b)) }

func NumAbs(a *Num) *Num {
	r := new(big.Rat).Set(a.val)
	if r.Sign() < 0 {
		r.Neg(r)
	}
	return &Num{val: r}
}

func NumCmp(a, b *Num) int { return a.val.Cmp(b.val) }

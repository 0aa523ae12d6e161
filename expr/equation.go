package expr

// Equation is LHS = RHS, held unsolved.
type Equation struct{ LHS, RHS Expr }

// Eq pairs two expressions into an equation.
func Eq(lhs, rhs Expr) *Equation { return &Equation{LHS: lhs, RHS: rhs} }

func (e *Equation) String() string { return e.LHS.String() + " = " + e.RHS.String() }
func (e *Equation) LaTeX() string  { return e.LHS.LaTeX() + " = " + e.RHS.LaTeX() }

// Residual moves everything to the left side: LHS - RHS, simplified.
func (e *Equation) Residual() Expr {
	return AddOf(e.LHS, MulOf(N(-1), e.RHS)).Simplify()
}

func (e *Equation) Equal(other *Equation) bool {
	return e.LHS.Equal(other.LHS) && e.RHS.Equal(other.RHS)
}

func (e *Equation) Hash() uint64 {
	return hashOf("eq", e.LHS.Hash(), e.RHS.Hash())
}

package expr

// Simplify, Sub and Diff as free functions, for callers that hold the
// interface value.
func Simplify(e Expr) Expr { return e.Simplify() }

func Sub(e Expr, varName string, value Expr) Expr {
	return e.Sub(varName, value).Simplify()
}

func Diff(e Expr, varName string) Expr {
	return e.Diff(varName).Simplify()
}

// Integrate antidifferentiates e with respect to varName using the rule
// table below. ok is false when no rule applies; callers treat that as
// "this family cannot finish", never as a hard error.
func Integrate(e Expr, varName string) (Expr, bool) {
	e = e.Simplify()
	switch v := e.(type) {
	case *Num:
		return MulOf(v, S(varName)), true
	case *Const:
		return MulOf(v, S(varName)), true
	case *Sym:
		if v.name == varName {
			return MulOf(F(1, 2), PowOf(S(varName), N(2))), true
		}
		return MulOf(v, S(varName)), true
	case *Pow:
		if sym, ok := v.base.(*Sym); ok && sym.name == varName {
			if n, ok2 := v.exp.(*Num); ok2 {
				if n.IsNegOne() {
					return LnOf(AbsOf(S(varName))), true
				}
				newExp := NumAdd(n, N(1))
				return MulOf(NumRecip(newExp), PowOf(S(varName), newExp)), true
			}
		}
		if sym, ok := v.exp.(*Sym); ok && sym.name == varName {
			if _, ok2 := v.base.(*Num); ok2 {
				return MulOf(PowOf(v.base, S(varName)), PowOf(LnOf(v.base), N(-1))), true
			}
		}
		return nil, false
	case *Mul:
		coeff := N(1)
		rest := []Expr{}
		for _, f := range v.factors {
			if n, ok := f.(*Num); ok {
				coeff = NumMul(coeff, n)
			} else {
				rest = append(rest, f)
			}
		}
		var inner Expr
		switch len(rest) {
		case 0:
			inner = N(1)
		case 1:
			inner = rest[0]
		default:
			inner = &Mul{factors: rest}
		}
		intInner, ok := Integrate(inner, varName)
		if !ok {
			return nil, false
		}
		return MulOf(coeff, intInner).Simplify(), true
	case *Add:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			intT, ok := Integrate(t, varName)
			if !ok {
				return nil, false
			}
			terms[i] = intT
		}
		return AddOf(terms...).Simplify(), true
	case *Func:
		return integrateFunc(v, varName)
	}
	return nil, false
}

func integrateFunc(f *Func, varName string) (Expr, bool) {
	if len(f.args) != 1 {
		return nil, false
	}
	arg := f.args[0]

	// linearArg matches c*x (or plain x) and returns the coefficient.
	linearArg := func() (*Num, bool) {
		if sym, ok := arg.(*Sym); ok && sym.name == varName {
			return N(1), true
		}
		if m, ok := arg.(*Mul); ok && len(m.factors) == 2 {
			if coeff, ok2 := m.factors[0].(*Num); ok2 {
				if sym, ok3 := m.factors[1].(*Sym); ok3 && sym.name == varName {
					return coeff, true
				}
			}
		}
		return nil, false
	}

	switch f.name {
	case "sin":
		if c, ok := linearArg(); ok {
			return MulOf(N(-1), NumRecip(c), CosOf(arg)), true
		}
	case "cos":
		if c, ok := linearArg(); ok {
			return MulOf(NumRecip(c), SinOf(arg)), true
		}
	case "exp":
		if c, ok := linearArg(); ok {
			return MulOf(NumRecip(c), ExpOf(arg)), true
		}
	case "ln":
		if sym, ok := arg.(*Sym); ok && sym.name == varName {
			return AddOf(MulOf(S(varName), LnOf(S(varName))), MulOf(N(-1), S(varName))), true
		}
	case "asin":
		if sym, ok := arg.(*Sym); ok && sym.name == varName {
			return AddOf(
				MulOf(S(varName), AsinOf(S(varName))),
				SqrtOf(AddOf(N(1), MulOf(N(-1), PowOf(S(varName), N(2))))),
			), true
		}
	case "atan":
		if sym, ok := arg.(*Sym); ok && sym.name == varName {
			return AddOf(
				MulOf(S(varName), AtanOf(S(varName))),
				MulOf(N(-1), F(1, 2), LnOf(AddOf(N(1), PowOf(S(varName), N(2))))),
			), true
		}
	}
	return nil, false
}

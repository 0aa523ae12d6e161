package expr

// Kind tags the algebraic nature of a symbol. It drives commutativity
// decisions during canonicalization and classification and is never
// inferred from the symbol's name text.
type Kind uint8

const (
	// ScalarKind is an ordinary commuting scalar.
	ScalarKind Kind = iota
	// MatrixKind marks a matrix-valued symbol.
	MatrixKind
	// OperatorKind marks a linear operator.
	OperatorKind
	// AlgebraKind marks any other noncommutative algebra element.
	AlgebraKind
)

// Commutative reports whether symbols of this kind commute under
// multiplication.
func (k Kind) Commutative() bool { return k == ScalarKind }

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case MatrixKind:
		return "matrix"
	case OperatorKind:
		return "operator"
	case AlgebraKind:
		return "algebra"
	}
	return "scalar"
}

// KindFromString maps the wire spelling back to a Kind. Unknown spellings
// default to scalar, keeping deserialization total.
func KindFromString(s string) Kind {
	switch s {
	case "matrix":
		return MatrixKind
	case "operator":
		return OperatorKind
	case "algebra":
		return AlgebraKind
	}
	return ScalarKind
}

// Sym is a named leaf. Two symbols are equal iff name and kind match.
type Sym struct {
	name string
	kind Kind
}

// S builds a scalar symbol.
func S(name string) *Sym { return &Sym{name: name, kind: ScalarKind} }

// SymOf builds a symbol with an explicit kind.
func SymOf(name string, kind Kind) *Sym { return &Sym{name: name, kind: kind} }

func (s *Sym) Simplify() Expr { return s }
func (s *Sym) String() string { return s.name }
func (s *Sym) LaTeX() string  { return s.name }
func (s *Sym) Eval() (*Num, bool) {
	return nil, false
}
func (s *Sym) Equal(other Expr) bool {
	o, ok := other.(*Sym)
	return ok && s.name == o.name && s.kind == o.kind
}
func (s *Sym) Hash() uint64     { return hashOfString("sym", s.name) ^ uint64(s.kind) }
func (s *Sym) exprType() string { return "sym" }
func (s *Sym) Name() string     { return s.name }
func (s *Sym) Kind() Kind       { return s.kind }
func (s *Sym) toJSON() map[string]interface{} {
	j := map[string]interface{}{"type": "sym", "name": s.name}
	if s.kind != ScalarKind {
		j["kind"] = s.kind.String()
	}
	return j
}

func (s *Sym) Sub(varName string, value Expr) Expr {
	if s.name == varName {
		return value
	}
	return s
}

func (s *Sym) Diff(varName string) Expr {
	if s.name == varName {
		return N(1)
	}
	return N(0)
}

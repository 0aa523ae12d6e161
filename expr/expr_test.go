package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumExactArithmetic(t *testing.T) {
	sum := AddOf(F(1, 3), F(1, 6))
	assert.True(t, sum.Equal(F(1, 2)))

	prod := MulOf(F(2, 3), F(3, 4))
	assert.True(t, prod.Equal(F(1, 2)))

	assert.True(t, PowOf(N(2), N(10)).Equal(N(1024)))
}

func TestAddFoldsLikeTerms(t *testing.T) {
	x := S("x")

	assert.True(t, AddOf(x, x).Equal(MulOf(N(2), x)))
	assert.True(t, AddOf(x, MulOf(N(-1), x)).Equal(N(0)))
	assert.True(t, AddOf(MulOf(N(2), x), MulOf(N(-2), x), N(5)).Equal(N(5)))

	// Like terms beyond bare symbols fold too.
	sq := PowOf(x, N(2))
	assert.True(t, AddOf(sq, MulOf(N(3), sq)).Equal(MulOf(N(4), sq)))
}

func TestMulOrdering(t *testing.T) {
	a, b := S("a"), S("b")
	assert.True(t, MulOf(b, a).Equal(MulOf(a, b)))

	// Noncommutative factors keep their order.
	A := SymOf("A", MatrixKind)
	B := SymOf("B", MatrixKind)
	assert.False(t, MulOf(A, B).Equal(MulOf(B, A)))

	// Scalars still move out front past matrix symbols.
	assert.True(t, MulOf(A, N(2)).Equal(MulOf(N(2), A)))
}

func TestSubAndDiff(t *testing.T) {
	x := S("x")
	e := AddOf(PowOf(x, N(2)), MulOf(N(3), x))

	at2 := e.Sub("x", N(2)).Simplify()
	assert.True(t, at2.Equal(N(10)))

	d := e.Diff("x").Simplify()
	assert.True(t, d.Equal(AddOf(MulOf(N(2), x), N(3))))
}

func TestDegree(t *testing.T) {
	x := S("x")

	deg, ok := Degree(AddOf(PowOf(x, N(2)), MulOf(N(-5), x), N(6)), "x")
	require.True(t, ok)
	assert.Equal(t, 2, deg)

	deg, ok = Degree(N(7), "x")
	require.True(t, ok)
	assert.Equal(t, 0, deg)

	_, ok = Degree(SinOf(x), "x")
	assert.False(t, ok)

	_, ok = Degree(PowOf(x, F(1, 2)), "x")
	assert.False(t, ok)

	// The variable inside a derivative marker is not polynomial.
	_, ok = Degree(DerivOf(S("y"), "x"), "x")
	assert.False(t, ok)
}

func TestPolyCoeffs(t *testing.T) {
	x := S("x")
	cs := PolyCoeffsOf(AddOf(PowOf(AddOf(x, N(1)), N(2)), MulOf(N(-1), x)), "x")

	assert.True(t, cs.Coeff(2).Equal(N(1)))
	assert.True(t, cs.Coeff(1).Equal(N(1)))
	assert.True(t, cs.Coeff(0).Equal(N(1)))
}

func TestConstEval(t *testing.T) {
	n, ok := Pi().Eval()
	require.True(t, ok)
	assert.InDelta(t, 3.14159265, n.Float64(), 1e-8)

	// Closed forms stay closed under Simplify.
	e := MulOf(F(1, 6), PowOf(Pi(), N(2)))
	_, isNum := e.Simplify().(*Num)
	assert.False(t, isNum)
}

func TestContainsSeesDerivativeBinders(t *testing.T) {
	y := S("y")
	d := DerivOf(y, "x")

	assert.True(t, Contains(d, "x"))
	assert.True(t, Contains(d, "y"))
	assert.False(t, Contains(d, "z"))
	assert.True(t, Contains(AddOf(d, N(1)), "x"))
}

func TestDerivativeMarkers(t *testing.T) {
	y := S("y")
	e := AddOf(DerivOf(y, "x"), MulOf(N(-1), y))

	markers := DerivativeMarkers(e)
	require.Len(t, markers, 1)
	assert.Equal(t, []string{"x"}, markers[0].Wrt())

	assert.Empty(t, DerivativeMarkers(AddOf(S("x"), N(1))))
}

func TestDiffProducesMarkerForUnknownFunctions(t *testing.T) {
	x := S("x")
	d := FuncOf("f", x).Diff("x").Simplify()

	require.Len(t, DerivativeMarkers(d), 1)

	// Functions free of the variable differentiate to zero.
	assert.True(t, GammaOf(S("y")).Diff("x").Simplify().Equal(N(0)))
}

func TestIntegrate(t *testing.T) {
	x := S("x")

	got, ok := Integrate(MulOf(N(2), x), "x")
	require.True(t, ok)
	assert.True(t, got.Equal(PowOf(x, N(2))))

	got, ok = Integrate(CosOf(x), "x")
	require.True(t, ok)
	assert.True(t, got.Equal(SinOf(x)))

	got, ok = Integrate(PowOf(x, N(-1)), "x")
	require.True(t, ok)
	assert.True(t, got.Equal(LnOf(AbsOf(x))))

	_, ok = Integrate(GammaOf(x), "x")
	assert.False(t, ok)
}

func TestEquationResidual(t *testing.T) {
	x := S("x")
	eq := Eq(AddOf(MulOf(N(2), x), N(4)), N(0))
	assert.True(t, eq.Residual().Equal(AddOf(MulOf(N(2), x), N(4))))

	same := Eq(x, x)
	assert.True(t, same.Residual().Equal(N(0)))
}

func TestMatrixArithmetic(t *testing.T) {
	m := MatrixFromSlice(2, 2, []Expr{N(1), N(2), N(3), N(4)})

	assert.True(t, m.Det().Simplify().Equal(N(-2)))

	inv, err := m.Inverse()
	require.NoError(t, err)
	id := m.MatMul(inv)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := N(0)
			if i == j {
				want = N(1)
			}
			assert.True(t, id.Get(i, j).Simplify().Equal(want), "entry %d,%d", i, j)
		}
	}

	singular := MatrixFromSlice(2, 2, []Expr{N(1), N(2), N(2), N(4)})
	_, err = singular.Inverse()
	assert.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	x := S("x")
	e := AddOf(PowOf(x, N(2)), MulOf(F(-5, 1), x), SinOf(x), DerivOf(S("y"), "t"))

	data, err := ToJSON(e)
	require.NoError(t, err)

	back, err := ParseJSON([]byte(data))
	require.NoError(t, err)
	assert.True(t, back.Simplify().Equal(e.Simplify()))

	// Symbol kinds survive the trip.
	A := SymOf("A", MatrixKind)
	data, err = ToJSON(A)
	require.NoError(t, err)
	back, err = ParseJSON([]byte(data))
	require.NoError(t, err)
	sym, ok := back.(*Sym)
	require.True(t, ok)
	assert.Equal(t, MatrixKind, sym.Kind())

	_, err = ParseJSON([]byte(`{"type":"nope"}`))
	assert.Error(t, err)
}

func TestHashAgreesOnEqualTrees(t *testing.T) {
	x := S("x")

	// Two construction routes to the same tree hash identically.
	a := AddOf(N(3), x, x)
	b := AddOf(MulOf(N(2), S("x")), N(3))
	require.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	c := PowOf(AddOf(x, N(1)), N(2))
	d := PowOf(AddOf(N(1), S("x")), N(2))
	require.True(t, c.Equal(d))
	assert.Equal(t, c.Hash(), d.Hash())

	// Structurally different trees keep distinct hashes.
	distinct := []Expr{
		x, S("y"), N(2), F(1, 2), Pi(),
		AddOf(x, N(1)), MulOf(N(2), x), PowOf(x, N(2)),
		SinOf(x), GammaOf(x), DerivOf(S("y"), "x"),
	}
	seen := map[uint64]string{}
	for _, e := range distinct {
		h := e.Hash()
		if prev, dup := seen[h]; dup {
			t.Fatalf("hash collision between %s and %s", prev, e.String())
		}
		seen[h] = e.String()
	}
}

func TestAbsFoldsExactly(t *testing.T) {
	assert.True(t, AbsOf(N(-3)).Equal(N(3)))
	assert.True(t, AbsOf(F(-1, 3)).Equal(F(1, 3)))
	assert.True(t, AbsOf(F(2, 5)).Equal(F(2, 5)))
}

func TestCollectGroupsByDescendingPower(t *testing.T) {
	x := S("x")

	e := AddOf(MulOf(N(2), x), MulOf(N(3), x))
	assert.True(t, Collect(e, "x").Equal(MulOf(N(5), x)))

	e = Expand(MulOf(AddOf(x, N(1)), AddOf(x, N(-1))))
	assert.True(t, Collect(e, "x").Equal(AddOf(PowOf(x, N(2)), N(-1))))
}

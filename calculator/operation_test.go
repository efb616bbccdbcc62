package calculator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	for _, name := range OperationNames() {
		op, err := ParseOperation(name)
		require.NoError(t, err)
		require.Equal(t, name, op.String())
	}

	op, err := ParseOperation(" Compose ")
	require.NoError(t, err)
	require.Equal(t, Compose, op)

	_, err = ParseOperation("divide")
	require.ErrorIs(t, err, ErrUnknownOperation)
	require.Contains(t, err.Error(), "add, compose, derivative, eval, mul, plot, pow, sub")

	require.Equal(t, "Operation(42)", Operation(42).String())
}

func TestAccepts(t *testing.T) {
	require.True(t, Add.Accepts(KindPolynomial))
	require.True(t, Multiply.Accepts(KindScalar))
	require.False(t, Subtract.Accepts(KindNone))
	require.True(t, Compose.Accepts(KindPolynomial))
	require.False(t, Compose.Accepts(KindScalar))
	require.True(t, Derivative.Accepts(KindScalar))
	require.False(t, Power.Accepts(KindPolynomial))
	require.True(t, Plot.Accepts(KindNone))
	require.False(t, Operation(0).Accepts(KindPolynomial))
}

func TestOperand(t *testing.T) {
	var none Operand
	require.Equal(t, KindNone, none.Kind())
	_, ok := none.Polynomial()
	require.False(t, ok)

	require.Equal(t, KindNone, PolynomialOperand(nil).Kind())

	s := ScalarOperand(3)
	require.Equal(t, KindScalar, s.Kind())
	c, ok := s.Scalar()
	require.True(t, ok)
	require.Equal(t, int64(3), c)
	_, ok = s.Polynomial()
	require.False(t, ok)

	require.Equal(t, "polynomial", KindPolynomial.String())
	require.Equal(t, "scalar", KindScalar.String())
	require.Equal(t, "none", KindNone.String())
}

package calculator

import (
	"github.com/tuneinsight/polycalc/poly"
)

// Kind is the kind of an Operand.
type Kind int

const (
	// KindNone : no operand was provided.
	KindNone = Kind(0)
	// KindPolynomial : the operand is a polynomial.
	KindPolynomial = Kind(1)
	// KindScalar : the operand is an integer scalar.
	KindScalar = Kind(2)
)

func (k Kind) String() string {
	switch k {
	case KindPolynomial:
		return "polynomial"
	case KindScalar:
		return "scalar"
	default:
		return "none"
	}
}

// Operand is either a polynomial or a scalar argument of an Operation.
// The zero value is an empty operand of kind KindNone.
type Operand struct {
	kind   Kind
	poly   *poly.Polynomial[int64]
	scalar int64
}

// PolynomialOperand returns an operand holding p.
// A nil p yields an empty operand.
func PolynomialOperand(p *poly.Polynomial[int64]) Operand {
	if p == nil {
		return Operand{}
	}
	return Operand{kind: KindPolynomial, poly: p}
}

// ScalarOperand returns an operand holding c.
func ScalarOperand(c int64) Operand {
	return Operand{kind: KindScalar, scalar: c}
}

// Kind returns the kind of the operand.
func (op Operand) Kind() Kind {
	return op.kind
}

// Polynomial returns the polynomial held by the operand and true
// if the operand is of kind KindPolynomial.
func (op Operand) Polynomial() (*poly.Polynomial[int64], bool) {
	return op.poly, op.kind == KindPolynomial
}

// Scalar returns the scalar held by the operand and true
// if the operand is of kind KindScalar.
func (op Operand) Scalar() (int64, bool) {
	return op.scalar, op.kind == KindScalar
}

// Package poly implements single-variable polynomials with integer or real coefficients,
// stored as dense coefficient vectors, and their algebra: addition, subtraction,
// multiplication, exponentiation, composition, evaluation and differentiation.
//
// A Polynomial is immutable after construction. Every operation returns a new instance,
// so a Polynomial can be shared freely between goroutines.
package poly

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"

	"github.com/tuneinsight/polycalc/utils"
)

// Coefficient is the type set of the coefficients of a Polynomial.
type Coefficient interface {
	constraints.Signed | constraints.Float
}

// Order is the order in which a list of coefficients is given to NewPolynomial.
type Order int

const (
	// NaturalOrder : [a_n, ..., a_1, a_0], highest degree first, as a polynomial is written by hand.
	NaturalOrder = Order(0)
	// AscendingOrder : [a_0, a_1, ..., a_n], index i holds the coefficient of x^i.
	AscendingOrder = Order(1)
)

// Polynomial is a single-variable polynomial a_0 + a_1 x + ... + a_n x^n.
// Coefficients are stored in ascending order and the coefficient of x^n
// is non-zero unless n = 0.
type Polynomial[T Coefficient] struct {
	coeffs []T
}

// NewPolynomial creates a new polynomial from a list of coefficients given in the provided order.
// The input slice is copied and trailing zero coefficients of the high-degree end are removed.
// An all-zero or empty list yields the zero polynomial.
func NewPolynomial[T Coefficient](coeffs []T, order Order) *Polynomial[T] {

	var c []T

	switch order {
	case NaturalOrder:
		c = utils.ReverseSlice(coeffs)
	case AscendingOrder:
		c = make([]T, len(coeffs))
		copy(c, coeffs)
	default:
		panic(fmt.Sprintf("invalid order, allowed values are `NaturalOrder` or `AscendingOrder` but is %d", order))
	}

	return newPolynomial(c)
}

// newPolynomial takes ownership of coeffs, given in ascending order.
func newPolynomial[T Coefficient](coeffs []T) *Polynomial[T] {
	if len(coeffs) == 0 {
		coeffs = []T{0}
	}
	return &Polynomial[T]{coeffs: utils.TrimTrailing(coeffs, 0)}
}

// Zero returns the zero polynomial.
func Zero[T Coefficient]() *Polynomial[T] {
	return &Polynomial[T]{coeffs: []T{0}}
}

// Constant returns the constant polynomial c.
func Constant[T Coefficient](c T) *Polynomial[T] {
	return &Polynomial[T]{coeffs: []T{c}}
}

// X returns the polynomial x.
func X[T Coefficient]() *Polynomial[T] {
	return &Polynomial[T]{coeffs: []T{0, 1}}
}

// Degree returns the degree of the polynomial.
// The zero polynomial has degree 0.
func (p *Polynomial[T]) Degree() int {
	return len(p.coeffs) - 1
}

// Coeffs returns a copy of the coefficients in ascending order.
func (p *Polynomial[T]) Coeffs() (coeffs []T) {
	coeffs = make([]T, len(p.coeffs))
	copy(coeffs, p.coeffs)
	return
}

// NaturalCoeffs returns a copy of the coefficients, highest degree first.
func (p *Polynomial[T]) NaturalCoeffs() []T {
	return utils.ReverseSlice(p.coeffs)
}

// Coeff returns the coefficient of x^i, which is 0 for i outside [0, degree].
func (p *Polynomial[T]) Coeff(i int) T {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Leading returns the coefficient of x^degree.
func (p *Polynomial[T]) Leading() T {
	return p.coeffs[len(p.coeffs)-1]
}

// IsZero returns true if p is the zero polynomial.
func (p *Polynomial[T]) IsZero() bool {
	return len(p.coeffs) == 1 && p.coeffs[0] == 0
}

// Equal returns true if the receiver and other have the same degree and the same coefficients.
// A nil polynomial is only equal to itself.
func (p *Polynomial[T]) Equal(other *Polynomial[T]) bool {
	if p == other {
		return true
	}

	if p == nil || other == nil {
		return false
	}

	return p.Degree() == other.Degree() && cmp.Equal(p.coeffs, other.coeffs)
}

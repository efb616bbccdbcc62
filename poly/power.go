package poly

import (
	"fmt"
)

// Pow returns p^n for n >= 0, computed by n-1 successive multiplications by p.
// By convention p^0 is the constant polynomial 1, including when p is zero,
// and p^1 is p itself.
func (p *Polynomial[T]) Pow(n int) (*Polynomial[T], error) {

	switch {
	case n < 0:
		return nil, fmt.Errorf("cannot Pow: %w: exponent %d is negative", ErrInvalidArgument, n)
	case n == 0:
		return Constant[T](1), nil
	case n == 1:
		return p, nil
	}

	r := p
	for i := 1; i < n; i++ {
		r = r.Mul(p)
	}

	return r, nil
}

// Compose returns p(q(x)), that is sum_i a_i * q^i where a_i are the coefficients of p.
// Returns ErrTypeMismatch if q is nil.
func (p *Polynomial[T]) Compose(q *Polynomial[T]) (*Polynomial[T], error) {

	if q == nil {
		return nil, fmt.Errorf("cannot Compose: %w: operand must be a polynomial", ErrTypeMismatch)
	}

	acc := Zero[T]()

	// qi = q^i, with the same sequence of products as Pow
	var qi *Polynomial[T]
	for i, c := range p.coeffs {
		switch i {
		case 0:
			qi = Constant[T](1)
		case 1:
			qi = q
		default:
			qi = qi.Mul(q)
		}
		acc = acc.Add(qi.MulScalar(c))
	}

	return acc, nil
}

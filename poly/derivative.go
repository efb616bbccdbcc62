package poly

import (
	"fmt"
)

// Derivative returns the m-th derivative of p.
// The 0-th derivative is p itself and any derivative of order greater
// than the degree is the zero polynomial.
// Returns ErrInvalidArgument if m is negative.
func (p *Polynomial[T]) Derivative(m int) (*Polynomial[T], error) {

	switch {
	case m < 0:
		return nil, fmt.Errorf("cannot Derivative: %w: order %d is negative", ErrInvalidArgument, m)
	case m == 0:
		return p, nil
	case m > p.Degree():
		return Zero[T](), nil
	}

	coeffs := p.Coeffs()

	// d/dx a_i x^i = i * a_i x^(i-1), the constant term is dropped
	for k := 0; k < m; k++ {
		for i := 1; i < len(coeffs); i++ {
			coeffs[i-1] = T(i) * coeffs[i]
		}
		coeffs = coeffs[:len(coeffs)-1]
	}

	return newPolynomial(coeffs), nil
}

package poly

import (
	"github.com/tuneinsight/polycalc/utils"
)

// Add returns p + q.
func (p *Polynomial[T]) Add(q *Polynomial[T]) *Polynomial[T] {
	coeffs := make([]T, utils.Max(len(p.coeffs), len(q.coeffs)))
	copy(coeffs, p.coeffs)
	for i, c := range q.coeffs {
		coeffs[i] += c
	}
	return newPolynomial(coeffs)
}

// AddScalar returns p + c. Only the constant term is affected.
func (p *Polynomial[T]) AddScalar(c T) *Polynomial[T] {
	coeffs := p.Coeffs()
	coeffs[0] += c
	return newPolynomial(coeffs)
}

// Sub returns p - q.
func (p *Polynomial[T]) Sub(q *Polynomial[T]) *Polynomial[T] {
	coeffs := make([]T, utils.Max(len(p.coeffs), len(q.coeffs)))
	copy(coeffs, p.coeffs)
	for i, c := range q.coeffs {
		coeffs[i] -= c
	}
	return newPolynomial(coeffs)
}

// SubScalar returns p - c. Only the constant term is affected.
func (p *Polynomial[T]) SubScalar(c T) *Polynomial[T] {
	coeffs := p.Coeffs()
	coeffs[0] -= c
	return newPolynomial(coeffs)
}

// Neg returns -p.
func (p *Polynomial[T]) Neg() *Polynomial[T] {
	coeffs := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = -c
	}
	return newPolynomial(coeffs)
}

// Mul returns p * q, computed by schoolbook convolution of the coefficients.
func (p *Polynomial[T]) Mul(q *Polynomial[T]) *Polynomial[T] {
	coeffs := make([]T, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			coeffs[i+j] += a * b
		}
	}
	return newPolynomial(coeffs)
}

// MulScalar returns c * p. Scaling by zero yields the zero polynomial.
func (p *Polynomial[T]) MulScalar(c T) *Polynomial[T] {
	coeffs := make([]T, len(p.coeffs))
	for i, a := range p.coeffs {
		coeffs[i] = a * c
	}
	return newPolynomial(coeffs)
}

package poly

// At returns p(x), evaluated with Horner's rule.
func (p *Polynomial[T]) At(x T) (y T) {
	n := len(p.coeffs)
	y = p.coeffs[n-1]
	for i := n - 2; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}
	return
}

// EvaluateFloat64 returns p(x) for a real x, regardless of the coefficient type.
func (p *Polynomial[T]) EvaluateFloat64(x float64) (y float64) {
	n := len(p.coeffs)
	y = float64(p.coeffs[n-1])
	for i := n - 2; i >= 0; i-- {
		y = y*x + float64(p.coeffs[i])
	}
	return
}

// Float64 returns the coefficients of the receiver in a float64 slice, in ascending order.
func (p *Polynomial[T]) Float64() (coeffs []float64) {
	coeffs = make([]float64, len(p.coeffs))
	for i := range coeffs {
		coeffs[i] = float64(p.coeffs[i])
	}
	return
}

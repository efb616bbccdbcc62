package poly

import (
	"fmt"
	"testing"

	"github.com/tuneinsight/polycalc/utils/sampling"
)

func BenchmarkPolynomial(b *testing.B) {
	b.Run("Add", benchAdd)
	b.Run("Mul", benchMul)
	b.Run("Pow", benchPow)
	b.Run("Compose", benchCompose)
	b.Run("Derivative", benchDerivative)
	b.Run("At", benchAt)
}

func benchPolynomials(degree int) (p, q *Polynomial[float64]) {
	prng, err := sampling.NewKeyedPRNG([]byte("polycalc/bench"))
	if err != nil {
		panic(err)
	}
	sampler := sampling.NewSampler(prng)
	p = NewPolynomial(sampler.Float64Slice(degree+1, -1, 1), AscendingOrder)
	q = NewPolynomial(sampler.Float64Slice(degree+1, -1, 1), AscendingOrder)
	return
}

func benchString(opname string, degree int) string {
	return fmt.Sprintf("%s/degree=%d", opname, degree)
}

var benchDegrees = []int{4, 16, 64}

func benchAdd(b *testing.B) {
	for _, degree := range benchDegrees {
		p, q := benchPolynomials(degree)
		b.Run(benchString("Add", degree), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p.Add(q)
			}
		})
	}
}

func benchMul(b *testing.B) {
	for _, degree := range benchDegrees {
		p, q := benchPolynomials(degree)
		b.Run(benchString("Mul", degree), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p.Mul(q)
			}
		})
	}
}

func benchPow(b *testing.B) {
	for _, degree := range benchDegrees {
		p, _ := benchPolynomials(degree)
		b.Run(benchString("Pow/n=4", degree), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := p.Pow(4); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func benchCompose(b *testing.B) {
	for _, degree := range benchDegrees[:2] {
		p, q := benchPolynomials(degree)
		b.Run(benchString("Compose", degree), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := p.Compose(q); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func benchDerivative(b *testing.B) {
	for _, degree := range benchDegrees {
		p, _ := benchPolynomials(degree)
		b.Run(benchString("Derivative/m=2", degree), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := p.Derivative(2); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func benchAt(b *testing.B) {
	for _, degree := range benchDegrees {
		p, _ := benchPolynomials(degree)
		b.Run(benchString("At", degree), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p.At(0.5)
			}
		})
	}
}

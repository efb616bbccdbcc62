package poly_test

import (
	"fmt"

	"github.com/tuneinsight/polycalc/poly"
)

func ExamplePolynomial_Compose() {
	// x^2 - 1
	p := poly.NewPolynomial([]int64{1, 0, -1}, poly.NaturalOrder)
	// x + 1
	q := poly.NewPolynomial([]int64{1, 1}, poly.NaturalOrder)

	r, err := p.Compose(q)
	if err != nil {
		panic(err)
	}

	fmt.Println(r)
	// Output: 1x^2 + 2x^1
}

func ExamplePolynomial_Derivative() {
	p := poly.NewPolynomial([]float64{1, 0, 0}, poly.NaturalOrder)

	for m := 1; m <= 3; m++ {
		d, err := p.Derivative(m)
		if err != nil {
			panic(err)
		}
		fmt.Println(d.Coeffs())
	}
	// Output:
	// [0 2]
	// [2]
	// [0]
}

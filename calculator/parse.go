package calculator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tuneinsight/polycalc/poly"
)

const (
	// CoefficientCharset is the set of characters accepted in coefficient text.
	CoefficientCharset = " +-0123456789"

	// OrderCharset is the set of characters accepted in a derivative order or an exponent.
	OrderCharset = "0123456789"
)

// CheckText returns true if every character of text belongs to valid.
func CheckText(text, valid string) bool {
	for _, r := range text {
		if !strings.ContainsRune(valid, r) {
			return false
		}
	}
	return true
}

// ParseCoefficients parses space separated integer coefficients, such as "1 -2 +3".
// A single leading '+' is accepted on each coefficient and repeated spaces are ignored.
func ParseCoefficients(text string) (coeffs []int64, err error) {

	if !CheckText(text, CoefficientCharset) {
		return nil, fmt.Errorf("%w: %q can contain only numbers and spaces", ErrInvalidInput, text)
	}

	fields := strings.Fields(text)
	coeffs = make([]int64, 0, len(fields))

	for _, f := range fields {
		c, err := strconv.ParseInt(strings.TrimPrefix(f, "+"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer coefficient", ErrInvalidInput, f)
		}
		coeffs = append(coeffs, c)
	}

	if len(coeffs) == 0 {
		return nil, fmt.Errorf("%w: enter the coefficients of the polynomial", ErrEmptyInput)
	}

	return coeffs, nil
}

// ParsePolynomial parses coefficient text written highest degree first,
// e.g. "1 2 3" is x^2 + 2x + 3.
func ParsePolynomial(text string) (*poly.Polynomial[int64], error) {
	coeffs, err := ParseCoefficients(text)
	if err != nil {
		return nil, err
	}
	return poly.NewPolynomial(coeffs, poly.NaturalOrder), nil
}

// ParseOrder parses a non-negative derivative order or exponent.
func ParseOrder(text string) (int, error) {

	text = strings.TrimSpace(text)

	if text == "" {
		return 0, fmt.Errorf("%w: enter an order", ErrEmptyInput)
	}

	if !CheckText(text, OrderCharset) {
		return 0, fmt.Errorf("%w: %q can only contain numbers", ErrInvalidInput, text)
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidInput, text)
	}

	return n, nil
}

// ParseScalar parses a single signed integer, such as an evaluation point.
func ParseScalar(text string) (int64, error) {
	coeffs, err := ParseCoefficients(text)
	if err != nil {
		return 0, err
	}

	if len(coeffs) != 1 {
		return 0, fmt.Errorf("%w: %q is not a single number", ErrInvalidInput, text)
	}

	return coeffs[0], nil
}

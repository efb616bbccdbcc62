package calculator

import (
	"errors"

	"github.com/tuneinsight/polycalc/poly"
)

var (
	// ErrInvalidInput is returned when user-supplied text contains characters
	// outside of the accepted character set or cannot be parsed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyInput is returned when user-supplied text contains no coefficient.
	ErrEmptyInput = errors.New("empty input")

	// ErrUnknownOperation is returned for operation names that are not supported.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrTypeMismatch is returned when an operand of the wrong kind is given to an operation.
	ErrTypeMismatch = poly.ErrTypeMismatch
)

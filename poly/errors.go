package poly

import (
	"errors"
)

var (
	// ErrInvalidArgument is returned when an operation is given an argument outside of its domain,
	// such as a negative derivative order.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTypeMismatch is returned when an operation is given an operand of the wrong kind,
	// such as a missing polynomial for a composition.
	ErrTypeMismatch = errors.New("type mismatch")
)

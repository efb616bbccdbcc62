package calculator

import (
	"fmt"
	"strings"

	"github.com/tuneinsight/polycalc/utils"
)

// Operation is an operation applied by a Calculator.
type Operation int

// Operations supported by a Calculator.
const (
	Add        = Operation(iota + 1) // p + q or p + c
	Subtract                         // p - q or p - c
	Multiply                         // p * q or c * p
	Compose                          // p(q(x))
	Power                            // p^n
	Derivative                       // n-th derivative of p
	Evaluate                         // p(c)
	Plot                             // samples of p over the plot interval
)

var operationNames = map[string]Operation{
	"add":        Add,
	"sub":        Subtract,
	"mul":        Multiply,
	"compose":    Compose,
	"pow":        Power,
	"derivative": Derivative,
	"eval":       Evaluate,
	"plot":       Plot,
}

// OperationNames returns the sorted names accepted by ParseOperation.
func OperationNames() []string {
	return utils.GetSortedKeys(operationNames)
}

// ParseOperation returns the operation with the given name, case insensitive.
func ParseOperation(name string) (Operation, error) {
	if op, ok := operationNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return op, nil
	}
	return 0, fmt.Errorf("%w: %q, valid operations are %s", ErrUnknownOperation, name, strings.Join(OperationNames(), ", "))
}

func (op Operation) String() string {
	for name, o := range operationNames {
		if o == op {
			return name
		}
	}
	return fmt.Sprintf("Operation(%d)", int(op))
}

// Accepts returns true if the operation takes a second operand of kind k.
// Plot ignores its second operand and accepts any kind.
func (op Operation) Accepts(k Kind) bool {
	switch op {
	case Add, Subtract, Multiply:
		return k == KindPolynomial || k == KindScalar
	case Compose:
		return k == KindPolynomial
	case Power, Derivative, Evaluate:
		return k == KindScalar
	case Plot:
		return true
	default:
		return false
	}
}

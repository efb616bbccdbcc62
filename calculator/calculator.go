// Package calculator applies polynomial operations on user-supplied input.
// It validates and parses coefficient text, dispatches tagged polynomial or
// scalar operands to the poly package and samples polynomials for plotting.
package calculator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tuneinsight/polycalc/poly"
)

// Result is the outcome of an Operation.
// Exactly one of Polynomial, Value or Samples is meaningful, depending on the operation.
type Result struct {
	Operation  Operation
	Polynomial *poly.Polynomial[int64]
	Value      int64
	Samples    *Samples
}

func (r Result) String() string {
	switch {
	case r.Polynomial != nil:
		return r.Polynomial.String()
	case r.Samples != nil:
		return fmt.Sprintf("%d samples", r.Samples.Len())
	default:
		return fmt.Sprint(r.Value)
	}
}

// Calculator applies operations on integer polynomials.
type Calculator struct {
	logger *zap.Logger
	plot   PlotSettings
}

// New creates a new Calculator. A nil logger discards all logs.
func New(logger *zap.Logger, plot PlotSettings) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger, plot: plot}
}

// Apply applies op on lhs and rhs.
// The lhs must be a polynomial and rhs must be of a kind accepted by the operation
// (see Operation.Accepts), otherwise an error wrapping ErrTypeMismatch is returned.
func (c *Calculator) Apply(op Operation, lhs, rhs Operand) (res Result, err error) {

	if res, err = c.apply(op, lhs, rhs); err != nil {
		c.logger.Warn("operation failed",
			zap.Stringer("op", op),
			zap.Stringer("lhs", lhs.Kind()),
			zap.Stringer("rhs", rhs.Kind()),
			zap.Error(err))
		return Result{}, err
	}

	fields := []zap.Field{zap.Stringer("op", op), zap.Stringer("rhs", rhs.Kind())}
	if p, ok := lhs.Polynomial(); ok {
		fields = append(fields, zap.Int("lhs_degree", p.Degree()))
	}
	if res.Polynomial != nil {
		fields = append(fields, zap.Int("result_degree", res.Polynomial.Degree()))
	}
	c.logger.Debug("applied operation", fields...)

	return res, nil
}

func (c *Calculator) apply(op Operation, lhs, rhs Operand) (res Result, err error) {

	res.Operation = op

	p, ok := lhs.Polynomial()
	if !ok {
		return res, fmt.Errorf("cannot %s: %w: first operand must be a polynomial but is %s", op, ErrTypeMismatch, lhs.Kind())
	}

	if !op.Accepts(rhs.Kind()) {
		if _, known := operationNames[op.String()]; !known {
			return res, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
		}
		return res, fmt.Errorf("cannot %s: %w: second operand cannot be %s", op, ErrTypeMismatch, rhs.Kind())
	}

	q, _ := rhs.Polynomial()
	s, _ := rhs.Scalar()

	switch op {
	case Add:
		if rhs.Kind() == KindPolynomial {
			res.Polynomial = p.Add(q)
		} else {
			res.Polynomial = p.AddScalar(s)
		}
	case Subtract:
		if rhs.Kind() == KindPolynomial {
			res.Polynomial = p.Sub(q)
		} else {
			res.Polynomial = p.SubScalar(s)
		}
	case Multiply:
		if rhs.Kind() == KindPolynomial {
			res.Polynomial = p.Mul(q)
		} else {
			res.Polynomial = p.MulScalar(s)
		}
	case Compose:
		res.Polynomial, err = p.Compose(q)
	case Power:
		res.Polynomial, err = p.Pow(int(s))
	case Derivative:
		res.Polynomial, err = p.Derivative(int(s))
	case Evaluate:
		res.Value = p.At(s)
	case Plot:
		res.Samples, err = Sample(p, c.plot)
	}

	return
}

// Command polycalc applies polynomial operations on coefficients typed on the command line.
//
// Coefficients are written highest degree first and separated by spaces:
//
//	polycalc -op add -p "1 2 3" -q "3 2 1"
//	polycalc -op compose -p "1 0 -1" -q "1 1"
//	polycalc -op derivative -p "1 0 0" -n 2
//	polycalc -op plot -p "1 0 -1" > samples.tsv
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/tuneinsight/polycalc/calculator"
	"github.com/tuneinsight/polycalc/config"
	"github.com/tuneinsight/polycalc/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "polycalc:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {

	cfg := config.LoadOrDefault()

	fs := flag.NewFlagSet("polycalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opName := fs.String("op", "", "operation, one of "+fmt.Sprint(calculator.OperationNames()))
	pText := fs.String("p", "", "coefficients of the first polynomial, highest degree first")
	qText := fs.String("q", "", "coefficients of the second polynomial, highest degree first")
	nText := fs.String("n", "", "scalar operand: derivative order, exponent, evaluation point or scalar for add/sub/mul")
	plotMin := fs.Float64("plot-min", cfg.Plot.Min, "lower bound of the plot interval")
	plotMax := fs.Float64("plot-max", cfg.Plot.Max, "upper bound of the plot interval")
	plotPoints := fs.Int("plot-points", cfg.Plot.Points, "number of plot samples")
	logLevel := fs.String("log-level", cfg.Logging.Level, "log level")
	logDev := fs.Bool("log-dev", cfg.Logging.Development, "development logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:       *logLevel,
		Development: *logDev,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	op, err := calculator.ParseOperation(*opName)
	if err != nil {
		return err
	}

	p, err := calculator.ParsePolynomial(*pText)
	if err != nil {
		return fmt.Errorf("first polynomial: %w", err)
	}
	fmt.Fprintf(stdout, "You entered: %s\n", p)

	rhs, err := parseOperand(op, *qText, *nText, stdout)
	if err != nil {
		return err
	}

	calc := calculator.New(logger.Named("calculator"), calculator.PlotSettings{
		Min:    *plotMin,
		Max:    *plotMax,
		Points: *plotPoints,
	})

	res, err := calc.Apply(op, calculator.PolynomialOperand(p), rhs)
	if err != nil {
		logger.Error("cannot get result", zap.Error(err))
		return err
	}

	if res.Samples != nil {
		if _, err = res.Samples.WriteTo(stdout); err != nil {
			return err
		}
		sum, err := res.Samples.Summary()
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Summary: %s\n", sum)
		return nil
	}

	fmt.Fprintf(stdout, "Result: %s\n", res)

	return nil
}

// parseOperand builds the second operand of op from the -q and -n flags.
// The derivative order defaults to 1.
func parseOperand(op calculator.Operation, qText, nText string, stdout io.Writer) (calculator.Operand, error) {

	switch {
	case nText != "":
		if op == calculator.Derivative || op == calculator.Power {
			n, err := calculator.ParseOrder(nText)
			if err != nil {
				return calculator.Operand{}, fmt.Errorf("order: %w", err)
			}
			return calculator.ScalarOperand(int64(n)), nil
		}
		c, err := calculator.ParseScalar(nText)
		if err != nil {
			return calculator.Operand{}, fmt.Errorf("scalar: %w", err)
		}
		return calculator.ScalarOperand(c), nil

	case qText != "":
		q, err := calculator.ParsePolynomial(qText)
		if err != nil {
			return calculator.Operand{}, fmt.Errorf("second polynomial: %w", err)
		}
		fmt.Fprintf(stdout, "You entered: %s\n", q)
		return calculator.PolynomialOperand(q), nil

	case op == calculator.Derivative:
		return calculator.ScalarOperand(1), nil
	}

	return calculator.Operand{}, nil
}

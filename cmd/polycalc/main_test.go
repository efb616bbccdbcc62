package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/polycalc/calculator"
)

func runArgs(t *testing.T, args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	err = run(append(args, "-log-level", "error"), &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestRun(t *testing.T) {

	t.Run("Add", func(t *testing.T) {
		out, _, err := runArgs(t, "-op", "add", "-p", "1 2 3", "-q", "3 2 1")
		require.NoError(t, err)
		require.Equal(t, "You entered: 1x^2 + 2x^1 + 3\nYou entered: 3x^2 + 2x^1 + 1\nResult: 4x^2 + 4x^1 + 4\n", out)
	})

	t.Run("Compose", func(t *testing.T) {
		out, _, err := runArgs(t, "-op", "compose", "-p", "1 0 -1", "-q", "1 1")
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(out, "Result: 1x^2 + 2x^1\n"), out)
	})

	t.Run("MulScalar", func(t *testing.T) {
		out, _, err := runArgs(t, "-op", "mul", "-p", "2 0", "-n", "3")
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(out, "Result: 6x^1\n"), out)
	})

	t.Run("Derivative", func(t *testing.T) {
		out, _, err := runArgs(t, "-op", "derivative", "-p", "1 0 0")
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(out, "Result: 2x^1\n"), out)

		out, _, err = runArgs(t, "-op", "derivative", "-p", "1 0 0", "-n", "3")
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(out, "Result: 0\n"), out)

		_, _, err = runArgs(t, "-op", "derivative", "-p", "1 0 0", "-n", "-1")
		require.ErrorIs(t, err, calculator.ErrInvalidInput)
	})

	t.Run("Eval", func(t *testing.T) {
		out, _, err := runArgs(t, "-op", "eval", "-p", "6 1 2", "-n", "-1")
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(out, "Result: 7\n"), out)
	})

	t.Run("Plot", func(t *testing.T) {
		out, errOut, err := runArgs(t, "-op", "plot", "-p", "1 0", "-plot-min", "0", "-plot-max", "2", "-plot-points", "3")
		require.NoError(t, err)
		require.Equal(t, "You entered: 1x^1\n0\t0\n1\t1\n2\t2\n", out)
		require.Contains(t, errOut, "Summary: min=0 max=2 mean=1")
	})

	t.Run("Errors", func(t *testing.T) {
		_, _, err := runArgs(t, "-op", "divide", "-p", "1")
		require.ErrorIs(t, err, calculator.ErrUnknownOperation)

		_, _, err = runArgs(t, "-op", "add", "-p", "1 x")
		require.ErrorIs(t, err, calculator.ErrInvalidInput)

		_, _, err = runArgs(t, "-op", "add", "-p", "")
		require.ErrorIs(t, err, calculator.ErrEmptyInput)

		_, _, err = runArgs(t, "-op", "compose", "-p", "1 0", "-n", "2")
		require.ErrorIs(t, err, calculator.ErrTypeMismatch)
	})
}

package calculator

import (
	"bufio"
	"fmt"
	"io"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"github.com/tuneinsight/polycalc/poly"
)

// PlotSettings is the evaluation grid of the plot operation:
// Points evenly spaced values of x in [Min, Max].
type PlotSettings struct {
	Min    float64
	Max    float64
	Points int
}

// DefaultPlotSettings returns 1001 points over [-10, 10].
func DefaultPlotSettings() PlotSettings {
	return PlotSettings{Min: -10, Max: 10, Points: 1001}
}

// Validate returns an error if the grid is empty or degenerate.
func (s PlotSettings) Validate() error {
	if s.Points < 2 {
		return fmt.Errorf("%w: plot needs at least 2 points but has %d", ErrInvalidInput, s.Points)
	}
	if !(s.Min < s.Max) {
		return fmt.Errorf("%w: plot interval [%v, %v] is empty", ErrInvalidInput, s.Min, s.Max)
	}
	return nil
}

// Samples are the points (X[i], Y[i]) of the graph of a polynomial.
type Samples struct {
	X []float64
	Y []float64
}

// Sample evaluates p on the grid defined by settings.
func Sample[T poly.Coefficient](p *poly.Polynomial[T], settings PlotSettings) (*Samples, error) {

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	s := &Samples{
		X: floats.Span(make([]float64, settings.Points), settings.Min, settings.Max),
		Y: make([]float64, settings.Points),
	}

	for i, x := range s.X {
		s.Y[i] = p.EvaluateFloat64(x)
	}

	return s, nil
}

// Len returns the number of samples.
func (s *Samples) Len() int {
	return len(s.X)
}

// WriteTo writes one tab-separated "x\tf(x)" line per sample on w.
func (s *Samples) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)
	for i := range s.X {
		var k int
		if k, err = fmt.Fprintf(bw, "%g\t%g\n", s.X[i], s.Y[i]); err != nil {
			return n + int64(k), err
		}
		n += int64(k)
	}
	return n, bw.Flush()
}

// Summary is a statistical summary of the sampled values f(x).
type Summary struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

// Summary returns the statistical summary of s.Y.
func (s *Samples) Summary() (sum Summary, err error) {

	if len(s.Y) == 0 {
		return sum, fmt.Errorf("%w: no samples", ErrEmptyInput)
	}

	sum.Min = floats.Min(s.Y)
	sum.Max = floats.Max(s.Y)

	if sum.Mean, err = stats.Mean(s.Y); err != nil {
		return sum, err
	}

	if sum.Median, err = stats.Median(s.Y); err != nil {
		return sum, err
	}

	if sum.StdDev, err = stats.StandardDeviation(s.Y); err != nil {
		return sum, err
	}

	return sum, nil
}

func (sum Summary) String() string {
	return fmt.Sprintf("min=%g max=%g mean=%g median=%g stddev=%g", sum.Min, sum.Max, sum.Mean, sum.Median, sum.StdDev)
}

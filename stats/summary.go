// Package stats summarizes samples, such as how long decisions took.
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const Epsilon = 1e-6

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// ZVal returns the two-tailed Z-value for a confidence interval given in
// percent.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	return dist.Quantile((1 + confidenceInterval/100) / 2)
}

// Summary describes a sample.
type Summary struct {
	N      int
	Mean   float64
	Stdev  float64
	Min    float64
	Max    float64
	StdErr float64
}

// Summarize computes a Summary. Stdev is the sample standard deviation and
// is zero for fewer than two values.
func Summarize(vals []float64) Summary {
	s := Summary{N: len(vals)}
	if len(vals) == 0 {
		return s
	}
	s.Min, s.Max = vals[0], vals[0]
	for _, v := range vals[1:] {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
	}
	if len(vals) == 1 {
		s.Mean = vals[0]
		return s
	}
	s.Mean, s.Stdev = stat.MeanStdDev(vals, nil)
	s.StdErr = stat.StdErr(s.Stdev, float64(len(vals)))
	return s
}

// ConfidenceInterval returns the interval around the mean at the given
// confidence, in percent.
func (s Summary) ConfidenceInterval(confidence float64) (float64, float64) {
	z := ZVal(confidence)
	return s.Mean - z*s.StdErr, s.Mean + z*s.StdErr
}

func (s Summary) String() string {
	lo, hi := s.ConfidenceInterval(95)
	return fmt.Sprintf("n=%d mean=%.1f stdev=%.1f min=%.1f max=%.1f 95%%ci=[%.1f, %.1f]",
		s.N, s.Mean, s.Stdev, s.Min, s.Max, lo, hi)
}

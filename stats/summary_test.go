package stats

import (
	"testing"

	"github.com/matryer/is"
)

func TestSummarize(t *testing.T) {
	is := is.New(t)
	type tc struct {
		vals  []float64
		mean  float64
		stdev float64
	}
	cases := []tc{
		{[]float64{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638},
		{[]float64{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891},
		{[]float64{1}, 1, 0},
		{[]float64{}, 0, 0},
		{[]float64{1, 1}, 1, 0},
	}
	for _, c := range cases {
		s := Summarize(c.vals)
		is.Equal(s.N, len(c.vals))
		is.True(FuzzyEqual(s.Mean, c.mean))
		is.True(FuzzyEqual(s.Stdev, c.stdev))
	}

	s := Summarize([]float64{4, 9, 1})
	is.Equal(s.Min, 1.0)
	is.Equal(s.Max, 9.0)
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(FuzzyEqual(ZVal(95), 1.959963984540054))
	is.True(FuzzyEqual(ZVal(99), 2.5758293035489004))
}

func TestConfidenceInterval(t *testing.T) {
	is := is.New(t)
	s := Summarize([]float64{10, 12, 23, 23, 16, 23, 21, 16})
	lo, hi := s.ConfidenceInterval(95)
	is.True(lo < s.Mean && s.Mean < hi)
	is.True(FuzzyEqual(s.Mean-lo, hi-s.Mean))
}

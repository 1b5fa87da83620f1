// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Sample is a collection of possibly weighted data points. The
// statistics methods borrow the sample read-only; operations that
// need an order (quantiles) sort a copy unless Sorted says the data
// is already ascending.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i]. If Weights is
	// nil, all Xs have weight 1. Weights must have the same
	// length as Xs and all values must be non-negative.
	Weights []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Weight returns the total weight of the sample. If the sample is
// unweighted, this is the number of observations.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	return floats.Sum(s.Weights)
}

// Sum returns the weighted sum of the sample values.
func (s Sample) Sum() float64 {
	if s.Weights == nil {
		return floats.Sum(s.Xs)
	}
	sum := 0.0
	for i, x := range s.Xs {
		sum += x * s.Weights[i]
	}
	return sum
}

// Mean returns the arithmetic mean of the sample. It requires at
// least one observation with positive weight.
func (s Sample) Mean() (float64, error) {
	if len(s.Xs) == 0 {
		return nan, errSampleSizef("mean", 1, len(s.Xs))
	}
	w := s.Weight()
	if w == 0 {
		return nan, errSampleSizef("mean", 1, 0)
	}
	return s.Sum() / w, nil
}

// GeoMean returns the geometric mean of the sample. All sample
// values must be positive.
func (s Sample) GeoMean() (float64, error) {
	if len(s.Xs) == 0 {
		return nan, errSampleSizef("geometric mean", 1, len(s.Xs))
	}
	logSum, w := 0.0, 0.0
	for i, x := range s.Xs {
		if x <= 0 {
			return nan, undefinedf("geometric mean requires positive values; sample has %v", x)
		}
		wi := 1.0
		if s.Weights != nil {
			wi = s.Weights[i]
		}
		logSum += wi * math.Log(x)
		w += wi
	}
	return math.Exp(logSum / w), nil
}

// Variance returns the sample (Bessel-corrected, n-1) variance. It
// requires at least two observations.
func (s Sample) Variance() (float64, error) {
	if len(s.Xs) < 2 {
		return nan, errSampleSizef("sample variance", 2, len(s.Xs))
	}
	m2, w := s.centralMoment2()
	return m2 / (w - 1), nil
}

// PopulationVariance returns the population (n-divisor) variance. It
// requires at least one observation.
func (s Sample) PopulationVariance() (float64, error) {
	if len(s.Xs) == 0 {
		return nan, errSampleSizef("population variance", 1, len(s.Xs))
	}
	m2, w := s.centralMoment2()
	return m2 / w, nil
}

// centralMoment2 returns the weighted sum of squared deviations from
// the mean and the total weight.
func (s Sample) centralMoment2() (m2, w float64) {
	mean, _ := s.Mean()
	for i, x := range s.Xs {
		wi := 1.0
		if s.Weights != nil {
			wi = s.Weights[i]
		}
		d := x - mean
		m2 += wi * d * d
		w += wi
	}
	return
}

// StdDev returns the sample standard deviation (the square root of
// the Bessel-corrected variance).
func (s Sample) StdDev() (float64, error) {
	v, err := s.Variance()
	if err != nil {
		return nan, err
	}
	return math.Sqrt(v), nil
}

// Skewness returns the standardized third central moment of the
// sample. It requires at least two observations and positive
// variance.
func (s Sample) Skewness() (float64, error) {
	if len(s.Xs) < 2 {
		return nan, errSampleSizef("skewness", 2, len(s.Xs))
	}
	mean, _ := s.Mean()
	var m2, m3, w float64
	for i, x := range s.Xs {
		wi := 1.0
		if s.Weights != nil {
			wi = s.Weights[i]
		}
		d := x - mean
		m2 += wi * d * d
		m3 += wi * d * d * d
		w += wi
	}
	if m2 == 0 {
		return nan, undefinedf("skewness undefined for zero-variance sample")
	}
	m2 /= w
	m3 /= w
	return m3 / math.Pow(m2, 1.5), nil
}

// Bounds returns the minimum and maximum values of the sample.
func (s Sample) Bounds() (min, max float64, err error) {
	if len(s.Xs) == 0 {
		return nan, nan, errSampleSizef("bounds", 1, len(s.Xs))
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1], nil
	}
	return floats.Min(s.Xs), floats.Max(s.Xs), nil
}

// Quantile returns the q'th quantile of the sample using linear
// interpolation between order statistics (Hyndman-Fan definition 8,
// the median-unbiased estimator). q outside [0, 1] is clamped to the
// extreme order statistics.
//
// For weighted samples the quantile interpolates on cumulative
// weight between the mass centers of adjacent observations.
func (s Sample) Quantile(q float64) (float64, error) {
	if len(s.Xs) == 0 {
		return nan, errSampleSizef("quantile", 1, len(s.Xs))
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	if s.Weights == nil {
		n := float64(len(s.Xs))
		// Hyndman-Fan 8: h = (n + 1/3)q + 1/3, interpolating
		// between x_⌊h⌋ and x_⌊h⌋+1 (1-based).
		h := (n+1.0/3)*q + 1.0/3
		if h <= 1 {
			return s.Xs[0], nil
		}
		if h >= n {
			return s.Xs[len(s.Xs)-1], nil
		}
		fl := math.Floor(h)
		i := int(fl) - 1
		return s.Xs[i] + (h-fl)*(s.Xs[i+1]-s.Xs[i]), nil
	}

	// Weighted: invert the piecewise-linear CDF through the mass
	// centers of the observations. Scaling all weights by a
	// constant leaves every quantile unchanged.
	total := s.Weight()
	if total == 0 {
		return nan, errSampleSizef("quantile", 1, 0)
	}
	target := q * total
	cum := 0.0
	prevX, prevC := s.Xs[0], 0.0
	for i, x := range s.Xs {
		c := cum + s.Weights[i]/2
		if target <= c {
			if i == 0 || c == prevC {
				return x, nil
			}
			return prevX + (target-prevC)/(c-prevC)*(x-prevX), nil
		}
		cum += s.Weights[i]
		prevX, prevC = x, c
	}
	return s.Xs[len(s.Xs)-1], nil
}

// Median returns the middle value of the sample, interpolated for
// even sizes.
func (s Sample) Median() (float64, error) {
	return s.Quantile(0.5)
}

// IQR returns the interquartile range of the sample.
func (s Sample) IQR() (float64, error) {
	q1, err := s.Quantile(0.25)
	if err != nil {
		return nan, err
	}
	q3, err := s.Quantile(0.75)
	if err != nil {
		return nan, err
	}
	return q3 - q1, nil
}

// Copy returns a copy of the Sample that shares no state with the
// original.
func (s Sample) Copy() *Sample {
	xs := append([]float64(nil), s.Xs...)
	var weights []float64
	if s.Weights != nil {
		weights = append([]float64(nil), s.Weights...)
	}
	return &Sample{xs, weights, s.Sorted}
}

// Sort sorts the sample in place by value, carrying weights along,
// and returns s for chaining.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		// All set.
	} else if s.Weights == nil {
		sort.Float64s(s.Xs)
	} else {
		sort.Stable(&sampleSorter{s.Xs, s.Weights})
	}
	s.Sorted = true
	return s
}

// MeanCI returns the mean of xs along with the bounds of its
// confidence interval at the given level, computed from the Student's
// t sampling distribution of the mean. An empty sample returns NaNs.
// A single observation, or a confidence of 1, gives an unbounded
// interval.
func MeanCI(xs []float64, confidence float64) (mean, lo, hi float64) {
	if len(xs) == 0 {
		return nan, nan, nan
	}
	sample := Sample{Xs: xs}
	mean, _ = sample.Mean()
	if confidence <= 0 {
		return mean, mean, mean
	}
	if confidence >= 1 || len(xs) < 2 {
		return mean, -inf, inf
	}
	stdDev, _ := sample.StdDev()
	se := stdDev / math.Sqrt(float64(len(xs)))
	t := TDist{V: float64(len(xs) - 1)}.InvCDF(0.5 + confidence/2)
	return mean, mean - t*se, mean + t*se
}

type sampleSorter struct {
	xs      []float64
	weights []float64
}

func (p *sampleSorter) Len() int {
	return len(p.xs)
}

func (p *sampleSorter) Less(i, j int) bool {
	return p.xs[i] < p.xs[j]
}

func (p *sampleSorter) Swap(i, j int) {
	p.xs[i], p.xs[j] = p.xs[j], p.xs[i]
	p.weights[i], p.weights[j] = p.weights[j], p.weights[i]
}

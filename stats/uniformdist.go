// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"
)

// UniformDist is the continuous uniform distribution on [Min, Max).
type UniformDist struct {
	Min, Max float64
}

// NewUniformDist returns the uniform distribution on [min, max).
// min must be strictly less than max.
func NewUniformDist(min, max float64) (UniformDist, error) {
	if math.IsNaN(min) || math.IsNaN(max) || min >= max {
		return UniformDist{}, invalidParamf("uniform bounds require min < max; got min=%v, max=%v", min, max)
	}
	return UniformDist{min, max}, nil
}

func (u UniformDist) PDF(x float64) float64 {
	if x < u.Min || x >= u.Max {
		return 0
	}
	return 1 / (u.Max - u.Min)
}

func (u UniformDist) PDFEach(xs []float64) []float64 {
	return pdfEach(u, xs)
}

func (u UniformDist) LnPDF(x float64) float64 {
	if x < u.Min || x >= u.Max {
		return -inf
	}
	return -math.Log(u.Max - u.Min)
}

func (u UniformDist) CDF(x float64) float64 {
	if x < u.Min {
		return 0
	}
	if x >= u.Max {
		return 1
	}
	return (x - u.Min) / (u.Max - u.Min)
}

func (u UniformDist) CDFEach(xs []float64) []float64 {
	return cdfEach(u, xs)
}

func (u UniformDist) InvCDF(p float64) float64 {
	if math.IsNaN(p) {
		return nan
	}
	if p <= 0 {
		return u.Min
	}
	if p >= 1 {
		return u.Max
	}
	return u.Min + p*(u.Max-u.Min)
}

func (u UniformDist) InvCDFEach(ps []float64) []float64 {
	return invCDFEach(u, ps)
}

// Rand draws a variate from the distribution using rng, which must
// not be nil.
func (u UniformDist) Rand(rng *rand.Rand) float64 {
	return u.Min + rng.Float64()*(u.Max-u.Min)
}

func (u UniformDist) Bounds() (float64, float64) {
	return u.Min, u.Max
}

// Mean returns the midpoint (Min+Max)/2.
func (u UniformDist) Mean() float64 { return (u.Min + u.Max) / 2 }

// Variance returns (Max-Min)²/12.
func (u UniformDist) Variance() float64 {
	w := u.Max - u.Min
	return w * w / 12
}

// Skewness returns 0.
func (u UniformDist) Skewness() float64 { return 0 }

// Entropy returns ln(Max-Min).
func (u UniformDist) Entropy() float64 { return math.Log(u.Max - u.Min) }

// Median returns the midpoint.
func (u UniformDist) Median() float64 { return (u.Min + u.Max) / 2 }

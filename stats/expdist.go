// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"
)

// ExponentialDist is the exponential distribution with rate parameter
// Rate. The mean is 1/Rate.
type ExponentialDist struct {
	Rate float64
}

// NewExponentialDist returns the exponential distribution with the
// given rate. rate must be positive.
func NewExponentialDist(rate float64) (ExponentialDist, error) {
	if math.IsNaN(rate) || rate <= 0 {
		return ExponentialDist{}, invalidParamf("rate must be positive; got rate=%v", rate)
	}
	return ExponentialDist{rate}, nil
}

func (e ExponentialDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return e.Rate * math.Exp(-e.Rate*x)
}

func (e ExponentialDist) PDFEach(xs []float64) []float64 {
	return pdfEach(e, xs)
}

func (e ExponentialDist) LnPDF(x float64) float64 {
	if x < 0 {
		return -inf
	}
	return math.Log(e.Rate) - e.Rate*x
}

func (e ExponentialDist) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	// -Expm1 keeps precision for small x where 1-exp(-λx)
	// cancels.
	return -math.Expm1(-e.Rate * x)
}

func (e ExponentialDist) CDFEach(xs []float64) []float64 {
	return cdfEach(e, xs)
}

// InvCDF is the closed-form quantile -ln(1-p)/λ; sampling by inverse
// transform is exact for this distribution.
func (e ExponentialDist) InvCDF(p float64) float64 {
	if math.IsNaN(p) {
		return nan
	}
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return inf
	}
	return -math.Log1p(-p) / e.Rate
}

func (e ExponentialDist) InvCDFEach(ps []float64) []float64 {
	return invCDFEach(e, ps)
}

// Rand draws a variate from the distribution using rng, which must
// not be nil.
func (e ExponentialDist) Rand(rng *rand.Rand) float64 {
	return rng.ExpFloat64() / e.Rate
}

func (e ExponentialDist) Bounds() (float64, float64) {
	// 99.99% of the weight.
	return 0, -math.Log(1e-4) / e.Rate
}

// Mean returns 1/Rate.
func (e ExponentialDist) Mean() float64 { return 1 / e.Rate }

// Variance returns 1/Rate².
func (e ExponentialDist) Variance() float64 { return 1 / (e.Rate * e.Rate) }

// Skewness returns 2.
func (e ExponentialDist) Skewness() float64 { return 2 }

// Entropy returns 1 - ln(Rate).
func (e ExponentialDist) Entropy() float64 { return 1 - math.Log(e.Rate) }

// Mode returns 0.
func (e ExponentialDist) Mode() float64 { return 0 }

// Median returns ln(2)/Rate.
func (e ExponentialDist) Median() float64 { return math.Ln2 / e.Rate }

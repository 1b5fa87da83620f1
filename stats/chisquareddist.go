// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"
)

// ChiSquaredDist is the chi-squared distribution with K degrees of
// freedom. It is the gamma distribution with shape K/2 and rate 1/2;
// every operation delegates to that form.
type ChiSquaredDist struct {
	K float64
}

// NewChiSquaredDist returns the chi-squared distribution with k
// degrees of freedom. k must be positive.
func NewChiSquaredDist(k float64) (ChiSquaredDist, error) {
	if math.IsNaN(k) || k <= 0 {
		return ChiSquaredDist{}, invalidParamf("degrees of freedom must be positive; got k=%v", k)
	}
	return ChiSquaredDist{k}, nil
}

func (c ChiSquaredDist) gamma() GammaDist {
	return GammaDist{c.K / 2, 0.5}
}

func (c ChiSquaredDist) PDF(x float64) float64 { return c.gamma().PDF(x) }

func (c ChiSquaredDist) PDFEach(xs []float64) []float64 { return pdfEach(c, xs) }

func (c ChiSquaredDist) LnPDF(x float64) float64 { return c.gamma().LnPDF(x) }

func (c ChiSquaredDist) CDF(x float64) float64 { return c.gamma().CDF(x) }

func (c ChiSquaredDist) CDFEach(xs []float64) []float64 { return cdfEach(c, xs) }

func (c ChiSquaredDist) InvCDF(p float64) float64 { return c.gamma().InvCDF(p) }

func (c ChiSquaredDist) InvCDFEach(ps []float64) []float64 { return invCDFEach(c, ps) }

// Rand draws a variate from the distribution using rng, which must
// not be nil.
func (c ChiSquaredDist) Rand(rng *rand.Rand) float64 { return c.gamma().Rand(rng) }

func (c ChiSquaredDist) Bounds() (float64, float64) { return c.gamma().Bounds() }

// Mean returns K.
func (c ChiSquaredDist) Mean() float64 { return c.K }

// Variance returns 2K.
func (c ChiSquaredDist) Variance() float64 { return 2 * c.K }

// Skewness returns sqrt(8/K).
func (c ChiSquaredDist) Skewness() float64 { return math.Sqrt(8 / c.K) }

// Mode returns max(K-2, 0).
func (c ChiSquaredDist) Mode() float64 { return math.Max(c.K-2, 0) }

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"
)

// CauchyDist is the Cauchy (Lorentz) distribution with location X0
// and scale Gamma.
//
// The Cauchy distribution has no mean or variance for any parameters:
// the defining integrals do not converge. This type therefore carries
// no Mean or Variance method; Median and Mode are its defined
// location measures.
type CauchyDist struct {
	X0, Gamma float64
}

// NewCauchyDist returns the Cauchy distribution with location x0 and
// scale gamma. gamma must be positive.
func NewCauchyDist(x0, gamma float64) (CauchyDist, error) {
	if math.IsNaN(x0) || math.IsNaN(gamma) || gamma <= 0 {
		return CauchyDist{}, invalidParamf("scale must be positive; got gamma=%v", gamma)
	}
	return CauchyDist{x0, gamma}, nil
}

func (c CauchyDist) PDF(x float64) float64 {
	z := (x - c.X0) / c.Gamma
	return 1 / (math.Pi * c.Gamma * (1 + z*z))
}

func (c CauchyDist) PDFEach(xs []float64) []float64 {
	return pdfEach(c, xs)
}

func (c CauchyDist) LnPDF(x float64) float64 {
	z := (x - c.X0) / c.Gamma
	return -math.Log(math.Pi*c.Gamma) - math.Log1p(z*z)
}

func (c CauchyDist) CDF(x float64) float64 {
	return math.Atan2(x-c.X0, c.Gamma)/math.Pi + 0.5
}

func (c CauchyDist) CDFEach(xs []float64) []float64 {
	return cdfEach(c, xs)
}

func (c CauchyDist) InvCDF(p float64) float64 {
	if math.IsNaN(p) {
		return nan
	}
	if p <= 0 {
		return -inf
	}
	if p >= 1 {
		return inf
	}
	return c.X0 + c.Gamma*math.Tan(math.Pi*(p-0.5))
}

func (c CauchyDist) InvCDFEach(ps []float64) []float64 {
	return invCDFEach(c, ps)
}

// Rand draws a variate by inverse transform. rng must not be nil.
func (c CauchyDist) Rand(rng *rand.Rand) float64 {
	return c.InvCDF(rng.Float64())
}

func (c CauchyDist) Bounds() (float64, float64) {
	// The tails are heavy; cover the central 99%.
	return c.InvCDF(0.005), c.InvCDF(0.995)
}

// Median returns X0.
func (c CauchyDist) Median() float64 { return c.X0 }

// Mode returns X0.
func (c CauchyDist) Mode() float64 { return c.X0 }

// Entropy returns ln(4πγ).
func (c CauchyDist) Entropy() float64 { return math.Log(4 * math.Pi * c.Gamma) }

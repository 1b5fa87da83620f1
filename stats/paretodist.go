// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"
)

// ParetoDist is the Pareto (type I) distribution with scale Xm (the
// minimum of the support) and shape Alpha.
type ParetoDist struct {
	Xm, Alpha float64
}

// NewParetoDist returns the Pareto distribution with scale xm and
// shape alpha. Both must be positive.
func NewParetoDist(xm, alpha float64) (ParetoDist, error) {
	if math.IsNaN(xm) || xm <= 0 {
		return ParetoDist{}, invalidParamf("scale must be positive; got xm=%v", xm)
	}
	if math.IsNaN(alpha) || alpha <= 0 {
		return ParetoDist{}, invalidParamf("shape must be positive; got alpha=%v", alpha)
	}
	return ParetoDist{xm, alpha}, nil
}

func (p ParetoDist) PDF(x float64) float64 {
	if x < p.Xm {
		return 0
	}
	return p.Alpha * math.Pow(p.Xm, p.Alpha) / math.Pow(x, p.Alpha+1)
}

func (p ParetoDist) PDFEach(xs []float64) []float64 {
	return pdfEach(p, xs)
}

func (p ParetoDist) LnPDF(x float64) float64 {
	if x < p.Xm {
		return -inf
	}
	return math.Log(p.Alpha) + p.Alpha*math.Log(p.Xm) - (p.Alpha+1)*math.Log(x)
}

func (p ParetoDist) CDF(x float64) float64 {
	if x < p.Xm {
		return 0
	}
	return 1 - math.Pow(p.Xm/x, p.Alpha)
}

func (p ParetoDist) CDFEach(xs []float64) []float64 {
	return cdfEach(p, xs)
}

func (p ParetoDist) InvCDF(q float64) float64 {
	if math.IsNaN(q) {
		return nan
	}
	if q <= 0 {
		return p.Xm
	}
	if q >= 1 {
		return inf
	}
	return p.Xm / math.Pow(1-q, 1/p.Alpha)
}

func (p ParetoDist) InvCDFEach(qs []float64) []float64 {
	return invCDFEach(p, qs)
}

// Rand draws a variate by inverse transform. rng must not be nil.
func (p ParetoDist) Rand(rng *rand.Rand) float64 {
	return p.Xm / math.Pow(rng.Float64(), 1/p.Alpha)
}

func (p ParetoDist) Bounds() (float64, float64) {
	return p.Xm, p.InvCDF(0.99)
}

// Mean returns α·xm/(α-1) for α > 1. For α <= 1 the mean integral
// diverges to +Inf; since the integrand is positive the limit is a
// well-defined value, not an undefined quantity.
func (p ParetoDist) Mean() float64 {
	if p.Alpha <= 1 {
		return inf
	}
	return p.Alpha * p.Xm / (p.Alpha - 1)
}

// Variance returns the variance for α > 2 and +Inf otherwise.
func (p ParetoDist) Variance() float64 {
	if p.Alpha <= 2 {
		return inf
	}
	a := p.Alpha
	return p.Xm * p.Xm * a / ((a - 1) * (a - 1) * (a - 2))
}

// Median returns xm·2^(1/α).
func (p ParetoDist) Median() float64 {
	return p.Xm * math.Pow(2, 1/p.Alpha)
}

// Mode returns Xm.
func (p ParetoDist) Mode() float64 { return p.Xm }

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"

	"github.com/statlib/go-statlib/mathx"
)

// TDist is a Student's t-distribution with V degrees of freedom.
type TDist struct {
	V float64
}

// NewTDist returns the Student's t-distribution with v degrees of
// freedom. v must be positive.
func NewTDist(v float64) (TDist, error) {
	if math.IsNaN(v) || v <= 0 {
		return TDist{}, invalidParamf("degrees of freedom must be positive; got v=%v", v)
	}
	return TDist{v}, nil
}

func (t TDist) PDF(x float64) float64 {
	return math.Exp(t.LnPDF(x))
}

func (t TDist) PDFEach(xs []float64) []float64 {
	return pdfEach(t, xs)
}

func (t TDist) LnPDF(x float64) float64 {
	lg1, _ := mathx.Lgamma((t.V + 1) / 2)
	lg2, _ := mathx.Lgamma(t.V / 2)
	return lg1 - lg2 - 0.5*math.Log(t.V*math.Pi) -
		(t.V+1)/2*math.Log1p(x*x/t.V)
}

func (t TDist) CDF(x float64) float64 {
	if x == 0 {
		return 0.5
	}
	if x < 0 {
		return 1 - t.CDF(-x)
	}
	ib, _ := mathx.BetaInc(t.V/(t.V+x*x), t.V/2, 0.5)
	return 1 - 0.5*ib
}

func (t TDist) CDFEach(xs []float64) []float64 {
	return cdfEach(t, xs)
}

func (t TDist) InvCDF(p float64) float64 {
	if math.IsNaN(p) {
		return nan
	}
	if p <= 0 {
		return -inf
	}
	if p >= 1 {
		return inf
	}
	if p == 0.5 {
		return 0
	}
	// Invert through the incomplete beta relation used by CDF:
	// for x > 0, CDF(x) = 1 - I_w(V/2, 1/2)/2 with w = V/(V+x²).
	pp := 2 * math.Min(p, 1-p)
	w, err := mathx.InvBetaInc(pp, t.V/2, 0.5)
	if err != nil || w == 0 {
		return nan
	}
	x := math.Sqrt(t.V * (1 - w) / w)
	if p < 0.5 {
		return -x
	}
	return x
}

func (t TDist) InvCDFEach(ps []float64) []float64 {
	return invCDFEach(t, ps)
}

// Rand draws a variate as Z/sqrt(X/V) where Z is standard normal and
// X is chi-squared with V degrees of freedom. rng must not be nil.
func (t TDist) Rand(rng *rand.Rand) float64 {
	z := rng.NormFloat64()
	x := GammaDist{t.V / 2, 0.5}.Rand(rng)
	return z / math.Sqrt(x/t.V)
}

func (t TDist) Bounds() (float64, float64) {
	// The tails are heavy for small V; cover the central 99%.
	return t.InvCDF(0.005), t.InvCDF(0.995)
}

// Mean returns 0 for V > 1. For V <= 1 the mean integral diverges in
// both directions and the mean is undefined.
func (t TDist) Mean() (float64, error) {
	if t.V <= 1 {
		return nan, undefinedf("t mean undefined for v=%v <= 1", t.V)
	}
	return 0, nil
}

// Variance returns V/(V-2) for V > 2 and +Inf for 1 < V <= 2. For
// V <= 1 the variance is undefined.
func (t TDist) Variance() (float64, error) {
	switch {
	case t.V > 2:
		return t.V / (t.V - 2), nil
	case t.V > 1:
		return inf, nil
	}
	return nan, undefinedf("t variance undefined for v=%v <= 1", t.V)
}

// Mode returns 0.
func (t TDist) Mode() float64 { return 0 }

// Median returns 0.
func (t TDist) Median() float64 { return 0 }

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
//
// Sigma may be zero, in which case the distribution is degenerate:
// all probability mass concentrates at Mu, the PDF is +Inf at Mu and
// 0 elsewhere, and the CDF is a unit step at Mu (the DeltaDist
// convention).
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1)
var StdNormal = NormalDist{0, 1}

// NewNormalDist returns the normal distribution with mean mu and
// standard deviation sigma. sigma must be non-negative.
func NewNormalDist(mu, sigma float64) (NormalDist, error) {
	if math.IsNaN(mu) || math.IsNaN(sigma) || sigma < 0 {
		return NormalDist{}, invalidParamf("standard deviation must be non-negative; got sigma=%v", sigma)
	}
	return NormalDist{mu, sigma}, nil
}

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

func (n NormalDist) PDF(x float64) float64 {
	if n.Sigma == 0 {
		return DeltaDist{n.Mu}.PDF(x)
	}
	z := x - n.Mu
	return math.Exp(-z*z/(2*n.Sigma*n.Sigma)) * invSqrt2Pi / n.Sigma
}

func (n NormalDist) PDFEach(xs []float64) []float64 {
	if n.Sigma == 0 {
		return DeltaDist{n.Mu}.PDFEach(xs)
	}
	res := make([]float64, len(xs))
	if n.Mu == 0 && n.Sigma == 1 {
		// Standard normal fast path
		for i, x := range xs {
			res[i] = math.Exp(-x*x/2) * invSqrt2Pi
		}
	} else {
		a := -1 / (2 * n.Sigma * n.Sigma)
		b := invSqrt2Pi / n.Sigma
		for i, x := range xs {
			z := x - n.Mu
			res[i] = math.Exp(z*z*a) * b
		}
	}
	return res
}

func (n NormalDist) LnPDF(x float64) float64 {
	if n.Sigma == 0 {
		return DeltaDist{n.Mu}.LnPDF(x)
	}
	z := (x - n.Mu) / n.Sigma
	return -z*z/2 + math.Log(invSqrt2Pi) - math.Log(n.Sigma)
}

func (n NormalDist) CDF(x float64) float64 {
	if n.Sigma == 0 {
		return DeltaDist{n.Mu}.CDF(x)
	}
	return math.Erfc(-(x-n.Mu)/(n.Sigma*math.Sqrt2)) / 2
}

func (n NormalDist) CDFEach(xs []float64) []float64 {
	if n.Sigma == 0 {
		return DeltaDist{n.Mu}.CDFEach(xs)
	}
	res := make([]float64, len(xs))
	a := 1 / (n.Sigma * math.Sqrt2)
	for i, x := range xs {
		res[i] = math.Erfc(-(x-n.Mu)*a) / 2
	}
	return res
}

func (n NormalDist) InvCDF(p float64) (x float64) {
	// This is based on Peter John Acklam's inverse normal CDF
	// algorithm: http://home.online.no/~pjacklam/notes/invnorm/
	const (
		a1 = -3.969683028665376e+01
		a2 = 2.209460984245205e+02
		a3 = -2.759285104469687e+02
		a4 = 1.383577518672690e+02
		a5 = -3.066479806614716e+01
		a6 = 2.506628277459239e+00

		b1 = -5.447609879822406e+01
		b2 = 1.615858368580409e+02
		b3 = -1.556989798598866e+02
		b4 = 6.680131188771972e+01
		b5 = -1.328068155288572e+01

		c1 = -7.784894002430293e-03
		c2 = -3.223964580411365e-01
		c3 = -2.400758277161838e+00
		c4 = -2.549732539343734e+00
		c5 = 4.374664141464968e+00
		c6 = 2.938163982698783e+00

		d1 = 7.784695709041462e-03
		d2 = 3.224671290700398e-01
		d3 = 2.445134137142996e+00
		d4 = 3.754408661907416e+00

		plow  = 0.02425
		phigh = 1 - plow
	)

	if n.Sigma == 0 {
		return DeltaDist{n.Mu}.InvCDF(p)
	}
	if math.IsNaN(p) {
		return nan
	} else if p <= 0 {
		return -inf
	} else if p >= 1 {
		return inf
	}

	if p < plow {
		// Rational approximation for lower region.
		q := math.Sqrt(-2 * math.Log(p))
		x = (((((c1*q+c2)*q+c3)*q+c4)*q+c5)*q + c6) /
			((((d1*q+d2)*q+d3)*q+d4)*q + 1)
	} else if phigh < p {
		// Rational approximation for upper region.
		q := math.Sqrt(-2 * math.Log(1-p))
		x = -(((((c1*q+c2)*q+c3)*q+c4)*q+c5)*q + c6) /
			((((d1*q+d2)*q+d3)*q+d4)*q + 1)
	} else {
		// Rational approximation for central region.
		q := p - 0.5
		r := q * q
		x = (((((a1*r+a2)*r+a3)*r+a4)*r+a5)*r + a6) * q /
			(((((b1*r+b2)*r+b3)*r+b4)*r+b5)*r + 1)
	}

	// One Halley refinement step brings the approximation to full
	// double precision.
	e := 0.5*math.Erfc(-x/math.Sqrt2) - p
	u := e * math.Sqrt(2*math.Pi) * math.Exp(x*x/2)
	x = x - u/(1+x*u/2)

	// Adjust from standard normal.
	return x*n.Sigma + n.Mu
}

func (n NormalDist) InvCDFEach(ps []float64) []float64 {
	return invCDFEach(n, ps)
}

// Rand draws a variate from the distribution using rng, which must
// not be nil.
func (n NormalDist) Rand(rng *rand.Rand) float64 {
	return rng.NormFloat64()*n.Sigma + n.Mu
}

func (n NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return n.Mu - stddevs*n.Sigma, n.Mu + stddevs*n.Sigma
}

// Mean returns Mu.
func (n NormalDist) Mean() float64 { return n.Mu }

// Variance returns Sigma².
func (n NormalDist) Variance() float64 { return n.Sigma * n.Sigma }

// StdDev returns Sigma.
func (n NormalDist) StdDev() float64 { return n.Sigma }

// Skewness returns 0; the normal distribution is symmetric.
func (n NormalDist) Skewness() float64 { return 0 }

// Mode returns Mu.
func (n NormalDist) Mode() float64 { return n.Mu }

// Entropy returns the differential entropy ln(σ√(2πe)). For the
// degenerate Sigma=0 distribution this is -Inf.
func (n NormalDist) Entropy() float64 {
	if n.Sigma == 0 {
		return -inf
	}
	return 0.5 * math.Log(2*math.Pi*math.E*n.Sigma*n.Sigma)
}

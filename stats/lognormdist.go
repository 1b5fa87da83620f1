// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"
)

// LogNormalDist is the distribution of exp(N) where N is normal with
// mean Mu and standard deviation Sigma.
type LogNormalDist struct {
	Mu, Sigma float64
}

// NewLogNormalDist returns the log-normal distribution whose
// logarithm has mean mu and standard deviation sigma. sigma must be
// positive.
func NewLogNormalDist(mu, sigma float64) (LogNormalDist, error) {
	if math.IsNaN(mu) || math.IsNaN(sigma) || sigma <= 0 {
		return LogNormalDist{}, invalidParamf("standard deviation must be positive; got sigma=%v", sigma)
	}
	return LogNormalDist{mu, sigma}, nil
}

func (l LogNormalDist) normal() NormalDist {
	return NormalDist{l.Mu, l.Sigma}
}

func (l LogNormalDist) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Exp(l.LnPDF(x))
}

func (l LogNormalDist) PDFEach(xs []float64) []float64 {
	return pdfEach(l, xs)
}

func (l LogNormalDist) LnPDF(x float64) float64 {
	if x <= 0 {
		return -inf
	}
	z := (math.Log(x) - l.Mu) / l.Sigma
	return -z*z/2 + math.Log(invSqrt2Pi) - math.Log(l.Sigma) - math.Log(x)
}

func (l LogNormalDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return l.normal().CDF(math.Log(x))
}

func (l LogNormalDist) CDFEach(xs []float64) []float64 {
	return cdfEach(l, xs)
}

func (l LogNormalDist) InvCDF(p float64) float64 {
	if math.IsNaN(p) {
		return nan
	}
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return inf
	}
	return math.Exp(l.normal().InvCDF(p))
}

func (l LogNormalDist) InvCDFEach(ps []float64) []float64 {
	return invCDFEach(l, ps)
}

// Rand draws a variate as exp of a normal variate. rng must not be
// nil.
func (l LogNormalDist) Rand(rng *rand.Rand) float64 {
	return math.Exp(l.normal().Rand(rng))
}

func (l LogNormalDist) Bounds() (float64, float64) {
	return 0, l.InvCDF(0.9999)
}

// Mean returns exp(Mu + Sigma²/2).
func (l LogNormalDist) Mean() float64 {
	return math.Exp(l.Mu + l.Sigma*l.Sigma/2)
}

// Variance returns (exp(Sigma²)-1)·exp(2Mu+Sigma²).
func (l LogNormalDist) Variance() float64 {
	s2 := l.Sigma * l.Sigma
	return math.Expm1(s2) * math.Exp(2*l.Mu+s2)
}

// Median returns exp(Mu).
func (l LogNormalDist) Median() float64 { return math.Exp(l.Mu) }

// Mode returns exp(Mu - Sigma²).
func (l LogNormalDist) Mode() float64 { return math.Exp(l.Mu - l.Sigma*l.Sigma) }

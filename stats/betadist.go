// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"

	"github.com/statlib/go-statlib/mathx"
)

// BetaDist is the beta distribution on [0, 1] with shape parameters
// Alpha and Beta.
type BetaDist struct {
	Alpha, Beta float64
}

// NewBetaDist returns the beta distribution with the given shape
// parameters. Both must be positive.
func NewBetaDist(alpha, beta float64) (BetaDist, error) {
	if math.IsNaN(alpha) || alpha <= 0 {
		return BetaDist{}, invalidParamf("alpha must be positive; got alpha=%v", alpha)
	}
	if math.IsNaN(beta) || beta <= 0 {
		return BetaDist{}, invalidParamf("beta must be positive; got beta=%v", beta)
	}
	return BetaDist{alpha, beta}, nil
}

func (b BetaDist) PDF(x float64) float64 {
	if x < 0 || x > 1 {
		return 0
	}
	if x == 0 {
		switch {
		case b.Alpha < 1:
			return inf
		case b.Alpha == 1:
			return b.Beta
		}
		return 0
	}
	if x == 1 {
		switch {
		case b.Beta < 1:
			return inf
		case b.Beta == 1:
			return b.Alpha
		}
		return 0
	}
	return math.Exp(b.LnPDF(x))
}

func (b BetaDist) PDFEach(xs []float64) []float64 {
	return pdfEach(b, xs)
}

func (b BetaDist) LnPDF(x float64) float64 {
	if x < 0 || x > 1 {
		return -inf
	}
	if x == 0 || x == 1 {
		return math.Log(b.PDF(x))
	}
	lb, _ := mathx.LnBeta(b.Alpha, b.Beta)
	return (b.Alpha-1)*math.Log(x) + (b.Beta-1)*math.Log(1-x) - lb
}

func (b BetaDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	p, _ := mathx.BetaInc(x, b.Alpha, b.Beta)
	return p
}

func (b BetaDist) CDFEach(xs []float64) []float64 {
	return cdfEach(b, xs)
}

func (b BetaDist) InvCDF(p float64) float64 {
	if math.IsNaN(p) {
		return nan
	}
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	x, err := mathx.InvBetaInc(p, b.Alpha, b.Beta)
	if err != nil {
		return nan
	}
	return x
}

func (b BetaDist) InvCDFEach(ps []float64) []float64 {
	return invCDFEach(b, ps)
}

// Rand draws a variate as Ga/(Ga+Gb) where Ga, Gb are gamma variates
// with shapes Alpha and Beta. rng must not be nil.
func (b BetaDist) Rand(rng *rand.Rand) float64 {
	ga := GammaDist{b.Alpha, 1}.Rand(rng)
	gb := GammaDist{b.Beta, 1}.Rand(rng)
	return ga / (ga + gb)
}

func (b BetaDist) Bounds() (float64, float64) {
	return 0, 1
}

// Mean returns Alpha/(Alpha+Beta).
func (b BetaDist) Mean() float64 { return b.Alpha / (b.Alpha + b.Beta) }

// Variance returns αβ/((α+β)²(α+β+1)).
func (b BetaDist) Variance() float64 {
	s := b.Alpha + b.Beta
	return b.Alpha * b.Beta / (s * s * (s + 1))
}

// Mode returns (α-1)/(α+β-2) for α, β > 1; otherwise the density has
// no interior maximum and the mode is undefined.
func (b BetaDist) Mode() (float64, error) {
	if b.Alpha <= 1 || b.Beta <= 1 {
		return nan, undefinedf("beta mode undefined for alpha=%v, beta=%v", b.Alpha, b.Beta)
	}
	return (b.Alpha - 1) / (b.Alpha + b.Beta - 2), nil
}

// Entropy returns the differential entropy
// ln B(α,β) - (α-1)ψ(α) - (β-1)ψ(β) + (α+β-2)ψ(α+β).
func (b BetaDist) Entropy() float64 {
	lb, _ := mathx.LnBeta(b.Alpha, b.Beta)
	da, _ := mathx.Digamma(b.Alpha)
	db, _ := mathx.Digamma(b.Beta)
	ds, _ := mathx.Digamma(b.Alpha + b.Beta)
	return lb - (b.Alpha-1)*da - (b.Beta-1)*db + (b.Alpha+b.Beta-2)*ds
}

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"

	"github.com/statlib/go-statlib/mathx"
)

// PoissonDist is the Poisson distribution with rate Lambda: the
// number of events in a unit interval when events arrive
// independently at mean rate Lambda.
type PoissonDist struct {
	Lambda float64
}

// NewPoissonDist returns the Poisson distribution with mean lambda.
// lambda must be positive.
func NewPoissonDist(lambda float64) (PoissonDist, error) {
	if math.IsNaN(lambda) || lambda <= 0 {
		return PoissonDist{}, invalidParamf("rate must be positive; got lambda=%v", lambda)
	}
	return PoissonDist{lambda}, nil
}

// PMF is the probability of exactly int(k) events.
func (p PoissonDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 {
		return 0
	}
	return math.Exp(p.lnPMF(ki))
}

// LnPMF returns ln PMF(k), computed in log space so large rates and
// deep tails stay finite.
func (p PoissonDist) LnPMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 {
		return -inf
	}
	return p.lnPMF(ki)
}

func (p PoissonDist) lnPMF(k int) float64 {
	lf, _ := mathx.LnFactorial(k)
	return float64(k)*math.Log(p.Lambda) - p.Lambda - lf
}

// CDF is the probability of int(k) or fewer events. It is the upper
// regularized incomplete gamma function Q(k+1, λ).
func (p PoissonDist) CDF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 {
		return 0
	}
	q, _ := mathx.GammaIncComp(float64(ki)+1, p.Lambda)
	return q
}

// InvCDF returns the smallest k such that CDF(k) >= q, by binary
// search over the CDF. The CDF runs through the regularized gamma
// kernel, so the search is exact for any rate; walking the mass
// function instead would underflow e^-λ for rates beyond ~745.
func (p PoissonDist) InvCDF(q float64) float64 {
	if math.IsNaN(q) {
		return nan
	}
	if q <= 0 {
		return 0
	}
	if q >= 1 {
		return inf
	}
	// Bounds covers the weight to well under 1e-9; grow the bracket
	// for q even deeper in the tail.
	lo := 0.0
	_, hi := p.Bounds()
	for p.CDF(hi) < q {
		hi *= 2
	}
	for lo < hi {
		mid := math.Floor(lo + (hi-lo)/2)
		if p.CDF(mid) < q {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Rand draws a variate from the distribution. Below rate 30 this is
// Knuth's multiplication method; above, a gamma waiting-time draw
// peels most of the rate off in one step (Ahrens-Dieter), leaving
// either a binomial count or a small-rate remainder. rng must not be
// nil.
func (p PoissonDist) Rand(rng *rand.Rand) float64 {
	lam := p.Lambda
	k := 0.0
	for lam > 30 {
		m := math.Floor(7 * lam / 8)
		x := GammaDist{m, 1}.Rand(rng)
		if x >= lam {
			// The m'th arrival lands beyond the horizon;
			// the arrivals before it are binomially
			// distributed over the interval.
			return k + BinomialDist{int(m) - 1, lam / x}.Rand(rng)
		}
		k += m
		lam -= x
	}

	// Knuth multiplication method.
	l := math.Exp(-lam)
	prod := rng.Float64()
	n := 0.0
	for prod > l {
		prod *= rng.Float64()
		n++
	}
	return k + n
}

func (p PoissonDist) Step() float64 {
	return 1
}

func (p PoissonDist) Bounds() (float64, float64) {
	// Six sigma above the mean covers the weight to well under
	// 1e-9 for any rate.
	return 0, math.Ceil(p.Lambda + 6*math.Sqrt(p.Lambda) + 4)
}

// Mean returns Lambda.
func (p PoissonDist) Mean() float64 { return p.Lambda }

// Variance returns Lambda.
func (p PoissonDist) Variance() float64 { return p.Lambda }

// Skewness returns 1/sqrt(Lambda).
func (p PoissonDist) Skewness() float64 { return 1 / math.Sqrt(p.Lambda) }

// Mode returns ⌊Lambda⌋.
func (p PoissonDist) Mode() float64 { return math.Floor(p.Lambda) }

// NormalApprox returns the normal approximation to the distribution.
// The same continuity correction as BinomialDist.NormalApprox
// applies.
func (p PoissonDist) NormalApprox() NormalDist {
	return NormalDist{Mu: p.Lambda, Sigma: math.Sqrt(p.Lambda)}
}

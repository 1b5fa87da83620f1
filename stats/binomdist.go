// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"

	"github.com/statlib/go-statlib/mathx"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

// NewBinomialDist returns the binomial distribution counting
// successes in n trials of probability p. n must be non-negative and
// p must lie in [0, 1].
func NewBinomialDist(n int, p float64) (BinomialDist, error) {
	if n < 0 {
		return BinomialDist{}, invalidParamf("trial count must be non-negative; got n=%v", n)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return BinomialDist{}, invalidParamf("success probability must be in [0, 1]; got p=%v", p)
	}
	return BinomialDist{n, p}, nil
}

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return 0
	}
	return math.Exp(d.lnPMF(ki))
}

// LnPMF returns ln PMF(k). The computation runs in log space via
// Lchoose, so it stays finite deep in the tails of large-N
// distributions where PMF underflows.
func (d BinomialDist) LnPMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return -inf
	}
	return d.lnPMF(ki)
}

func (d BinomialDist) lnPMF(k int) float64 {
	// P-boundary cases first: 0*log(0) must come out as 0, not NaN.
	if d.P == 0 {
		if k == 0 {
			return 0
		}
		return -inf
	}
	if d.P == 1 {
		if k == d.N {
			return 0
		}
		return -inf
	}
	return mathx.Lchoose(d.N, k) +
		float64(k)*math.Log(d.P) + float64(d.N-k)*math.Log(1-d.P)
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k float64) float64 {
	k = math.Floor(k)
	ki := int(k)
	if ki < 0 {
		return 0
	} else if ki >= d.N {
		return 1
	}

	// Pr[X <= k] = I_{1-p}(n-k, k+1).
	p, _ := mathx.BetaInc(1-d.P, float64(d.N-ki), k+1)
	return p
}

// InvCDF returns the smallest k such that CDF(k) >= p, walking the
// mass function outward from zero.
func (d BinomialDist) InvCDF(p float64) float64 {
	if math.IsNaN(p) {
		return nan
	}
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return float64(d.N)
	}
	cum := 0.0
	for k := 0; k < d.N; k++ {
		cum += d.PMF(float64(k))
		if cum >= p {
			return float64(k)
		}
	}
	return float64(d.N)
}

// Rand draws a variate from the distribution. For large N the
// rejection-free beta reduction of Knuth (TAOCP vol. 2, §3.4.1)
// shrinks the problem until a short Bernoulli loop finishes it. rng
// must not be nil.
func (d BinomialDist) Rand(rng *rand.Rand) float64 {
	n, p := d.N, d.P
	k := 0
	for n > 30 {
		a := 1 + n/2
		b := n - a + 1
		x := BetaDist{float64(a), float64(b)}.Rand(rng)
		if x >= p {
			// The a'th order statistic of n uniforms landed
			// beyond p; successes are confined to the first
			// a-1 trials.
			n = a - 1
			p /= x
		} else {
			k += a
			n = b - 1
			p = (p - x) / (1 - x)
		}
	}
	for i := 0; i < n; i++ {
		if rng.Float64() < p {
			k++
		}
	}
	return float64(k)
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Step() float64 {
	return 1
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

// Skewness returns (1-2P)/sqrt(Variance). It is undefined for the
// degenerate P=0, P=1, or N=0 cases where the variance vanishes.
func (d BinomialDist) Skewness() (float64, error) {
	v := d.Variance()
	if v == 0 {
		return nan, undefinedf("binomial skewness undefined for n=%v, p=%v", d.N, d.P)
	}
	return (1 - 2*d.P) / math.Sqrt(v), nil
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}

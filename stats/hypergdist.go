// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"

	"github.com/statlib/go-statlib/mathx"
)

// HypergeometricDist is a hypergeometric distribution: the number of
// successes among Draws draws without replacement from a population
// of size N containing K successes.
type HypergeometricDist struct {
	// N is the size of the population. N >= 0.
	N int

	// K is the number of successes in the population. 0 <= K <= N.
	K int

	// Draws is the number of draws from the population. This is
	// usually written "n", but is called Draws here because of
	// limitations on Go identifier naming. 0 <= Draws <= N.
	Draws int
}

// NewHypergeometricDist returns the hypergeometric distribution for
// draws draws without replacement from a population of size n
// containing k successes.
func NewHypergeometricDist(n, k, draws int) (HypergeometricDist, error) {
	if n < 0 {
		return HypergeometricDist{}, invalidParamf("population size must be non-negative; got n=%v", n)
	}
	if k < 0 || k > n {
		return HypergeometricDist{}, invalidParamf("success count must be in [0, %v]; got k=%v", n, k)
	}
	if draws < 0 || draws > n {
		return HypergeometricDist{}, invalidParamf("draw count must be in [0, %v]; got draws=%v", n, draws)
	}
	return HypergeometricDist{n, k, draws}, nil
}

// PMF is the probability of getting exactly int(k) successes in
// d.Draws draws without replacement from a population of size d.N
// that contains exactly d.K successes.
func (d HypergeometricDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	l, h := d.bounds()
	if ki < l || ki > h {
		return 0
	}
	return d.pmf(ki)
}

func (d HypergeometricDist) pmf(k int) float64 {
	return math.Exp(d.lnPMF(k))
}

// LnPMF returns ln PMF(k), computed in log space via Lchoose so that
// large populations do not overflow the binomial coefficients.
func (d HypergeometricDist) LnPMF(k float64) float64 {
	ki := int(math.Floor(k))
	l, h := d.bounds()
	if ki < l || ki > h {
		return -inf
	}
	return d.lnPMF(ki)
}

func (d HypergeometricDist) lnPMF(k int) float64 {
	return mathx.Lchoose(d.K, k) + mathx.Lchoose(d.N-d.K, d.Draws-k) -
		mathx.Lchoose(d.N, d.Draws)
}

// CDF is the probability of getting int(k) or fewer successes in
// d.Draws draws without replacement from a population of size d.N
// that contains exactly d.K successes.
func (d HypergeometricDist) CDF(k float64) float64 {
	// Based on Klotz, A Computational Approach to Statistics.
	ki := int(math.Floor(k))
	l, h := d.bounds()
	if ki < l {
		return 0
	} else if ki >= h {
		return 1
	}
	// Use symmetry to compute the smaller sum.
	flip := false
	if ki > (d.Draws+1)/(d.N+1)*(d.K+1) {
		flip = true
		ki = d.K - ki - 1
		d.Draws = d.N - d.Draws
	}
	p := d.pmf(ki) * d.sum(ki)
	if flip {
		p = 1 - p
	}
	return p
}

func (d HypergeometricDist) sum(k int) float64 {
	const epsilon = 1e-14
	sum, ak := 1.0, 1.0
	l := maxint(0, d.Draws+d.K-d.N)
	for dk := 1; dk <= k-l && ak/sum > epsilon; dk++ {
		ak *= float64(1+k-dk) / float64(d.Draws-k+dk)
		ak *= float64(d.N-d.K-d.Draws+k+1-dk) / float64(d.K-k+dk)
		sum += ak
	}
	return sum
}

// InvCDF returns the smallest k such that CDF(k) >= p, walking the
// mass function across the support.
func (d HypergeometricDist) InvCDF(p float64) float64 {
	l, h := d.bounds()
	if math.IsNaN(p) {
		return nan
	}
	if p <= 0 {
		return float64(l)
	}
	cum := 0.0
	for k := l; k < h; k++ {
		cum += d.pmf(k)
		if cum >= p {
			return float64(k)
		}
	}
	return float64(h)
}

// Rand draws a variate by inverting the CDF at a uniform variate.
// rng must not be nil.
func (d HypergeometricDist) Rand(rng *rand.Rand) float64 {
	return d.InvCDF(rng.Float64())
}

func (d HypergeometricDist) bounds() (int, int) {
	return maxint(0, d.Draws+d.K-d.N), minint(d.Draws, d.K)
}

func (d HypergeometricDist) Bounds() (float64, float64) {
	l, h := d.bounds()
	return float64(l), float64(h)
}

func (d HypergeometricDist) Step() float64 {
	return 1
}

func (d HypergeometricDist) Mean() float64 {
	return float64(d.Draws*d.K) / float64(d.N)
}

func (d HypergeometricDist) Variance() float64 {
	return float64(d.Draws*d.K*(d.N-d.K)*(d.N-d.Draws)) /
		float64(d.N*d.N*(d.N-1))
}

func maxint(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minint(a, b int) int {
	if a < b {
		return a
	}
	return b
}

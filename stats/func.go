// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/cockroachdb/errors"
)

// maxBisectIterations bounds every bisection loop in this package.
// Bisection halves the bracket each step, so 200 iterations reduce
// any representable bracket far below any meaningful tolerance; the
// cap exists so a NaN-poisoned objective cannot loop forever.
const maxBisectIterations = 200

// bisect returns x in [low, high] such that f(x) == 0, or the point
// where f crosses zero if f is discontinuous, to within tolerance.
// f(low) and f(high) must have opposite signs. If the bracket fails
// to shrink within the iteration budget, bisect reports
// ErrNonConvergence along with its best estimate.
func bisect(f func(float64) float64, low, high, tolerance float64) (float64, error) {
	flow, fhigh := f(low), f(high)
	if flow == 0 {
		return low, nil
	}
	if fhigh == 0 {
		return high, nil
	}
	if (flow < 0) == (fhigh < 0) {
		return nan, errors.Newf("bisect: root not bracketed by [%v, %v]", low, high)
	}

	for i := 0; i < maxBisectIterations; i++ {
		mid := low + (high-low)/2
		if high-low <= tolerance || mid == low || mid == high {
			return mid, nil
		}
		fmid := f(mid)
		if fmid == 0 {
			return mid, nil
		}
		if (fmid < 0) == (flow < 0) {
			low, flow = mid, fmid
		} else {
			high = mid
		}
	}
	return low + (high-low)/2,
		errors.Mark(errors.Newf("bisect: no convergence in [%v, %v]", low, high), ErrNonConvergence)
}

// series returns the sum f(0) + f(1) + f(2) + ..., stopping once the
// sum stops changing at 1e-6 absolute.
func series(f func(float64) float64) float64 {
	y, yp := f(0), nan
	for n := 1.0; math.Abs(y-yp) > 1e-6; n++ {
		yp = y
		y += f(n)
	}
	return y
}

// invertCDFTolerance is the absolute tolerance used when a quantile
// must be recovered from a CDF by root finding. It is chosen so that
// CDF(InvertCDF(d, p)) round-trips to ~1e-10 for well-scaled
// distributions without demanding more precision than the CDF itself
// carries.
const invertCDFTolerance = 1e-12

// InvertCDF computes the p'th quantile of dist by root finding on its
// CDF. It is the fallback for distributions with no closed-form or
// kernel-based inverse.
//
// The search starts from dist.Bounds and grows the bracket until it
// encloses p. p must lie in [0, 1]; ErrInvalidParameter is reported
// otherwise, and ErrNonConvergence if the iteration budget runs out.
func InvertCDF(dist Dist, p float64) (float64, error) {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return nan, invalidParamf("quantile probability must be in [0, 1]; got %v", p)
	}

	low, high := dist.Bounds()
	if low >= high {
		low, high = low-1, high+1
	}
	// Grow the bracket geometrically until it encloses p. Each
	// doubling covers another constant slice of any exponential
	// tail, so this terminates quickly for every distribution in
	// this package.
	for i := 0; dist.CDF(low) > p; i++ {
		if i == maxBisectIterations {
			return nan, errors.Mark(
				errors.Newf("quantile bracket for p=%v did not close below", p), ErrNonConvergence)
		}
		low -= high - low
	}
	for i := 0; dist.CDF(high) < p; i++ {
		if i == maxBisectIterations {
			return nan, errors.Mark(
				errors.Newf("quantile bracket for p=%v did not close above", p), ErrNonConvergence)
		}
		high += high - low
	}

	return bisect(func(x float64) float64 { return dist.CDF(x) - p }, low, high, invertCDFTolerance)
}

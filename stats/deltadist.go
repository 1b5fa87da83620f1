// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math/rand"

// DeltaDist is the Dirac delta function, centered at T, with total
// area 1.
//
// The CDF of the Dirac delta function is the Heaviside step function,
// centered at T. Specifically, f(T) == 1.
type DeltaDist struct {
	T float64
}

func (d DeltaDist) PDF(x float64) float64 {
	if x == d.T {
		return inf
	}
	return 0
}

func (d DeltaDist) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		if x == d.T {
			res[i] = inf
		}
	}
	return res
}

func (d DeltaDist) LnPDF(x float64) float64 {
	if x == d.T {
		return inf
	}
	return -inf
}

func (d DeltaDist) CDF(x float64) float64 {
	if x >= d.T {
		return 1
	}
	return 0
}

func (d DeltaDist) CDFEach(xs []float64) []float64 {
	return cdfEach(d, xs)
}

func (d DeltaDist) InvCDF(p float64) float64 {
	return d.T
}

func (d DeltaDist) InvCDFEach(ps []float64) []float64 {
	return invCDFEach(d, ps)
}

// Rand returns T; a degenerate distribution has only one outcome.
// The rng argument is accepted for interface conformance and unused.
func (d DeltaDist) Rand(rng *rand.Rand) float64 {
	return d.T
}

func (d DeltaDist) Bounds() (float64, float64) {
	return d.T - 1, d.T + 1
}

// Mean returns T.
func (d DeltaDist) Mean() float64 { return d.T }

// Variance returns 0.
func (d DeltaDist) Variance() float64 { return 0 }

// Mode returns T.
func (d DeltaDist) Mode() float64 { return d.T }

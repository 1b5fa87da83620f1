// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/statlib/go-statlib/mathx"
)

// DirichletDist is a Dirichlet distribution over probability vectors
// of dimension len(Alpha), parameterized by positive concentrations
// Alpha.
type DirichletDist struct {
	Alpha []float64
}

// NewDirichletDist returns the Dirichlet distribution with
// concentration vector alpha. alpha must have at least two elements,
// all positive.
func NewDirichletDist(alpha []float64) (DirichletDist, error) {
	if len(alpha) < 2 {
		return DirichletDist{}, invalidParamf("dimension must be at least 2; got %v", len(alpha))
	}
	for i, a := range alpha {
		if math.IsNaN(a) || a <= 0 {
			return DirichletDist{}, invalidParamf("concentrations must be positive; got alpha[%v]=%v", i, a)
		}
	}
	return DirichletDist{append([]float64(nil), alpha...)}, nil
}

// Dim returns the dimension of the distribution.
func (d DirichletDist) Dim() int {
	return len(d.Alpha)
}

// alpha0 is the concentration sum Σαᵢ.
func (d DirichletDist) alpha0() float64 {
	return floats.Sum(d.Alpha)
}

// lnNormalizer is the log multivariate beta function,
// Σ lnΓ(αᵢ) - lnΓ(Σαᵢ).
func (d DirichletDist) lnNormalizer() float64 {
	sum := 0.0
	for _, a := range d.Alpha {
		lg, _ := mathx.Lgamma(a)
		sum += lg
	}
	lg0, _ := mathx.Lgamma(d.alpha0())
	return sum - lg0
}

// PDF returns the probability density at x. x must lie on the
// simplex: len(x) == Dim, every component in [0, 1], components
// summing to 1. Points off the simplex have density 0.
func (d DirichletDist) PDF(x []float64) float64 {
	return math.Exp(d.LnPDF(x))
}

// LnPDF returns the log of the probability density at x, computed in
// log space so that extreme concentrations stay finite.
func (d DirichletDist) LnPDF(x []float64) float64 {
	if len(x) != len(d.Alpha) {
		return -inf
	}
	const simplexTolerance = 1e-10
	sum := 0.0
	lp := -d.lnNormalizer()
	for i, xi := range x {
		if xi < 0 || xi > 1 {
			return -inf
		}
		sum += xi
		if xi == 0 {
			switch a := d.Alpha[i]; {
			case a < 1:
				// Density diverges at this face.
				return inf
			case a > 1:
				return -inf
			}
			// a == 1: the component contributes nothing.
			continue
		}
		lp += (d.Alpha[i] - 1) * math.Log(xi)
	}
	if math.Abs(sum-1) > simplexTolerance {
		return -inf
	}
	return lp
}

// Rand draws a variate by normalizing independent Gamma(αᵢ, 1)
// draws. rng must not be nil.
func (d DirichletDist) Rand(rng *rand.Rand) []float64 {
	out := make([]float64, len(d.Alpha))
	for i, a := range d.Alpha {
		out[i] = GammaDist{a, 1}.Rand(rng)
	}
	total := floats.Sum(out)
	floats.Scale(1/total, out)
	return out
}

// Mean returns the mean vector αᵢ/α₀.
func (d DirichletDist) Mean() []float64 {
	a0 := d.alpha0()
	out := make([]float64, len(d.Alpha))
	for i, a := range d.Alpha {
		out[i] = a / a0
	}
	return out
}

// Variance returns the per-component variances
// αᵢ(α₀-αᵢ)/(α₀²(α₀+1)).
func (d DirichletDist) Variance() []float64 {
	a0 := d.alpha0()
	out := make([]float64, len(d.Alpha))
	for i, a := range d.Alpha {
		out[i] = a * (a0 - a) / (a0 * a0 * (a0 + 1))
	}
	return out
}

// Entropy returns the differential entropy.
func (d DirichletDist) Entropy() float64 {
	a0 := d.alpha0()
	k := float64(len(d.Alpha))
	psi0, _ := mathx.Digamma(a0)
	h := d.lnNormalizer() + (a0-k)*psi0
	for _, a := range d.Alpha {
		psi, _ := mathx.Digamma(a)
		h -= (a - 1) * psi
	}
	return h
}

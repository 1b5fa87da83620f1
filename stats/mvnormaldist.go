// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// MVNormalDist is a multivariate normal distribution over vectors of
// dimension len(Mu), parameterized by a mean vector and a symmetric
// positive-definite covariance matrix.
//
// Unlike the univariate distributions in this package, MVNormalDist
// carries precomputed factorization state, so it must be built with
// NewMVNormalDist.
type MVNormalDist struct {
	mu    []float64
	chol  mat.Cholesky
	lower mat.TriDense
	// logNormalizer is ln((2π)^(d/2) |Σ|^(1/2)).
	logNormalizer float64
}

// NewMVNormalDist returns the multivariate normal distribution with
// mean mu and covariance sigma. sigma must be symmetric
// positive-definite; a semi-definite or indefinite matrix fails the
// Cholesky factorization and is reported as an invalid parameter.
func NewMVNormalDist(mu []float64, sigma *mat.SymDense) (*MVNormalDist, error) {
	dim := len(mu)
	if dim == 0 {
		return nil, invalidParamf("dimension must be at least 1")
	}
	if sigma.SymmetricDim() != dim {
		return nil, invalidParamf("covariance is %v×%v, want %v×%v",
			sigma.SymmetricDim(), sigma.SymmetricDim(), dim, dim)
	}
	d := &MVNormalDist{mu: append([]float64(nil), mu...)}
	if ok := d.chol.Factorize(sigma); !ok {
		return nil, invalidParamf("covariance is not positive-definite")
	}
	d.chol.LTo(&d.lower)
	d.logNormalizer = 0.5 * (float64(dim)*math.Log(2*math.Pi) + d.chol.LogDet())
	return d, nil
}

// Dim returns the dimension of the distribution.
func (d *MVNormalDist) Dim() int {
	return len(d.mu)
}

// PDF returns the probability density at x. len(x) must equal Dim.
func (d *MVNormalDist) PDF(x []float64) float64 {
	return math.Exp(d.LnPDF(x))
}

// LnPDF returns the log of the probability density at x, computed via
// the Cholesky solve (x-mu)ᵀ Σ⁻¹ (x-mu) so that high-dimensional or
// tight covariances do not underflow.
func (d *MVNormalDist) LnPDF(x []float64) float64 {
	diff := mat.NewVecDense(len(d.mu), nil)
	for i, xi := range x {
		diff.SetVec(i, xi-d.mu[i])
	}
	var solved mat.VecDense
	if err := d.chol.SolveVecTo(&solved, diff); err != nil {
		return nan
	}
	return -0.5*mat.Dot(diff, &solved) - d.logNormalizer
}

// Rand draws a variate as mu + L·z where L is the Cholesky factor of
// the covariance and z is a vector of standard normals. rng must not
// be nil.
func (d *MVNormalDist) Rand(rng *rand.Rand) []float64 {
	dim := len(d.mu)
	z := mat.NewVecDense(dim, nil)
	for i := 0; i < dim; i++ {
		z.SetVec(i, rng.NormFloat64())
	}
	var x mat.VecDense
	x.MulVec(&d.lower, z)
	out := make([]float64, dim)
	for i := range out {
		out[i] = d.mu[i] + x.AtVec(i)
	}
	return out
}

// Mean returns a copy of the mean vector.
func (d *MVNormalDist) Mean() []float64 {
	return append([]float64(nil), d.mu...)
}

// Covariance returns a copy of the covariance matrix, reconstructed
// from its Cholesky factorization.
func (d *MVNormalDist) Covariance() *mat.SymDense {
	var sigma mat.SymDense
	d.chol.ToSym(&sigma)
	return &sigma
}

// Mode returns the mean vector, which is also the mode.
func (d *MVNormalDist) Mode() []float64 {
	return d.Mean()
}

// Entropy returns the differential entropy,
// (d/2)(1+ln 2π) + (1/2)ln|Σ|.
func (d *MVNormalDist) Entropy() float64 {
	dim := float64(len(d.mu))
	return 0.5*dim*(1+math.Log(2*math.Pi)) + 0.5*d.chol.LogDet()
}

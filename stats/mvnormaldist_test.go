// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMVNormalDistPDF(t *testing.T) {
	// With identity covariance the density factors into
	// independent standard normals.
	sigma := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	d, err := NewMVNormalDist([]float64{0, 0}, sigma)
	require.NoError(t, err)

	for _, x := range [][]float64{{0, 0}, {1, -1}, {2, 0.5}} {
		want := StdNormal.PDF(x[0]) * StdNormal.PDF(x[1])
		assert.True(t, aeq(want, d.PDF(x)), "x=%v", x)
		assert.True(t, aeq(math.Log(want), d.LnPDF(x)), "x=%v", x)
	}
}

func TestMVNormalDistCorrelated(t *testing.T) {
	mu := []float64{1, -2}
	sigma := mat.NewSymDense(2, []float64{4, 1.2, 1.2, 1})
	d, err := NewMVNormalDist(mu, sigma)
	require.NoError(t, err)

	// Density at the mean is 1/(2π sqrt(|Σ|)).
	det := 4*1 - 1.2*1.2
	want := 1 / (2 * math.Pi * math.Sqrt(det))
	assert.True(t, aeq(want, d.PDF(mu)))

	assert.Equal(t, mu, d.Mean())
	assert.Equal(t, mu, d.Mode())

	// Covariance round-trips through the factorization.
	got := d.Covariance()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.True(t, aeq(sigma.At(i, j), got.At(i, j)), "Sigma[%d,%d]", i, j)
		}
	}

	// Entropy of a bivariate normal: 1 + ln(2π) + ln|Σ|/2.
	assert.True(t, aeq(1+math.Log(2*math.Pi)+0.5*math.Log(det), d.Entropy()))
}

func TestMVNormalDistRand(t *testing.T) {
	mu := []float64{3, -1}
	sigma := mat.NewSymDense(2, []float64{2, 0.8, 0.8, 1})
	d, err := NewMVNormalDist(mu, sigma)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(13))
	const draws = 50000
	sum := make([]float64, 2)
	var cov float64
	for i := 0; i < draws; i++ {
		x := d.Rand(rng)
		sum[0] += x[0]
		sum[1] += x[1]
		cov += (x[0] - mu[0]) * (x[1] - mu[1])
	}
	assert.InDelta(t, 3, sum[0]/draws, 0.05)
	assert.InDelta(t, -1, sum[1]/draws, 0.05)
	assert.InDelta(t, 0.8, cov/draws, 0.05)
}

func TestNewMVNormalDist(t *testing.T) {
	_, err := NewMVNormalDist(nil, mat.NewSymDense(1, []float64{1}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	// Dimension mismatch.
	_, err = NewMVNormalDist([]float64{0, 0}, mat.NewSymDense(1, []float64{1}))
	require.Error(t, err)

	// Not positive-definite.
	_, err = NewMVNormalDist([]float64{0, 0}, mat.NewSymDense(2, []float64{1, 2, 2, 1}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	d, err := NewMVNormalDist([]float64{5}, mat.NewSymDense(1, []float64{4}))
	require.NoError(t, err)
	assert.Equal(t, 1, d.Dim())
	// A 1-d multivariate normal is the usual normal.
	n := NormalDist{Mu: 5, Sigma: 2}
	assert.True(t, aeq(n.PDF(6), d.PDF([]float64{6})))
}

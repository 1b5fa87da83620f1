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
)

func TestNormalDist(t *testing.T) {
	d := StdNormal
	testFunc(t, "StdNormal.PDF", d.PDF, map[float64]float64{
		-1: 0.24197072451914337,
		0:  0.3989422804014327,
		1:  0.24197072451914337,
		3:  0.0044318484119380075,
	})
	testFunc(t, "StdNormal.CDF", d.CDF, map[float64]float64{
		-2: 0.022750131948179195,
		-1: 0.15865525393145705,
		0:  0.5,
		1:  0.8413447460685429,
		2:  0.9772498680518208,
	})
	testInvCDF(t, d)

	scaled := NormalDist{Mu: 10, Sigma: 2}
	assert.True(t, aeq(d.PDF(1)/2, scaled.PDF(12)))
	assert.True(t, aeq(d.CDF(1), scaled.CDF(12)))
	assert.True(t, aeq(12, scaled.InvCDF(d.CDF(1))))
}

func TestNormalDistLnPDF(t *testing.T) {
	d := NormalDist{Mu: 0, Sigma: 1}
	for _, x := range []float64{-3, -1, 0, 0.5, 4} {
		assert.True(t, aeq(math.Log(d.PDF(x)), d.LnPDF(x)), "x=%v", x)
	}
	// Far tail where PDF underflows.
	lp := d.LnPDF(-50)
	assert.False(t, math.IsInf(lp, -1))
	assert.True(t, aeq(-50*50/2-math.Log(math.Sqrt(2*math.Pi)), lp))
}

func TestNormalDistInvCDFRoundTrip(t *testing.T) {
	d := NormalDist{Mu: -4, Sigma: 3}
	for _, p := range []float64{1e-9, 1e-4, 0.01, 0.3, 0.5, 0.7, 0.99, 1 - 1e-9} {
		x := d.InvCDF(p)
		if got := d.CDF(x); !aeq(p, got) {
			t.Errorf("CDF(InvCDF(%v)): want %v, got %v", p, p, got)
		}
	}
	// Out-of-range probabilities clamp to the support boundary.
	assert.True(t, math.IsInf(d.InvCDF(-0.1), -1))
	assert.True(t, math.IsInf(d.InvCDF(1.1), 1))
	assert.True(t, math.IsNaN(d.InvCDF(math.NaN())))
}

func TestNormalDistDegenerate(t *testing.T) {
	// A zero-width normal behaves as a point mass.
	d := NormalDist{Mu: 2, Sigma: 0}
	assert.Equal(t, 0.0, d.CDF(1.999))
	assert.Equal(t, 1.0, d.CDF(2))
	assert.Equal(t, 2.0, d.InvCDF(0.5))
	assert.True(t, math.IsInf(d.PDF(2), 1))
	assert.Equal(t, 0.0, d.PDF(1))

	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, 2.0, d.Rand(rng))
}

func TestNewNormalDist(t *testing.T) {
	_, err := NewNormalDist(0, -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = NewNormalDist(math.NaN(), 1)
	require.Error(t, err)

	d, err := NewNormalDist(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, d.Mu)
}

func TestNormalDistMoments(t *testing.T) {
	d := NormalDist{Mu: 5, Sigma: 2}
	assert.Equal(t, 5.0, d.Mean())
	assert.Equal(t, 4.0, d.Variance())
	assert.Equal(t, 2.0, d.StdDev())
	assert.Equal(t, 0.0, d.Skewness())
	assert.Equal(t, 5.0, d.Mode())
	assert.True(t, aeq(0.5*math.Log(2*math.Pi*math.E*4), d.Entropy()))
}

func TestNormalDistRand(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := NormalDist{Mu: -1, Sigma: 2}
	const draws = 50000
	sum, sumSq := 0.0, 0.0
	for i := 0; i < draws; i++ {
		x := d.Rand(rng)
		sum += x
		sumSq += x * x
	}
	mean := sum / draws
	variance := sumSq/draws - mean*mean
	assert.InDelta(t, -1, mean, 0.05)
	assert.InDelta(t, 4, variance, 0.15)
}

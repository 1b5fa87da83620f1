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

	"github.com/statlib/go-statlib/mathx"
)

func TestHypergeometricDist(t *testing.T) {
	// Urn with 50 marbles, 5 white; draw 10.
	d := HypergeometricDist{N: 50, K: 5, Draws: 10}
	pmf := func(k int) float64 {
		return mathx.Choose(d.K, k) * mathx.Choose(d.N-d.K, d.Draws-k) /
			mathx.Choose(d.N, d.Draws)
	}
	cum := 0.0
	for k := 0; k <= 5; k++ {
		want := pmf(k)
		if got := d.PMF(float64(k)); !aeq(want, got) {
			t.Errorf("PMF(%v): want %v, got %v", k, want, got)
		}
		cum += want
		if got := d.CDF(float64(k)); !aeq(cum, got) {
			t.Errorf("CDF(%v): want %v, got %v", k, cum, got)
		}
	}
	assert.Equal(t, 0.0, d.PMF(-1))
	assert.Equal(t, 0.0, d.PMF(6))
	assert.Equal(t, 0.0, d.CDF(-1))
	assert.Equal(t, 1.0, d.CDF(5))

	testDiscreteCDF(t, "Hypergeometric(50,5,10).CDF", d)
}

func TestHypergeometricDistTightSupport(t *testing.T) {
	// Draws so large the support is pinned away from zero:
	// drawing 8 of 10 with 6 successes forces at least 4.
	d := HypergeometricDist{N: 10, K: 6, Draws: 8}
	low, high := d.Bounds()
	assert.Equal(t, 4.0, low)
	assert.Equal(t, 6.0, high)
	assert.Equal(t, 0.0, d.PMF(3))
	assert.Equal(t, 0.0, d.CDF(3))
	testDiscreteCDF(t, "Hypergeometric(10,6,8).CDF", d)
}

func TestHypergeometricDistLnPMF(t *testing.T) {
	d := HypergeometricDist{N: 40, K: 12, Draws: 15}
	low, high := d.Bounds()
	for k := low; k <= high; k++ {
		assert.True(t, aeq(math.Log(d.PMF(k)), d.LnPMF(k)), "k=%v", k)
	}
	assert.True(t, math.IsInf(d.LnPMF(low-1), -1))
}

func TestHypergeometricDistMoments(t *testing.T) {
	d := HypergeometricDist{N: 50, K: 5, Draws: 10}
	assert.True(t, aeq(1, d.Mean()))
	assert.True(t, aeq(float64(10*5*45*40)/float64(50*50*49), d.Variance()))
}

func TestHypergeometricDistInvCDF(t *testing.T) {
	d := HypergeometricDist{N: 20, K: 8, Draws: 6}
	low, high := d.Bounds()
	for k := low; k < high; k++ {
		q := d.CDF(k)
		if got := d.InvCDF(q); got != k {
			t.Errorf("InvCDF(%v): want %v, got %v", q, k, got)
		}
	}
	assert.Equal(t, low, d.InvCDF(0))
	assert.Equal(t, high, d.InvCDF(1))
}

func TestHypergeometricDistRand(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	d := HypergeometricDist{N: 100, K: 30, Draws: 20}
	const draws = 20000
	sum := 0.0
	for i := 0; i < draws; i++ {
		x := d.Rand(rng)
		low, high := d.Bounds()
		if x < low || x > high {
			t.Fatalf("draw %v outside support", x)
		}
		sum += x
	}
	assert.InDelta(t, d.Mean(), sum/draws, 0.1)
}

func TestNewHypergeometricDist(t *testing.T) {
	_, err := NewHypergeometricDist(-1, 0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = NewHypergeometricDist(10, 11, 5)
	require.Error(t, err)

	_, err = NewHypergeometricDist(10, 5, 11)
	require.Error(t, err)

	d, err := NewHypergeometricDist(10, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, 10, d.N)
}

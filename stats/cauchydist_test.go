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

func TestCauchyDist(t *testing.T) {
	c := CauchyDist{X0: 0, Gamma: 1}
	testFunc(t, "Cauchy(0,1).PDF", c.PDF, map[float64]float64{
		-1: 1 / (2 * math.Pi),
		0:  1 / math.Pi,
		1:  1 / (2 * math.Pi),
	})
	testFunc(t, "Cauchy(0,1).CDF", c.CDF, map[float64]float64{
		-1: 0.25,
		0:  0.5,
		1:  0.75,
	})
	testInvCDF(t, c)

	shifted := CauchyDist{X0: 3, Gamma: 2}
	assert.Equal(t, 3.0, shifted.Median())
	assert.Equal(t, 3.0, shifted.Mode())
	assert.True(t, aeq(0.5, shifted.CDF(3)))
	assert.True(t, aeq(0.75, shifted.CDF(5)))
	assert.True(t, aeq(math.Log(8*math.Pi), shifted.Entropy()))

	rng := rand.New(rand.NewSource(2))
	med := make([]float64, 0, 10001)
	for i := 0; i < cap(med); i++ {
		med = append(med, shifted.Rand(rng))
	}
	s := Sample{Xs: med}
	m, err := s.Median()
	require.NoError(t, err)
	assert.InDelta(t, 3, m, 0.15)

	_, err = NewCauchyDist(0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestLogNormalDist(t *testing.T) {
	l := LogNormalDist{Mu: 0, Sigma: 1}
	// CDF is the normal CDF of ln x.
	for _, x := range []float64{0.1, 0.5, 1, 2, 10} {
		assert.True(t, aeq(StdNormal.CDF(math.Log(x)), l.CDF(x)), "x=%v", x)
	}
	assert.Equal(t, 0.0, l.CDF(0))
	assert.Equal(t, 0.0, l.PDF(-1))
	assert.True(t, aeq(1/math.Sqrt(2*math.Pi), l.PDF(1)))
	testInvCDF(t, l)

	assert.True(t, aeq(math.Exp(0.5), l.Mean()))
	assert.True(t, aeq(math.Expm1(1)*math.E, l.Variance()))
	assert.Equal(t, 1.0, l.Median())
	assert.True(t, aeq(math.Exp(-1), l.Mode()))

	rng := rand.New(rand.NewSource(4))
	const draws = 50000
	sum := 0.0
	for i := 0; i < draws; i++ {
		x := l.Rand(rng)
		if x <= 0 {
			t.Fatalf("non-positive draw %v", x)
		}
		sum += x
	}
	assert.InDelta(t, l.Mean(), sum/draws, 0.05)

	_, err := NewLogNormalDist(0, -2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestParetoDist(t *testing.T) {
	p := ParetoDist{Xm: 1, Alpha: 3}
	testFunc(t, "Pareto(1,3).PDF", p.PDF, map[float64]float64{
		0.5: 0,
		1:   3,
		2:   3.0 / 16,
	})
	testFunc(t, "Pareto(1,3).CDF", p.CDF, map[float64]float64{
		0.5: 0,
		1:   0,
		2:   1 - 0.125,
	})
	testInvCDF(t, p)

	assert.True(t, aeq(1.5, p.Mean()))
	assert.True(t, aeq(3.0/(4*1), p.Variance()))
	assert.True(t, aeq(math.Pow(2, 1.0/3), p.Median()))
	assert.Equal(t, 1.0, p.Mode())

	// Divergent moments are +Inf limits, not errors.
	heavy := ParetoDist{Xm: 2, Alpha: 0.5}
	assert.True(t, math.IsInf(heavy.Mean(), 1))
	assert.True(t, math.IsInf(heavy.Variance(), 1))

	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 1000; i++ {
		if x := p.Rand(rng); x < 1 {
			t.Fatalf("draw %v below scale", x)
		}
	}

	_, err := NewParetoDist(-1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

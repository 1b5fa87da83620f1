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

func TestDirichletDistPDF(t *testing.T) {
	// Dirichlet(1, 1, 1) is uniform over the simplex with density
	// 1/B(1,1,1) = Γ(3) = 2.
	flat, err := NewDirichletDist([]float64{1, 1, 1})
	require.NoError(t, err)
	assert.True(t, aeq(2, flat.PDF([]float64{0.2, 0.3, 0.5})))
	assert.True(t, aeq(2, flat.PDF([]float64{1.0 / 3, 1.0 / 3, 1.0 / 3})))

	// Off the simplex the density vanishes.
	assert.Equal(t, 0.0, flat.PDF([]float64{0.5, 0.5, 0.5}))
	assert.Equal(t, 0.0, flat.PDF([]float64{-0.1, 0.6, 0.5}))
	assert.Equal(t, 0.0, flat.PDF([]float64{0.5, 0.5}))

	// Dirichlet(2, 2): density 6·x(1-x), the Beta(2, 2) marginal.
	d, err := NewDirichletDist([]float64{2, 2})
	require.NoError(t, err)
	b := BetaDist{Alpha: 2, Beta: 2}
	for _, x := range []float64{0.1, 0.5, 0.8} {
		assert.True(t, aeq(b.PDF(x), d.PDF([]float64{x, 1 - x})), "x=%v", x)
		assert.True(t, aeq(b.LnPDF(x), d.LnPDF([]float64{x, 1 - x})), "x=%v", x)
	}
}

func TestDirichletDistMoments(t *testing.T) {
	d, err := NewDirichletDist([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, d.Dim())

	mean := d.Mean()
	assert.True(t, aeq(1.0/6, mean[0]))
	assert.True(t, aeq(2.0/6, mean[1]))
	assert.True(t, aeq(3.0/6, mean[2]))

	v := d.Variance()
	// α_i(α₀-α_i)/(α₀²(α₀+1)) with α₀=6.
	assert.True(t, aeq(1*5.0/(36*7), v[0]))
	assert.True(t, aeq(2*4.0/(36*7), v[1]))
	assert.True(t, aeq(3*3.0/(36*7), v[2]))
}

func TestDirichletDistRand(t *testing.T) {
	d, err := NewDirichletDist([]float64{2, 3, 5})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(12))
	const draws = 20000
	sum := make([]float64, 3)
	for i := 0; i < draws; i++ {
		x := d.Rand(rng)
		total := 0.0
		for j, xj := range x {
			if xj < 0 || xj > 1 {
				t.Fatalf("component %v outside [0, 1]", xj)
			}
			sum[j] += xj
			total += xj
		}
		if !aeq(1, total) {
			t.Fatalf("draw sums to %v", total)
		}
	}
	mean := d.Mean()
	for j := range mean {
		assert.InDelta(t, mean[j], sum[j]/draws, 0.01, "component %d", j)
	}
}

func TestDirichletDistEntropy(t *testing.T) {
	// For the flat Dirichlet(1, 1) the density is uniform on [0, 1]
	// and the entropy is 0.
	d, err := NewDirichletDist([]float64{1, 1})
	require.NoError(t, err)
	assert.True(t, aeq(0, d.Entropy()))

	// Matches the Beta entropy for two components.
	d, err = NewDirichletDist([]float64{3, 4})
	require.NoError(t, err)
	assert.True(t, aeq(BetaDist{Alpha: 3, Beta: 4}.Entropy(), d.Entropy()))
}

func TestNewDirichletDist(t *testing.T) {
	_, err := NewDirichletDist([]float64{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = NewDirichletDist([]float64{1, 0})
	require.Error(t, err)

	_, err = NewDirichletDist([]float64{1, math.NaN()})
	require.Error(t, err)
}

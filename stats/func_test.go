// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBisect(t *testing.T) {
	x, err := bisect(func(x float64) float64 { return x*x - 2 }, 0, 2, 1e-10)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, x, 1e-9)

	// Exact root at an endpoint.
	x, err = bisect(func(x float64) float64 { return x }, 0, 1, 1e-10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, x)

	// Unbracketed root.
	_, err = bisect(func(x float64) float64 { return x*x + 1 }, -1, 1, 1e-10)
	require.Error(t, err)

	// Discontinuous crossing: finds the step location.
	step := func(x float64) float64 {
		if x < 0.25 {
			return -1
		}
		return 1
	}
	x, err = bisect(step, 0, 1, 1e-6)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, x, 1e-6)
}

func TestSeries(t *testing.T) {
	// Geometric series 1 + 1/2 + 1/4 + ... = 2.
	got := series(func(n float64) float64 { return math.Pow(0.5, n) })
	assert.InDelta(t, 2, got, 1e-4)
}

func TestInvertCDF(t *testing.T) {
	// Invert a distribution with no closed-form inverse path and
	// compare against the closed form it hides.
	d := NormalDist{Mu: 2, Sigma: 3}
	for _, p := range []float64{0.01, 0.25, 0.5, 0.75, 0.99} {
		x, err := InvertCDF(d, p)
		require.NoError(t, err)
		assert.InDelta(t, d.InvCDF(p), x, 1e-6, "p=%v", p)
	}

	_, err := InvertCDF(d, -0.5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	_, err = InvertCDF(d, math.NaN())
	require.Error(t, err)
}

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestBeta(t *testing.T) {
	b, err := Beta(1, 1)
	require.NoError(t, err)
	require.InDelta(t, 1, b, 1e-13)

	// B(2, 3) = Γ(2)Γ(3)/Γ(5) = 1·2/24.
	b, err = Beta(2, 3)
	require.NoError(t, err)
	require.InDelta(t, 1.0/12, b, 1e-13)

	// B(a, b) = B(b, a).
	b1, err := Beta(3.5, 0.7)
	require.NoError(t, err)
	b2, err := Beta(0.7, 3.5)
	require.NoError(t, err)
	require.InEpsilon(t, b1, b2, 1e-12)

	_, err = Beta(0, 1)
	require.True(t, errors.Is(err, ErrDomain))
}

func TestBetaIncClosedForms(t *testing.T) {
	// Iₓ(1, 1) = x.
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got, err := BetaInc(x, 1, 1)
		require.NoError(t, err)
		require.InDelta(t, x, got, 1e-13, "x=%v", x)
	}

	// Iₓ(2, 2) = x²(3 - 2x).
	for _, x := range []float64{0.1, 0.4, 0.9} {
		got, err := BetaInc(x, 2, 2)
		require.NoError(t, err)
		require.InDelta(t, x*x*(3-2*x), got, 1e-12, "x=%v", x)
	}

	// Iₓ(1, b) = 1 - (1-x)^b.
	for _, x := range []float64{0.2, 0.6} {
		got, err := BetaInc(x, 1, 7)
		require.NoError(t, err)
		require.InDelta(t, 1-math.Pow(1-x, 7), got, 1e-12, "x=%v", x)
	}
}

func TestBetaIncSymmetry(t *testing.T) {
	// Iₓ(a, b) + I₁₋ₓ(b, a) = 1.
	for _, ab := range [][2]float64{{0.3, 0.3}, {1, 2}, {2, 5}, {10, 0.5}, {80, 120}} {
		a, b := ab[0], ab[1]
		for _, x := range []float64{0, 0.01, 0.2, 0.5, 0.8, 0.99, 1} {
			p1, err := BetaInc(x, a, b)
			require.NoError(t, err)
			p2, err := BetaInc(1-x, b, a)
			require.NoError(t, err)
			require.GreaterOrEqual(t, p1, 0.0)
			require.LessOrEqual(t, p1, 1.0)
			require.InDelta(t, 1, p1+p2, 1e-12, "a=%v b=%v x=%v", a, b, x)
		}
	}
}

func TestBetaIncDomain(t *testing.T) {
	_, err := BetaInc(-0.1, 1, 1)
	require.True(t, errors.Is(err, ErrDomain))
	_, err = BetaInc(1.1, 1, 1)
	require.True(t, errors.Is(err, ErrDomain))
	_, err = BetaInc(0.5, -1, 1)
	require.True(t, errors.Is(err, ErrDomain))
}

func TestInvBetaInc(t *testing.T) {
	for _, ab := range [][2]float64{{0.4, 0.6}, {1, 1}, {2, 3}, {8, 2}, {50, 50}} {
		a, b := ab[0], ab[1]
		for _, p := range []float64{1e-6, 0.01, 0.3, 0.5, 0.7, 0.99, 1 - 1e-9} {
			x, err := InvBetaInc(p, a, b)
			require.NoError(t, err, "a=%v b=%v p=%v", a, b, p)
			back, err := BetaInc(x, a, b)
			require.NoError(t, err)
			require.InDelta(t, p, back, 1e-9, "a=%v b=%v p=%v x=%v", a, b, p, x)
		}
		x, err := InvBetaInc(0, a, b)
		require.NoError(t, err)
		require.Equal(t, 0.0, x)
		x, err = InvBetaInc(1, a, b)
		require.NoError(t, err)
		require.Equal(t, 1.0, x)
	}
}

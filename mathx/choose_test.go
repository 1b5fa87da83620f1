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

func TestFactorial(t *testing.T) {
	want := 1.0
	for n := 0; n <= 20; n++ {
		got, err := Factorial(n)
		require.NoError(t, err)
		require.Equal(t, want, got, "n=%v", n)
		want *= float64(n + 1)
	}

	got, err := Factorial(170)
	require.NoError(t, err)
	require.False(t, math.IsInf(got, 1))

	got, err = Factorial(171)
	require.NoError(t, err)
	require.True(t, math.IsInf(got, 1))

	_, err = Factorial(-1)
	require.True(t, errors.Is(err, ErrDomain))
}

func TestLnFactorial(t *testing.T) {
	for _, n := range []int{0, 1, 5, 170, 171, 10000} {
		got, err := LnFactorial(n)
		require.NoError(t, err)
		want, _ := math.Lgamma(float64(n) + 1)
		require.InDelta(t, want, got, 1e-9*math.Max(1, want), "n=%v", n)
	}
}

func TestChoose(t *testing.T) {
	require.Equal(t, 1.0, Choose(0, 0))
	require.Equal(t, 10.0, Choose(5, 2))
	require.Equal(t, 2598960.0, Choose(52, 5))
	require.Equal(t, 0.0, Choose(5, 6))
	require.Equal(t, 0.0, Choose(5, -1))

	// Above the exact-integer limit the lgamma path takes over.
	require.InEpsilon(t, 1.0089134454556417e29, Choose(100, 50), 1e-9)

	// Lchoose agrees with log(Choose) where both are exact.
	for n := 0; n <= 20; n++ {
		for k := 0; k <= n; k++ {
			require.InDelta(t, math.Log(Choose(n, k)), Lchoose(n, k), 1e-10, "n=%v k=%v", n, k)
		}
	}
	require.True(t, math.IsInf(Lchoose(5, 6), -1))
}

func TestMultinomial(t *testing.T) {
	got, err := Multinomial(4, []int{2, 1, 1})
	require.NoError(t, err)
	require.Equal(t, 12.0, got)

	// n choose k, n-k reduces to the binomial coefficient.
	got, err = Multinomial(10, []int{3, 7})
	require.NoError(t, err)
	require.Equal(t, Choose(10, 3), got)

	_, err = Multinomial(4, []int{2, 1})
	require.True(t, errors.Is(err, ErrDomain))
	_, err = Multinomial(4, []int{5, -1})
	require.True(t, errors.Is(err, ErrDomain))
}

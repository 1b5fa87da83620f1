// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	if expect == got {
		// Covers infinities and exact zeros.
		return true
	}
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against a table of argument/result pairs, naming
// failures after the caller's function name and the argument.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for arg, want := range vals {
		got := f(arg)
		if math.IsNaN(want) && math.IsNaN(got) {
			continue
		}
		if !aeq(want, got) {
			t.Errorf("%s(%v): want %v, got %v", name, arg, want, got)
		}
	}
}

// testDiscreteCDF checks that a discrete distribution's CDF is
// consistent with its PMF: a right-continuous step function that
// accumulates the mass across the support.
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist) {
	t.Helper()
	low, high := dist.Bounds()
	step := dist.Step()

	if got := dist.CDF(low - step); got != 0 {
		t.Errorf("%s.CDF(%v): want 0, got %v", name, low-step, got)
	}
	cum := 0.0
	for k := low; k <= high; k += step {
		cum += dist.PMF(k)
		if got := dist.CDF(k); !aeq(cum, got) {
			t.Errorf("%s.CDF(%v): want %v, got %v", name, k, cum, got)
		}
		if got := dist.CDF(k + step/2); !aeq(cum, got) {
			t.Errorf("%s.CDF(%v): want %v, got %v", name, k+step/2, cum, got)
		}
	}
	if !aeq(1, cum) {
		t.Errorf("%s PMF sums to %v over [%v, %v], want 1", name, cum, low, high)
	}
}

// testInvCDF checks that InvCDF is the inverse of CDF at a spread of
// probabilities.
func testInvCDF(t *testing.T, dist Dist) {
	t.Helper()
	for p := 0.001; p < 1; p += 0.001 {
		x := dist.InvCDF(p)
		if got := dist.CDF(x); !aeq(p, got) {
			t.Errorf("InvCDF(%v)=%v, but CDF(%v)=%v", p, x, x, got)
			break
		}
	}
}

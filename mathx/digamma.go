// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Digamma returns ψ(x), the logarithmic derivative of the gamma
// function Γ'(x)/Γ(x).
//
// Like the gamma function, ψ has poles at zero and the negative
// integers; these arguments are reported as ErrDomain.
func Digamma(x float64) (float64, error) {
	switch {
	case math.IsNaN(x):
		return nan, domainErrf("Digamma: argument is NaN")
	case isNonPosInt(x):
		return nan, domainErrf("Digamma: %v is a pole of the digamma function", x)
	case x < 0:
		// Reflection: ψ(1-x) - ψ(x) = π/tan(πx).
		y, _ := Digamma(1 - x)
		return y - math.Pi/math.Tan(math.Pi*x), nil
	}
	return digamma(x), nil
}

// digamma computes ψ(x) for x > 0 by shifting x above the asymptotic
// threshold with the recurrence ψ(x+1) = ψ(x) + 1/x and then summing
// the asymptotic expansion
//
//	ψ(x) ~ ln x - 1/2x - Σ B₂ₙ/(2n x^2n)
//
// Six Bernoulli terms give full double precision once x >= 6.
func digamma(x float64) float64 {
	result := 0.0
	for x < 6 {
		result -= 1 / x
		x++
	}

	inv := 1 / x
	inv2 := inv * inv
	result += math.Log(x) - 0.5*inv

	// B₂ₙ/2n for 2n = 2, 4, ..., 12.
	sum := inv2 * (1.0/12 - inv2*(1.0/120-inv2*(1.0/252-inv2*(1.0/240-inv2*(1.0/132-inv2*691.0/32760)))))
	return result - sum
}

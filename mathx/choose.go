// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

const smallFactLimit = 20 // 20! => 62 bits

var smallFact [smallFactLimit + 1]int64

// maxFactorial is the largest n for which n! is representable as a
// float64; 171! overflows.
const maxFactorial = 170

var factCache [maxFactorial + 1]float64

func init() {
	smallFact[0] = 1
	fact := int64(1)
	for n := int64(1); n <= smallFactLimit; n++ {
		fact *= n
		smallFact[n] = fact
	}

	factCache[0] = 1
	f := 1.0
	for n := 1; n <= maxFactorial; n++ {
		f *= float64(n)
		factCache[n] = f
	}
}

// Factorial returns n! for n >= 0. All factorials beyond 170!
// overflow a float64 and return +Inf.
func Factorial(n int) (float64, error) {
	if n < 0 {
		return nan, domainErrf("Factorial: requires n >= 0; got n=%v", n)
	}
	if n > maxFactorial {
		return math.Inf(1), nil
	}
	return factCache[n], nil
}

// LnFactorial returns ln(n!) for n >= 0.
func LnFactorial(n int) (float64, error) {
	if n < 0 {
		return nan, domainErrf("LnFactorial: requires n >= 0; got n=%v", n)
	}
	if n <= maxFactorial {
		return math.Log(factCache[n]), nil
	}
	return lgamma(float64(n) + 1), nil
}

// lnFactorial is LnFactorial for callers that have already checked
// n >= 0.
func lnFactorial(n int) float64 {
	if n <= maxFactorial {
		return math.Log(factCache[n])
	}
	return lgamma(float64(n) + 1)
}

// Choose returns the binomial coefficient of n and k.
func Choose(n, k int) float64 {
	if k == 0 || k == n {
		return 1
	}
	if k < 0 || n < k {
		return 0
	}
	if n <= smallFactLimit { // Implies k <= smallFactLimit
		// It's faster to do several integer multiplications
		// than it is to do an extra integer division.
		// Remarkably, this is also faster than pre-computing
		// Pascal's triangle (presumably because this is very
		// cache efficient).
		numer := int64(1)
		for n1 := int64(n - (k - 1)); n1 <= int64(n); n1++ {
			numer *= n1
		}
		denom := smallFact[k]
		return float64(numer / denom)
	}

	return math.Floor(0.5 + math.Exp(lchoose(n, k)))
}

// Lchoose returns math.Log(Choose(n, k)).
func Lchoose(n, k int) float64 {
	if k == 0 || k == n {
		return 0
	}
	if k < 0 || n < k {
		return math.Inf(-1)
	}
	return lchoose(n, k)
}

func lchoose(n, k int) float64 {
	return lnFactorial(n) - lnFactorial(k) - lnFactorial(n-k)
}

// Multinomial returns the multinomial coefficient n choose k₁, k₂, …
// The ks must be non-negative and sum to n.
func Multinomial(n int, ks []int) (float64, error) {
	ln, err := LnMultinomial(n, ks)
	if err != nil {
		return nan, err
	}
	return math.Floor(0.5 + math.Exp(ln)), nil
}

// LnMultinomial returns the natural logarithm of the multinomial
// coefficient n choose k₁, k₂, …
func LnMultinomial(n int, ks []int) (float64, error) {
	if n < 0 {
		return nan, domainErrf("LnMultinomial: requires n >= 0; got n=%v", n)
	}
	sum := 0
	ln := lnFactorial(n)
	for _, k := range ks {
		if k < 0 {
			return nan, domainErrf("LnMultinomial: requires ks >= 0; got %v", k)
		}
		sum += k
		ln -= lnFactorial(k)
	}
	if sum != n {
		return nan, domainErrf("LnMultinomial: ks sum to %v, want n=%v", sum, n)
	}
	return ln, nil
}

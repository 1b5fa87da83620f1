// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions not provided by the
// standard math package.
//
// All functions are pure and operate on float64 arguments. Arguments
// outside a function's mathematical domain are reported with an error
// marked ErrDomain; iterative kernels that exceed their iteration
// budget report ErrNonConvergence rather than returning a truncated
// result.
package mathx

import (
	"math"

	"github.com/cockroachdb/errors"
)

var nan = math.NaN()

var (
	// ErrDomain indicates an argument outside the mathematical
	// domain of a function.
	ErrDomain = errors.New("argument outside function domain")

	// ErrNonConvergence indicates that an iterative approximation
	// exceeded its iteration budget before reaching tolerance.
	ErrNonConvergence = errors.New("iteration failed to converge")
)

// domainErrf constructs a detailed domain error that satisfies
// errors.Is(err, ErrDomain).
func domainErrf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrDomain)
}

// errNoConvergef constructs a detailed error that satisfies
// errors.Is(err, ErrNonConvergence).
func errNoConvergef(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrNonConvergence)
}

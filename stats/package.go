// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides probability distributions and statistics
// over finite samples.
//
// Distribution values are immutable: a constructor validates the
// parameters once and the resulting value can be shared freely across
// goroutines. Sampling is the only operation that touches mutable
// state, and that state (the *rand.Rand source) is injected by the
// caller, who is responsible for serializing concurrent use of it.
package stats // import "github.com/statlib/go-statlib/stats"

import (
	"math"

	"github.com/cockroachdb/errors"
)

var inf = math.Inf(1)
var nan = math.NaN()

var (
	// ErrInvalidParameter is returned by distribution constructors
	// when a parameter lies outside its mathematical domain. The
	// returned error names the offending parameter; use errors.Is
	// against this sentinel to classify it.
	ErrInvalidParameter = errors.New("invalid distribution parameter")

	// ErrUndefined is returned by a moment accessor when the
	// requested quantity has no defined value for the (valid)
	// parameters of the distribution.
	ErrUndefined = errors.New("quantity undefined for these parameters")

	// ErrNonConvergence is returned when an iterative
	// approximation exceeds its iteration budget before reaching
	// tolerance.
	ErrNonConvergence = errors.New("iteration failed to converge")

	// ErrSampleSize is returned when a sample holds fewer
	// observations than the requested statistic needs.
	ErrSampleSize = errors.New("sample is too small")
)

func invalidParamf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidParameter)
}

func undefinedf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrUndefined)
}

func errSampleSizef(stat string, need, got int) error {
	return errors.Mark(
		errors.Newf("%s requires at least %d observations; sample has %d", stat, need, got),
		ErrSampleSize)
}

// SPDX-License-Identifier: MIT
// Package: lvds/builder
//
// errors.go - sentinel errors for the builder package.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrTooManyVertices indicates a size parameter that would exceed MaxVertices
	// (or MaxDenseVertices for the quadratic constructors).
	ErrTooManyVertices = errors.New("builder: parameter too large")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor or a failed core mutation.
	ErrConstructFailed = errors.New("builder: construction failed")
)

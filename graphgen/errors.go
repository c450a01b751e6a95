// SPDX-License-Identifier: MIT
// Package: graphgen
//
// errors.go - sentinel errors for the graphgen package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package graphgen

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("graphgen: parameter too small")

// ErrTooManyVertices indicates a constructor does not fit in the universe
// from its offset on.
var ErrTooManyVertices = errors.New("graphgen: universe too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("graphgen: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("graphgen: rng is required")

// ErrConstructFailed indicates a malformed constructor list (nil entry).
var ErrConstructFailed = errors.New("graphgen: construction failed")

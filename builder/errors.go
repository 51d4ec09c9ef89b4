// SPDX-License-Identifier: MIT
// Package: sumcolouring/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, n1, n2, k) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyEdges indicates that RandomEdges was asked for more distinct edges
// than a simple graph on n vertices can hold.
var ErrTooManyEdges = errors.New("builder: too many edges")

// ErrNeedRandSource indicates that a stochastic constructor or option requires
// a non-nil *rand.Rand in the resolved builderConfig (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error during composition (nil
// constructor) or a topology that violates graph invariants.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind indicates an unrecognised generator short name in ByKind.
var ErrUnknownKind = errors.New("builder: unknown graph kind")

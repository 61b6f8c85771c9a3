// SPDX-License-Identifier: MIT
// Package: matchkit/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Constructors attach context with errors.Wrapf(ErrX, "<Method>: ...").
//   - Constructors never panic; option constructors (WithX) may.

package builder

import "github.com/cockroachdb/errors"

var (
	// ErrTooFewVertices indicates a size parameter (n, rows, cols, degree) below
	// the constructor's minimum or outside its domain.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates p outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates exhausted retries, or a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrOptionViolation indicates an unknown named parameter (solid, id scheme, kind).
	ErrOptionViolation = errors.New("builder: invalid option value")
)

// wrapEdge attaches method context to a failed edge insertion.
func wrapEdge(err error, method, u, v string) error {
	return errors.Wrapf(err, "%s: AddEdge(%s, %s)", method, u, v)
}

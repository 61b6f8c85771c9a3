// SPDX-License-Identifier: MIT
// Package edmonds: sentinel error set.
//
// Every message is prefixed with "edmonds: ..." for easy grepping. Callers
// branch with errors.Is; wrapped context never hides the sentinel.
//
// Two classes:
//   - caller errors (ErrLoopNotAllowed, ErrDuplicateEdge, ErrInvalidPath, ...)
//     come from bad input and are returned as wrapped sentinels.
//   - ErrInvariant marks assertion failures raised by the search or by the
//     consistency checker. errors.HasAssertionFailure reports true for them.

package edmonds

import "github.com/cockroachdb/errors"

var (
	// ErrGraphNil is returned when a nil *Graph is passed to a search entry point.
	ErrGraphNil = errors.New("edmonds: graph is nil")

	// ErrMatchingNil is returned when a nil *Matching is passed to a search entry point.
	ErrMatchingNil = errors.New("edmonds: matching is nil")

	// ErrLoopNotAllowed indicates an attempt to add a self-loop.
	ErrLoopNotAllowed = errors.New("edmonds: self-loop not allowed")

	// ErrDuplicateEdge indicates the edge already exists (in either direction).
	ErrDuplicateEdge = errors.New("edmonds: duplicate edge")

	// ErrEdgeNotFound indicates a referenced edge is not in the graph.
	ErrEdgeNotFound = errors.New("edmonds: edge not found")

	// ErrDuplicateVertex indicates a vertex was registered twice in a matching.
	ErrDuplicateVertex = errors.New("edmonds: duplicate vertex")

	// ErrVertexNotFound indicates a vertex unknown to the matching.
	ErrVertexNotFound = errors.New("edmonds: vertex not found")

	// ErrVertexExposed indicates a mate lookup on an unmatched vertex.
	ErrVertexExposed = errors.New("edmonds: vertex is exposed")

	// ErrInvalidPath indicates a path that is not augmenting for the matching.
	ErrInvalidPath = errors.New("edmonds: invalid augmenting path")

	// ErrInvariant marks a broken internal invariant. It is a bug or a violated
	// precondition, never a recoverable outcome.
	ErrInvariant = errors.New("edmonds: invariant violated")
)

// invariantf builds an assertion failure marked with ErrInvariant.
func invariantf(format string, args ...interface{}) error {
	return errors.Mark(errors.AssertionFailedf(format, args...), ErrInvariant)
}

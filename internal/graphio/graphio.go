// Package graphio reads and writes the graph and matching files used by the
// matchkit CLI.
//
// Edge-list text format, one record per line:
//
//	# comment
//	a b      edge a-b
//	a b *    edge a-b, matched in the initial matching
//	c        isolated vertex c
//
// TOML format:
//
//	vertices = ["c"]                    # optional, isolated vertices
//	edges    = [["a", "b"], ["b", "d"]]
//	matched  = [["a", "b"]]             # optional initial matching
package graphio

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/matchkit/edmonds"
)

// ErrSyntax marks malformed input.
var ErrSyntax = errors.New("graphio: syntax error")

// Input is a parsed graph file.
type Input struct {
	Graph *edmonds.Graph[string]
	// Vertices lists every vertex in first-seen order, isolated ones included.
	Vertices []string
	// Matched is the initial matching; each pair is also an edge of Graph.
	Matched []edmonds.Edge[string]
}

// Matching builds the initial matching over all of in.Vertices.
func (in *Input) Matching() (*edmonds.Matching[string], error) {
	return edmonds.FromEdges(in.Vertices, in.Matched)
}

type inputBuilder struct {
	in   *Input
	seen map[string]struct{}
}

func newInputBuilder() *inputBuilder {
	return &inputBuilder{
		in:   &Input{Graph: edmonds.NewGraph[string]()},
		seen: make(map[string]struct{}),
	}
}

func (b *inputBuilder) vertex(v string) {
	if _, ok := b.seen[v]; ok {
		return
	}
	b.seen[v] = struct{}{}
	b.in.Vertices = append(b.in.Vertices, v)
}

func (b *inputBuilder) edge(u, v string, matched bool) error {
	b.vertex(u)
	b.vertex(v)
	if err := b.in.Graph.AddEdge(u, v); err != nil {
		return err
	}
	if matched {
		b.in.Matched = append(b.in.Matched, edmonds.NewEdge(u, v))
	}

	return nil
}

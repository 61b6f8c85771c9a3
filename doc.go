// Package matchkit finds maximum-cardinality matchings in undirected graphs
// with Edmonds' blossom algorithm.
//
// Layout:
//
//	edmonds/     Graph, Matching, the augmenting-path search with blossom
//	             contraction and lifting, and an optional consistency checker
//	builder/     deterministic graph fixtures (cycles, grids, Platonic solids,
//	             Petersen, random graphs)
//	gonumgraph/  run the search on any gonum graph.Undirected
//	cmd/matchkit the command-line tool (match, generate)
//	examples/    small scenario programs
//
// Quick start:
//
//	g := edmonds.NewGraph[int]()
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//	_ = g.AddEdge(2, 3)
//	m, err := edmonds.Solve(g)
//	// m.Size() == 2
//
// Install the CLI:
//
//	go install github.com/katalvlaran/matchkit/cmd/matchkit@latest
package matchkit

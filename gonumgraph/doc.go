// Package gonumgraph runs the edmonds maximum-cardinality matching on any
// gonum graph.Undirected.
//
// Node IDs become edmonds vertices (int64). Self-loops are ignored, since a
// loop can never belong to a matching. Isolated nodes are reported by
// FromUndirected but stay exposed.
//
//	g := simple.NewUndirectedGraph()
//	g.SetEdge(g.NewEdge(simple.Node(0), simple.Node(1)))
//	pairs, err := gonumgraph.Solve(g)
//	// pairs == [(0,1)]
package gonumgraph

package gonumgraph

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/matchkit/edmonds"
)

// ErrNilGraph is returned when a nil graph.Undirected is passed.
var ErrNilGraph = errors.New("gonumgraph: graph is nil")

// Pair is one matched edge, U < V.
type Pair struct {
	U, V int64
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.U, p.V)
}

// FromUndirected copies g into an edmonds graph. The returned slice lists
// every node ID of g in ascending order, isolated nodes included.
//
// Complexity: O(V+E).
func FromUndirected(g graph.Undirected) (*edmonds.Graph[int64], []int64, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	out := edmonds.NewGraph[int64]()
	nodes := graph.NodesOf(g.Nodes())
	ids := make([]int64, 0, len(nodes))
	for _, u := range nodes {
		uid := u.ID()
		ids = append(ids, uid)
		for _, v := range graph.NodesOf(g.From(uid)) {
			vid := v.ID()
			if uid >= vid {
				// Each undirected edge is seen from both ends; loops are dropped.
				continue
			}
			if err := out.AddEdge(uid, vid); err != nil {
				return nil, nil, errors.Wrapf(err, "gonumgraph: edge %d-%d", uid, vid)
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return out, ids, nil
}

// Matching computes a maximum matching of g.
func Matching(g graph.Undirected, opts ...edmonds.Option) (*edmonds.Matching[int64], error) {
	eg, _, err := FromUndirected(g)
	if err != nil {
		return nil, err
	}

	return edmonds.Solve(eg, opts...)
}

// Solve computes a maximum matching of g and returns its edges sorted by (U, V).
func Solve(g graph.Undirected, opts ...edmonds.Option) ([]Pair, error) {
	m, err := Matching(g, opts...)
	if err != nil {
		return nil, err
	}

	edges := m.Edges()
	pairs := make([]Pair, len(edges))
	for i, e := range edges {
		pairs[i] = Pair{U: e.U, V: e.W}
	}

	return pairs, nil
}

// MatchingGraph returns the matched edges as a gonum graph, so callers can
// keep working with gonum tooling on the result.
func MatchingGraph(pairs []Pair) *simple.UndirectedGraph {
	mg := simple.NewUndirectedGraph()
	for _, p := range pairs {
		mg.SetEdge(mg.NewEdge(simple.Node(p.U), simple.Node(p.V)))
	}

	return mg
}

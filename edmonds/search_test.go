// SPDX-License-Identifier: MIT

package edmonds_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/matchkit/edmonds"
)

// repeats reruns every scenario so different map iteration orders get a
// chance to pick different edges.
const repeats = 50

// SearchSuite exercises the public search entry points.
type SearchSuite struct {
	suite.Suite
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

// solveScenario runs Solve on edges over vertices 0..n-1 with the checker on.
func (s *SearchSuite) solveScenario(n int, edges [][2]int) (*edmonds.Graph[int], *edmonds.Matching[int]) {
	g := graphOf(s.T(), edges)
	m := edmonds.NewMatching[int]()
	for v := 0; v < n; v++ {
		s.Require().NoError(m.AddVertex(v))
	}
	res, err := edmonds.MaximumMatching(g, m, edmonds.WithInvariantChecks())
	s.Require().NoError(err)
	s.Require().NoError(res.Validate())

	return g, res
}

// TestStarWithPendant: only (0,5) can cover 0, and 1 takes any of its leaves.
func (s *SearchSuite) TestStarWithPendant() {
	edges := [][2]int{{0, 1}, {0, 5}, {1, 2}, {1, 3}, {1, 4}, {1, 5}}
	for i := 0; i < repeats; i++ {
		_, m := s.solveScenario(6, edges)
		got := m.Edges()
		s.Require().Len(got, 2)
		s.Contains(got, edmonds.NewEdge(0, 5))
		other := got[0]
		if other == edmonds.NewEdge(0, 5) {
			other = got[1]
		}
		s.Contains([]edmonds.Edge[int]{{1, 2}, {1, 3}, {1, 4}}, other)
	}
}

// TestUniquePerfect: the only perfect matching is (0,1),(2,3),(4,5).
func (s *SearchSuite) TestUniquePerfect() {
	edges := [][2]int{{0, 1}, {0, 5}, {1, 2}, {1, 5}, {2, 3}, {2, 4}, {4, 5}}
	for i := 0; i < repeats; i++ {
		_, m := s.solveScenario(6, edges)
		s.Equal([]edmonds.Edge[int]{{0, 1}, {2, 3}, {4, 5}}, m.Edges())
		s.Equal([]int{}, m.ExposedVertices())
	}
}

// TestOddComponent: five vertices admit two edges; any valid pair is fine.
func (s *SearchSuite) TestOddComponent() {
	edges := [][2]int{{0, 1}, {0, 4}, {1, 2}, {1, 4}, {2, 3}, {3, 4}}
	for i := 0; i < repeats; i++ {
		g, m := s.solveScenario(5, edges)
		s.Equal(2, m.Size())
		s.Len(m.ExposedVertices(), 1)
		for _, e := range m.Edges() {
			s.True(g.HasEdge(e.U, e.W))
		}
		ok, err := edmonds.IsMaximum(g, m)
		s.Require().NoError(err)
		s.True(ok)
	}
}

// TestThreePerfectMatchings: exactly three perfect matchings exist.
func (s *SearchSuite) TestThreePerfectMatchings() {
	edges := [][2]int{{0, 1}, {0, 5}, {1, 2}, {1, 3}, {1, 5}, {2, 3}, {2, 4}, {3, 4}, {4, 5}}
	accepted := [][]edmonds.Edge[int]{
		{{0, 1}, {2, 3}, {4, 5}},
		{{0, 5}, {1, 2}, {3, 4}},
		{{0, 5}, {1, 3}, {2, 4}},
	}
	for i := 0; i < repeats; i++ {
		_, m := s.solveScenario(6, edges)
		s.Contains(accepted, m.Edges())
	}
}

// TestPetersen: the Petersen graph has a perfect matching but no Hamiltonian
// cycle, so the search must go through blossoms.
func (s *SearchSuite) TestPetersen() {
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5},
	}
	for i := 0; i < repeats; i++ {
		_, m := s.solveScenario(10, edges)
		s.Equal(5, m.Size())
	}
}

func (s *SearchSuite) TestEmptyAndIsolated() {
	g := edmonds.NewGraph[int]()
	m := edmonds.NewMatching[int]()
	s.Require().NoError(m.AddVertices([]int{1, 2, 3}))

	res, err := edmonds.MaximumMatching(g, m)
	s.Require().NoError(err)
	s.Zero(res.Size())
	s.Equal([]int{1, 2, 3}, res.ExposedVertices())

	res, err = edmonds.Solve(g)
	s.Require().NoError(err)
	s.Zero(res.Size())
}

func (s *SearchSuite) TestStringVertices() {
	g := edmonds.NewGraph[string]()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"c", "d"}} {
		s.Require().NoError(g.AddEdge(e[0], e[1]))
	}
	m, err := edmonds.Solve(g, edmonds.WithInvariantChecks())
	s.Require().NoError(err)
	s.Equal([]edmonds.Edge[string]{{"a", "b"}, {"c", "d"}}, m.Edges())
}

func (s *SearchSuite) TestInputsUntouched() {
	g := graphOf(s.T(), [][2]int{{0, 1}, {1, 2}, {2, 3}})
	m := edmonds.NewMatching[int]()
	s.Require().NoError(m.AddVertices(g.Vertices()))
	gBefore, mBefore := g.Clone(), m.Clone()

	res, err := edmonds.MaximumMatching(g, m)
	s.Require().NoError(err)
	s.Equal(2, res.Size())
	s.Equal(gBefore, g)
	s.Equal(mBefore, m)
}

func (s *SearchSuite) TestInitialMatchingIsExtended() {
	// 1═2 is a bad start for the path 0-1-2-3; the search must reroute.
	g := graphOf(s.T(), [][2]int{{0, 1}, {1, 2}, {2, 3}})
	m, err := edmonds.FromEdges([]int{0, 1, 2, 3}, []edmonds.Edge[int]{edmonds.NewEdge(1, 2)})
	s.Require().NoError(err)

	path, err := edmonds.AugmentingPath(g, m, edmonds.WithInvariantChecks())
	s.Require().NoError(err)
	s.Require().Len(path, 4)
	s.ElementsMatch([]int{0, 3}, []int{path[0], path[3]})

	res, err := edmonds.MaximumMatching(g, m)
	s.Require().NoError(err)
	s.Equal([]edmonds.Edge[int]{{0, 1}, {2, 3}}, res.Edges())

	path, err = edmonds.AugmentingPath(g, res)
	s.Require().NoError(err)
	s.Empty(path)
}

func (s *SearchSuite) TestIsMaximum() {
	g := graphOf(s.T(), [][2]int{{0, 1}, {1, 2}, {2, 3}})
	m := edmonds.NewMatching[int]()
	s.Require().NoError(m.AddVertices(g.Vertices()))

	ok, err := edmonds.IsMaximum(g, m)
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(m.Augment([]int{1, 2}))
	ok, err = edmonds.IsMaximum(g, m)
	s.Require().NoError(err)
	s.False(ok, "1═2 is maximal but not maximum")
}

func (s *SearchSuite) TestPreconditionErrors() {
	g := graphOf(s.T(), [][2]int{{0, 1}})

	_, err := edmonds.MaximumMatching[int](nil, edmonds.NewMatching[int]())
	s.True(errors.Is(err, edmonds.ErrGraphNil))
	_, err = edmonds.MaximumMatching(g, nil)
	s.True(errors.Is(err, edmonds.ErrMatchingNil))
	_, err = edmonds.Solve[int](nil)
	s.True(errors.Is(err, edmonds.ErrGraphNil))
	_, err = edmonds.AugmentingPath(g, nil)
	s.True(errors.Is(err, edmonds.ErrMatchingNil))

	// 1 is not registered.
	m := edmonds.NewMatching[int]()
	s.Require().NoError(m.AddVertex(0))
	_, err = edmonds.MaximumMatching(g, m)
	s.True(errors.Is(err, edmonds.ErrVertexNotFound))

	// The matched edge 0-2 is not in g.
	m, err = edmonds.FromEdges([]int{0, 1, 2}, []edmonds.Edge[int]{edmonds.NewEdge(0, 2)})
	s.Require().NoError(err)
	_, err = edmonds.MaximumMatching(g, m)
	s.True(errors.Is(err, edmonds.ErrEdgeNotFound))
}

func (s *SearchSuite) TestContextCancelled() {
	g := graphOf(s.T(), [][2]int{{0, 1}, {2, 3}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := edmonds.Solve(g, edmonds.WithContext(ctx))
	s.Require().Error(err)
	s.True(errors.Is(err, context.Canceled))
}

func (s *SearchSuite) TestMaxAugmentations() {
	g := graphOf(s.T(), [][2]int{{0, 1}, {2, 3}, {4, 5}})

	m, err := edmonds.Solve(g, edmonds.WithMaxAugmentations(1))
	s.Require().NoError(err)
	s.Equal(1, m.Size())

	m, err = edmonds.Solve(g, edmonds.WithMaxAugmentations(0))
	s.Require().NoError(err)
	s.Equal(3, m.Size())

	s.Panics(func() { edmonds.WithMaxAugmentations(-1) })
}

// mockLogger records Debugf calls.
type mockLogger struct {
	mock.Mock
}

func (l *mockLogger) Debugf(format string, args ...interface{}) {
	l.Called(format, args)
}

func (s *SearchSuite) TestLoggerSeesContraction() {
	// A triangle with one exposed vertex: scanning 0 always closes 0-1-2.
	g := graphOf(s.T(), [][2]int{{0, 1}, {1, 2}, {2, 0}})
	m, err := edmonds.FromEdges([]int{0, 1, 2}, []edmonds.Edge[int]{edmonds.NewEdge(1, 2)})
	s.Require().NoError(err)

	l := new(mockLogger)
	l.On("Debugf", mock.Anything, mock.Anything).Return()

	res, err := edmonds.MaximumMatching(g, m, edmonds.WithLogger(l))
	s.Require().NoError(err)
	s.Equal(1, res.Size())
	l.AssertCalled(s.T(), "Debugf", "edmonds: contracted blossom %d (base %v, %d vertices) at depth %d", mock.Anything)
	l.AssertCalled(s.T(), "Debugf", "edmonds: search depth=%d exposed=%d", mock.Anything)

	s.Panics(func() { edmonds.WithLogger(nil) })
}

// graphOf builds an int graph from an edge list.
func graphOf(t testing.TB, edges [][2]int) *edmonds.Graph[int] {
	t.Helper()
	g := edmonds.NewGraph[int]()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

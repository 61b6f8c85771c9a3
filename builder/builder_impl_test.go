// Package builder_test contains functional tests for every Constructor,
// verifying counts, topology samples, determinism and the size of the maximum
// matching each fixture is expected to have.
package builder_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matchkit/builder"
	"github.com/katalvlaran/matchkit/edmonds"
)

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      []builder.BuilderOption
		ctor      builder.Constructor
		wantV     int // registered vertices, isolated included
		wantE     int
		wantMatch int
		check     func(t *testing.T, g *edmonds.Graph[string])
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5),
			wantV: 5, wantE: 5, wantMatch: 2,
			check: func(t *testing.T, g *edmonds.Graph[string]) {
				assert.True(t, g.HasEdge("4", "0"), "ring must close")
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4),
			wantV: 4, wantE: 3, wantMatch: 2,
			check: func(t *testing.T, g *edmonds.Graph[string]) {
				assert.False(t, g.HasEdge("3", "0"))
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5),
			wantV: 5, wantE: 4, wantMatch: 1,
			check: func(t *testing.T, g *edmonds.Graph[string]) {
				assert.Equal(t, []string{"1", "2", "3", "4"}, g.Neighbors(builder.CenterVertexID))
			},
		},
		{
			name: "Wheel(6)", ctor: builder.Wheel(6),
			wantV: 6, wantE: 10, wantMatch: 3,
			check: func(t *testing.T, g *edmonds.Graph[string]) {
				assert.Len(t, g.Neighbors(builder.CenterVertexID), 5)
			},
		},
		{
			name: "Complete(7)", ctor: builder.Complete(7),
			wantV: 7, wantE: 21, wantMatch: 3,
		},
		{
			name: "Complete(1)", ctor: builder.Complete(1),
			wantV: 1, wantE: 0, wantMatch: 0,
		},
		{
			name: "CompleteBipartite(3,5)", ctor: builder.CompleteBipartite(3, 5),
			wantV: 8, wantE: 15, wantMatch: 3,
			check: func(t *testing.T, g *edmonds.Graph[string]) {
				assert.True(t, g.HasEdge("L0", "R4"))
				assert.False(t, g.HasEdge("L0", "L1"))
			},
		},
		{
			name: "CompleteBipartite prefixes",
			opts: []builder.BuilderOption{builder.WithPartitionPrefix("A", "B")},
			ctor: builder.CompleteBipartite(2, 2),
			wantV: 4, wantE: 4, wantMatch: 2,
			check: func(t *testing.T, g *edmonds.Graph[string]) {
				assert.True(t, g.HasEdge("A1", "B0"))
			},
		},
		{
			name: "Grid(3,3)", ctor: builder.Grid(3, 3),
			wantV: 9, wantE: 12, wantMatch: 4,
			check: func(t *testing.T, g *edmonds.Graph[string]) {
				assert.True(t, g.HasEdge("1,1", "1,2"))
				assert.True(t, g.HasEdge("1,1", "2,1"))
				assert.False(t, g.HasEdge("0,0", "1,1"))
			},
		},
		{
			name: "Grid(1,1)", ctor: builder.Grid(1, 1),
			wantV: 1, wantE: 0, wantMatch: 0,
		},
		{
			name: "RandomSparse(6,1)", ctor: builder.RandomSparse(6, 1),
			wantV: 6, wantE: 15, wantMatch: 3,
		},
		{
			name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0),
			wantV: 6, wantE: 0, wantMatch: 0,
		},
		{
			name: "Tetrahedron", ctor: builder.PlatonicSolid(builder.Tetrahedron, false),
			wantV: 4, wantE: 6, wantMatch: 2,
		},
		{
			name: "Cube", ctor: builder.PlatonicSolid(builder.Cube, false),
			wantV: 8, wantE: 12, wantMatch: 4,
		},
		{
			name: "Octahedron", ctor: builder.PlatonicSolid(builder.Octahedron, false),
			wantV: 6, wantE: 12, wantMatch: 3,
		},
		{
			name: "Dodecahedron", ctor: builder.PlatonicSolid(builder.Dodecahedron, false),
			wantV: 20, wantE: 30, wantMatch: 10,
		},
		{
			name: "Icosahedron", ctor: builder.PlatonicSolid(builder.Icosahedron, false),
			wantV: 12, wantE: 30, wantMatch: 6,
		},
		{
			name: "Tetrahedron+Center", ctor: builder.PlatonicSolid(builder.Tetrahedron, true),
			wantV: 5, wantE: 10, wantMatch: 2,
		},
		{
			name: "Petersen", ctor: builder.Petersen(),
			wantV: 10, wantE: 15, wantMatch: 5,
			check: func(t *testing.T, g *edmonds.Graph[string]) {
				for _, v := range g.Vertices() {
					assert.Len(t, g.Neighbors(v), 3, "vertex %s", v)
				}
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, vertices, err := builder.BuildGraph(tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Len(t, vertices, tc.wantV)
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.check != nil {
				tc.check(t, g)
			}

			m, err := edmonds.Solve(g, edmonds.WithInvariantChecks())
			require.NoError(t, err)
			assert.Equal(t, tc.wantMatch, m.Size())
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", nil, builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Grid(2,0)", nil, builder.Grid(2, 0), builder.ErrTooFewVertices},
		{"RandomSparse p>1", nil, builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse p<0", nil, builder.RandomSparse(4, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse no rng", nil, builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"RandomRegular no rng", nil, builder.RandomRegular(4, 2), builder.ErrNeedRandSource},
		{"RandomRegular odd n*d", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(5, 3), builder.ErrTooFewVertices},
		{"RandomRegular d>=n", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(4, 4), builder.ErrTooFewVertices},
		{"Platonic unknown", nil, builder.PlatonicSolid(builder.PlatonicName(42), false), builder.ErrOptionViolation},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, vertices, err := builder.BuildGraph(tc.opts, tc.ctor)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Nil(t, g)
			assert.Nil(t, vertices)
		})
	}
}

func TestBuilders_OverlapIsDuplicateEdge(t *testing.T) {
	_, _, err := builder.BuildGraph(nil, builder.Cycle(4), builder.Path(3))
	require.Error(t, err)
	assert.True(t, errors.Is(err, edmonds.ErrDuplicateEdge), "got %v", err)
}

func TestBuilders_SharedVerticesAreRegisteredOnce(t *testing.T) {
	// Path(3) then Star(3): "1" and "2" appear in both.
	_, vertices, err := builder.BuildGraph(nil, builder.Path(3), builder.Star(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", builder.CenterVertexID}, vertices)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) []edmonds.Edge[string] {
		g, _, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g.Edges()
	}

	assert.Equal(t, build(7), build(7))
	assert.NotEqual(t, build(7), build(8))
}

func TestRandomRegular_Degrees(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4, 5} {
		g, vertices, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomRegular(12, 3))
		require.NoError(t, err, "seed %d", seed)
		require.Len(t, vertices, 12)
		assert.Equal(t, 18, g.EdgeCount())
		for _, v := range vertices {
			assert.Len(t, g.Neighbors(v), 3, "seed %d vertex %s", seed, v)
		}

		m, err := edmonds.Solve(g)
		require.NoError(t, err)
		ok, err := edmonds.IsMaximum(g, m)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestRandomRegular_ZeroDegree(t *testing.T) {
	g, vertices, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(3, 0))
	require.NoError(t, err)
	assert.Len(t, vertices, 3)
	assert.Zero(t, g.EdgeCount())
}

func TestIDSchemes_FlowIntoVertices(t *testing.T) {
	_, vertices, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSymbolIDs()}, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, vertices)

	_, vertices, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSymbNumb("v")}, builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1"}, vertices)
}

func TestPlatonicSolid_Regular(t *testing.T) {
	degree := map[builder.PlatonicName]int{
		builder.Tetrahedron:  3,
		builder.Cube:         3,
		builder.Octahedron:   4,
		builder.Dodecahedron: 3,
		builder.Icosahedron:  5,
	}
	for name, d := range degree {
		g, vertices, err := builder.BuildGraph(nil, builder.PlatonicSolid(name, false))
		require.NoError(t, err, name.String())
		for _, v := range vertices {
			assert.Len(t, g.Neighbors(v), d, "%s vertex %s", name, v)
		}
	}
}

// Package builder produces deterministic *edmonds.Graph[string] fixtures for
// tests, benchmarks and the matchkit CLI.
//
// A fixture is assembled by BuildGraph from one or more Constructors:
//
//	g, vertices, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSymbolIDs()},
//		builder.Cycle(5),
//	)
//
// BuildGraph returns the edge graph together with every registered vertex,
// because edmonds.Graph only stores vertices that have edges (a 1×1 Grid or
// K_1 contributes an isolated vertex and nothing else).
//
// Topologies: Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid,
// RandomSparse, RandomRegular, PlatonicSolid and Petersen. ByKind resolves
// them by name.
//
// Options:
//
//   - WithIDScheme and the With*IDs helpers pick the vertex naming (decimal,
//     letters, excel, alnum, hex, prefix+number).
//   - WithSeed / WithRand supply randomness; RandomSparse with 0 < p < 1 and
//     RandomRegular fail with ErrNeedRandSource without one.
//   - WithPartitionPrefix renames the CompleteBipartite sides.
//
// Option constructors panic on nil input. Constructors never panic; they
// return sentinel errors wrapped with a method tag, reachable with errors.Is.
// Overlapping topologies surface edmonds.ErrDuplicateEdge.
package builder

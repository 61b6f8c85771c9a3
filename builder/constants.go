// SPDX-License-Identifier: MIT
// Package builder defines the constants shared by the topology constructors.
package builder

// Method tags prefix constructor errors.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomRegular     = "RandomRegular"
	MethodPlatonicSolid     = "PlatonicSolid"
	MethodPetersen          = "Petersen"
)

// CenterVertexID is the hub of Star, Wheel and stellated Platonic solids.
const CenterVertexID = "Center"

// Minimum sizes.
const (
	// MinCycleNodes: fewer than 3 vertices cannot close a simple ring.
	MinCycleNodes = 3
	// MinPathNodes: a path needs at least one edge.
	MinPathNodes = 2
	// MinStarNodes: one hub plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a 3-cycle rim plus the hub.
	MinWheelNodes = 4
	// MinCompleteNodes: K_1 is a single isolated vertex.
	MinCompleteNodes = 1
	// MinPartitionSize applies to each side of K_{n1,n2}.
	MinPartitionSize = 1
	// MinGridDim: a 1×1 grid has no edges but is valid.
	MinGridDim = 1
	// MinRandomVertices applies to RandomSparse and RandomRegular.
	MinRandomVertices = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// maxStubMatchingAttempts bounds RandomRegular reshuffles.
const maxStubMatchingAttempts = 64

// SPDX-License-Identifier: MIT
// Package: matchkit/builder
//
// variants_platonic.go - canonical data for the five Platonic solids.
//
// Edge sets are generated once at package init from the usual layered
// drawings; emission order is the slice order.
// All five shells have perfect matchings; every solid except the Cube has
// odd faces, so searches on them meet blossoms.

package builder

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// chord is an undirected index pair, resolved to ids through cfg.idFn.
type chord struct {
	U, V int
}

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

var platonicNames = [...]string{"Tetrahedron", "Cube", "Octahedron", "Dodecahedron", "Icosahedron"}

func (p PlatonicName) String() string {
	if p < Tetrahedron || p > Icosahedron {
		return "Unknown"
	}

	return platonicNames[p]
}

// PlatonicByName resolves a solid by case-insensitive name.
// Errors: ErrOptionViolation for unknown names.
func PlatonicByName(name string) (PlatonicName, error) {
	for i, n := range platonicNames {
		if strings.EqualFold(n, name) {
			return PlatonicName(i), nil
		}
	}

	return 0, errors.Wrapf(ErrOptionViolation, "unknown platonic solid %q", name)
}

// platonicVertexCounts maps each PlatonicName to its vertex count.
var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// platonicEdgeSets maps each PlatonicName to its shell edges.
var platonicEdgeSets = map[PlatonicName][]chord{
	Tetrahedron:  tetrahedronEdges(),
	Cube:         cubeEdges(),
	Octahedron:   octahedronEdges(),
	Dodecahedron: dodecahedronEdges(),
	Icosahedron:  icosahedronEdges(),
}

// tetrahedronEdges is K4.
func tetrahedronEdges() []chord {
	var out []chord
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			out = append(out, chord{U: i, V: j})
		}
	}

	return out
}

// cubeEdges is the 3-dimensional hypercube: i and j are adjacent iff their
// labels differ in exactly one bit.
func cubeEdges() []chord {
	var out []chord
	for i := 0; i < 8; i++ {
		for bit := 1; bit < 8; bit <<= 1 {
			if j := i ^ bit; i < j {
				out = append(out, chord{U: i, V: j})
			}
		}
	}

	return out
}

// octahedronEdges is K6 minus the three antipodal pairs {0,1}, {2,3}, {4,5}.
func octahedronEdges() []chord {
	var out []chord
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			if j != i^1 {
				out = append(out, chord{U: i, V: j})
			}
		}
	}

	return out
}

// dodecahedronEdges follows the planar drawing:
//
//	outer pentagon   0..4
//	middle 10-cycle  5..14, outer i joined to 5+2i
//	inner pentagon   15..19, inner 15+i joined to 6+2i
func dodecahedronEdges() []chord {
	var out []chord
	for i := 0; i < 5; i++ {
		out = append(out, chord{U: i, V: (i + 1) % 5})
	}
	for i := 0; i < 10; i++ {
		out = append(out, chord{U: 5 + i, V: 5 + (i+1)%10})
	}
	for i := 0; i < 5; i++ {
		out = append(out, chord{U: 15 + i, V: 15 + (i+1)%5})
	}
	for i := 0; i < 5; i++ {
		out = append(out, chord{U: i, V: 5 + 2*i}, chord{U: 15 + i, V: 6 + 2*i})
	}

	return out
}

// icosahedronEdges: pole 0, upper ring 1..5, lower ring 6..10, pole 11.
// Upper i touches lower i and lower i+1, giving the antiprism band.
func icosahedronEdges() []chord {
	const top, bottom = 0, 11
	upper := func(i int) int { return 1 + i%5 }
	lower := func(i int) int { return 6 + i%5 }

	var out []chord
	for i := 0; i < 5; i++ {
		out = append(out,
			chord{U: top, V: upper(i)},
			chord{U: upper(i), V: upper(i + 1)},
			chord{U: upper(i), V: lower(i)},
			chord{U: upper(i), V: lower(i + 1)},
			chord{U: lower(i), V: lower(i + 1)},
			chord{U: lower(i), V: bottom},
		)
	}

	return out
}

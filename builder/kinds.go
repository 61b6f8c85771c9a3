// SPDX-License-Identifier: MIT
// Package: matchkit/builder
//
// kinds.go - name-based constructor lookup for command-line front ends.

package builder

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// Params carries the numeric knobs a named kind may consult.
// Each kind documents which fields it reads; the rest are ignored.
type Params struct {
	N      int     // vertices (or rows, or left side)
	M      int     // cols, right side, or degree
	P      float64 // edge probability
	Solid  string  // Platonic solid name
	Center bool    // stellate Platonic solids
}

var kinds = map[string]func(Params) (Constructor, error){
	"cycle":    func(p Params) (Constructor, error) { return Cycle(p.N), nil },
	"path":     func(p Params) (Constructor, error) { return Path(p.N), nil },
	"star":     func(p Params) (Constructor, error) { return Star(p.N), nil },
	"wheel":    func(p Params) (Constructor, error) { return Wheel(p.N), nil },
	"complete": func(p Params) (Constructor, error) { return Complete(p.N), nil },
	"bipartite": func(p Params) (Constructor, error) {
		return CompleteBipartite(p.N, p.M), nil
	},
	"grid":    func(p Params) (Constructor, error) { return Grid(p.N, p.M), nil },
	"random":  func(p Params) (Constructor, error) { return RandomSparse(p.N, p.P), nil },
	"regular": func(p Params) (Constructor, error) { return RandomRegular(p.N, p.M), nil },
	"platonic": func(p Params) (Constructor, error) {
		name, err := PlatonicByName(p.Solid)
		if err != nil {
			return nil, err
		}
		return PlatonicSolid(name, p.Center), nil
	},
	"petersen": func(Params) (Constructor, error) { return Petersen(), nil },
}

// KindNames lists the names accepted by ByKind, sorted.
func KindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ByKind resolves a topology name to its Constructor.
//
//	cycle, path, star, wheel, complete   N
//	bipartite                            N (left), M (right)
//	grid                                 N (rows), M (cols)
//	random                               N, P
//	regular                              N, M (degree)
//	platonic                             Solid, Center
//	petersen                             -
//
// Parameter validation is deferred to the constructor.
// Errors: ErrOptionViolation for unknown kinds or solids.
func ByKind(kind string, p Params) (Constructor, error) {
	mk, ok := kinds[kind]
	if !ok {
		return nil, errors.Wrapf(ErrOptionViolation, "unknown kind %q (want one of %v)", kind, KindNames())
	}

	return mk(p)
}

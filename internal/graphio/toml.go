package graphio

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/matchkit/edmonds"
)

// tomlFile is the on-disk TOML layout.
type tomlFile struct {
	Vertices []string    `toml:"vertices,omitempty"`
	Edges    [][2]string `toml:"edges"`
	Matched  [][2]string `toml:"matched,omitempty"`
}

// ReadTOML parses the TOML graph format. Matched pairs must also be listed
// under edges.
//
// Errors: ErrSyntax for undecodable TOML or unknown keys, edmonds graph
// errors, and edmonds.ErrEdgeNotFound for a matched pair that is not an edge.
func ReadTOML(r io.Reader) (*Input, error) {
	var file tomlFile
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "graphio: decode toml"), ErrSyntax)
	}

	b := newInputBuilder()
	for _, v := range file.Vertices {
		b.vertex(v)
	}
	for i, e := range file.Edges {
		if err := b.edge(e[0], e[1], false); err != nil {
			return nil, errors.Wrapf(err, "edges[%d]", i)
		}
	}
	for i, e := range file.Matched {
		if !b.in.Graph.HasEdge(e[0], e[1]) {
			return nil, errors.Wrapf(edmonds.ErrEdgeNotFound, "matched[%d]: %s-%s", i, e[0], e[1])
		}
		b.in.Matched = append(b.in.Matched, edmonds.NewEdge(e[0], e[1]))
	}

	return b.in, nil
}

// WriteTOML writes g in the TOML graph format. Only isolated vertices are
// listed under vertices; matched may be nil.
func WriteTOML(w io.Writer, g *edmonds.Graph[string], vertices []string, matched *edmonds.Matching[string]) error {
	var file tomlFile
	for _, v := range vertices {
		if len(g.Neighbors(v)) == 0 {
			file.Vertices = append(file.Vertices, v)
		}
	}
	for _, e := range g.Edges() {
		file.Edges = append(file.Edges, [2]string{e.U, e.W})
	}
	if matched != nil {
		for _, e := range matched.Edges() {
			file.Matched = append(file.Matched, [2]string{e.U, e.W})
		}
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return errors.Wrap(err, "graphio: encode toml")
	}
	_, err = w.Write(data)

	return errors.Wrap(err, "graphio: write toml")
}

package graphio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/matchkit/edmonds"
)

// MatchingReport is the JSON shape written by WriteMatchingJSON.
type MatchingReport struct {
	Size    int         `json:"size"`
	Edges   [][2]string `json:"edges"`
	Exposed []string    `json:"exposed"`
}

// NewMatchingReport snapshots m.
func NewMatchingReport(m *edmonds.Matching[string]) MatchingReport {
	rep := MatchingReport{
		Size:    m.Size(),
		Edges:   make([][2]string, 0, m.Size()),
		Exposed: m.ExposedVertices(),
	}
	if rep.Exposed == nil {
		rep.Exposed = []string{}
	}
	for _, e := range m.Edges() {
		rep.Edges = append(rep.Edges, [2]string{e.U, e.W})
	}

	return rep
}

// WriteMatchingText writes one matched pair per line, then a summary line:
//
//	a b
//	c d
//	# size 2, exposed: e
func WriteMatchingText(w io.Writer, m *edmonds.Matching[string]) error {
	bw := bufio.NewWriter(w)
	for _, e := range m.Edges() {
		fmt.Fprintln(bw, e.U, e.W)
	}
	fmt.Fprintf(bw, "# size %d, exposed:", m.Size())
	for _, v := range m.ExposedVertices() {
		fmt.Fprint(bw, " ", v)
	}
	fmt.Fprintln(bw)

	return errors.Wrap(bw.Flush(), "graphio: write matching")
}

// WriteMatchingJSON writes NewMatchingReport(m) as indented JSON.
func WriteMatchingJSON(w io.Writer, m *edmonds.Matching[string]) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(NewMatchingReport(m)), "graphio: write matching json")
}

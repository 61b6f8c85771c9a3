package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/matchkit/edmonds"
)

const matchedMark = "*"

// ReadEdgeList parses the edge-list text format.
//
// Errors: ErrSyntax for lines with more than three fields or a third field
// other than "*"; edmonds.ErrLoopNotAllowed and edmonds.ErrDuplicateEdge from
// the graph. All errors carry the line number.
func ReadEdgeList(r io.Reader) (*Input, error) {
	b := newInputBuilder()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)

		switch len(fields) {
		case 0:
		case 1:
			b.vertex(fields[0])
		case 2, 3:
			matched := len(fields) == 3
			if matched && fields[2] != matchedMark {
				return nil, errors.Wrapf(ErrSyntax, "line %d: unexpected %q", line, fields[2])
			}
			if err := b.edge(fields[0], fields[1], matched); err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
		default:
			return nil, errors.Wrapf(ErrSyntax, "line %d: %d fields", line, len(fields))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "graphio: read edge list")
	}

	return b.in, nil
}

// WriteEdgeList writes g in the edge-list text format: isolated vertices of
// vertices first, then every edge of g sorted. Edges present in matched get
// the "*" mark.
func WriteEdgeList(w io.Writer, g *edmonds.Graph[string], vertices []string, matched *edmonds.Matching[string]) error {
	bw := bufio.NewWriter(w)
	for _, v := range vertices {
		if len(g.Neighbors(v)) == 0 {
			fmt.Fprintln(bw, v)
		}
	}
	inMatching := matchedSet(matched)
	for _, e := range g.Edges() {
		if _, ok := inMatching[e]; ok {
			fmt.Fprintln(bw, e.U, e.W, matchedMark)
			continue
		}
		fmt.Fprintln(bw, e.U, e.W)
	}

	return errors.Wrap(bw.Flush(), "graphio: write edge list")
}

func matchedSet(m *edmonds.Matching[string]) map[edmonds.Edge[string]]struct{} {
	set := make(map[edmonds.Edge[string]]struct{})
	if m == nil {
		return set
	}
	for _, e := range m.Edges() {
		set[e] = struct{}{}
	}

	return set
}

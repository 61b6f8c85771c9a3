package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matchkit/builder"
	"github.com/katalvlaran/matchkit/internal/graphio"
)

// run executes the CLI with args and stdin, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestMatch_StdinText(t *testing.T) {
	out, _, err := run(t, "a b\nb c\nc a\nc d\n", "match")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "# size 2, exposed:", lines[2])
}

func TestMatch_FileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.toml")
	require.NoError(t, os.WriteFile(path, []byte(`edges = [["1","2"],["2","3"],["3","4"],["4","5"],["5","1"],["5","6"]]`), 0o600))

	out, _, err := run(t, "", "match", path, "--input-format", "toml", "--output", "json", "--check")
	require.NoError(t, err)

	var rep graphio.MatchingReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 3, rep.Size)
	assert.Empty(t, rep.Exposed)
}

func TestMatch_MaxAugmentations(t *testing.T) {
	out, _, err := run(t, "a b\nc d\ne f\n", "match", "--max-augmentations", "1", "--output", "json")
	require.NoError(t, err)

	var rep graphio.MatchingReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 1, rep.Size)
}

func TestMatch_DebugLogging(t *testing.T) {
	_, stderr, err := run(t, "a b\n", "match", "--log-level", "DEBUG")
	require.NoError(t, err)
	assert.Contains(t, stderr, "edmonds: maximum matching over")
	assert.Contains(t, stderr, "matched 2 of 2 vertices")
}

func TestMatch_EnvConfig(t *testing.T) {
	t.Setenv("MATCHKIT_OUTPUT", "json")
	out, _, err := run(t, "a b\n", "match")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "{"), out)
}

func TestMatch_Errors(t *testing.T) {
	_, _, err := run(t, "a b c d\n", "match")
	assert.True(t, errors.Is(err, graphio.ErrSyntax), "got %v", err)

	_, _, err = run(t, "", "match", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, _, err = run(t, "a b\n", "match", "--output", "yaml")
	assert.Error(t, err)

	_, _, err = run(t, "", "match", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGenerate_EdgeListRoundTrip(t *testing.T) {
	out, _, err := run(t, "", "generate", "petersen", "--ids", "letters", "--solve")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# petersen: 10 vertices, 15 edges, maximum matching 5\n"), out)

	in, err := graphio.ReadEdgeList(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 15, in.Graph.EdgeCount())
	assert.Len(t, in.Matched, 5)

	matched, _, err := run(t, out, "match", "--output", "json")
	require.NoError(t, err)
	var rep graphio.MatchingReport
	require.NoError(t, json.Unmarshal([]byte(matched), &rep))
	assert.Equal(t, 5, rep.Size)
}

func TestGenerate_TOML(t *testing.T) {
	out, _, err := run(t, "", "generate", "grid", "--n", "2", "--m", "3", "--format", "toml")
	require.NoError(t, err)

	in, err := graphio.ReadTOML(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 7, in.Graph.EdgeCount())
	assert.Empty(t, in.Matched)
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := run(t, "", "generate", "hypercube")
	assert.True(t, errors.Is(err, builder.ErrOptionViolation), "got %v", err)

	_, _, err = run(t, "", "generate", "cycle", "--n", "2")
	assert.True(t, errors.Is(err, builder.ErrTooFewVertices), "got %v", err)

	_, _, err = run(t, "", "generate", "cycle", "--ids", "roman")
	assert.True(t, errors.Is(err, builder.ErrOptionViolation), "got %v", err)

	_, _, err = run(t, "", "generate", "cycle", "--format", "xml")
	assert.Error(t, err)
}

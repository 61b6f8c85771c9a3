package main

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matchkit/builder"
	"github.com/katalvlaran/matchkit/edmonds"
	"github.com/katalvlaran/matchkit/internal/config"
	"github.com/katalvlaran/matchkit/internal/graphio"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "generate KIND",
		Short:     "Print a generated graph (" + strings.Join(builder.KindNames(), ", ") + ")",
		Long:      "Print a generated graph as an edge list or TOML. With --solve, matched edges are marked so the output feeds back into `matchkit match`.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: builder.KindNames(),
		RunE:      runGenerate,
	}

	cmd.Flags().Int("n", 10, "vertices, rows, or left side size")
	cmd.Flags().Int("m", 3, "columns, right side size, or degree")
	cmd.Flags().Float64("p", 0.3, "edge probability for random")
	cmd.Flags().Int64("seed", 1, "random seed")
	cmd.Flags().String("ids", "decimal", "vertex id scheme: "+strings.Join(builder.IDSchemeNames(), ", "))
	cmd.Flags().String("solid", "cube", "Platonic solid for platonic")
	cmd.Flags().Bool("center", false, "add a hub to the Platonic solid")
	cmd.Flags().String("format", config.FormatEdges, "output format: edges or toml")
	cmd.Flags().Bool("solve", false, "mark the edges of a maximum matching")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	n, _ := flags.GetInt("n")
	m, _ := flags.GetInt("m")
	p, _ := flags.GetFloat64("p")
	seed, _ := flags.GetInt64("seed")
	ids, _ := flags.GetString("ids")
	solid, _ := flags.GetString("solid")
	center, _ := flags.GetBool("center")
	format, _ := flags.GetString("format")
	solve, _ := flags.GetBool("solve")

	ctor, err := builder.ByKind(args[0], builder.Params{N: n, M: m, P: p, Solid: solid, Center: center})
	if err != nil {
		return err
	}
	idFn, err := builder.IDSchemeByName(ids)
	if err != nil {
		return err
	}

	g, vertices, err := builder.BuildGraph([]builder.BuilderOption{builder.WithIDScheme(idFn), builder.WithSeed(seed)}, ctor)
	if err != nil {
		return err
	}

	var matched *edmonds.Matching[string]
	if solve {
		if matched, err = edmonds.Solve(g, edmonds.WithContext(cmd.Context())); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case config.FormatEdges:
		if matched != nil {
			fmt.Fprintf(out, "# %s: %d vertices, %d edges, maximum matching %d\n",
				args[0], len(vertices), g.EdgeCount(), matched.Size())
		}
		return graphio.WriteEdgeList(out, g, vertices, matched)
	case config.FormatTOML:
		return graphio.WriteTOML(out, g, vertices, matched)
	default:
		return errors.Newf("unknown format %q", format)
	}
}

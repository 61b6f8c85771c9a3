package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matchkit/edmonds"
	"github.com/katalvlaran/matchkit/internal/config"
	"github.com/katalvlaran/matchkit/internal/graphio"
	"github.com/katalvlaran/matchkit/internal/logger"
)

const logModule = "matchkit"

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match [FILE]",
		Short: "Compute a maximum matching of a graph file (stdin when FILE is omitted or -)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runMatch,
	}

	cmd.Flags().String("input-format", "", "input format: edges or toml (default edges)")
	cmd.Flags().String("output", "", "output format: text or json (default text)")
	cmd.Flags().Bool("check", false, "run the consistency checker after every step")
	cmd.Flags().Int("max-augmentations", 0, "stop after this many augmentations (0 = no limit)")

	return cmd
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	log := logger.NewLoggerTo(cmd.ErrOrStderr(), cfg.LogLevel, logModule)

	r := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer f.Close()
		r = f
	}

	in, err := readInput(r, cfg.InputFormat)
	if err != nil {
		return err
	}
	initial, err := in.Matching()
	if err != nil {
		return errors.Wrap(err, "initial matching")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	opts := []edmonds.Option{edmonds.WithContext(ctx), edmonds.WithLogger(log)}
	if cfg.CheckInvariants {
		opts = append(opts, edmonds.WithInvariantChecks())
	}
	if cfg.MaxAugmentations > 0 {
		opts = append(opts, edmonds.WithMaxAugmentations(cfg.MaxAugmentations))
	}

	start := time.Now()
	m, err := edmonds.MaximumMatching(in.Graph, initial, opts...)
	if err != nil {
		return err
	}
	h, mins, sec := logger.ParseTime(time.Since(start))
	log.Infof("matched %d of %d vertices (%d edges) in %dh %dm %ds",
		2*m.Size(), len(in.Vertices), m.Size(), h, mins, sec)

	return writeMatching(cmd.OutOrStdout(), m, cfg.Output)
}

func readInput(r io.Reader, format string) (*graphio.Input, error) {
	switch format {
	case config.FormatTOML:
		return graphio.ReadTOML(r)
	default:
		return graphio.ReadEdgeList(r)
	}
}

func writeMatching(w io.Writer, m *edmonds.Matching[string], output string) error {
	if output == config.OutputJSON {
		return graphio.WriteMatchingJSON(w, m)
	}

	return graphio.WriteMatchingText(w, m)
}

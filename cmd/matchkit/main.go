// Command matchkit computes maximum-cardinality matchings of undirected
// graphs and generates graph fixtures.
//
//	matchkit match graph.txt
//	matchkit generate petersen --solve | matchkit match --output json
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

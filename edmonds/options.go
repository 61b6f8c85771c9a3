// SPDX-License-Identifier: MIT

package edmonds

import "context"

// Logger receives debug traces from the search. *logging.Logger from
// github.com/op/go-logging satisfies it, as does any printf-style logger.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}

// Option configures optional behavior of the search entry points.
// Use with MaximumMatching(g, m, opts...) or Solve(g, opts...).
type Option func(*Options)

// Options holds the resolved configuration of one top-level call.
type Options struct {
	// Ctx allows cancellation between augmentations; defaults to context.Background().
	Ctx context.Context

	// Logger receives Debugf traces; defaults to a no-op logger.
	Logger Logger

	// CheckInvariants runs the consistency checker after every structural
	// mutation (graph marking, contraction, forest growth, augmentation).
	// It is meant for tests and debugging; the checks cost O(V+E) each.
	CheckInvariants bool

	// MaxAugmentations caps the number of augmentations MaximumMatching
	// performs; 0 means unbounded. A capped result is valid but may not be
	// maximum (see IsMaximum).
	MaxAugmentations int
}

// DefaultOptions returns Options with:
//   - Background context
//   - no-op logger
//   - consistency checks disabled
//   - no augmentation cap
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Logger:           nopLogger{},
		CheckInvariants:  false,
		MaxAugmentations: 0,
	}
}

// WithContext sets the context checked between augmentations.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger installs l as the trace sink. Panics on nil.
func WithLogger(l Logger) Option {
	if l == nil {
		panic("edmonds: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithInvariantChecks enables the debug-only consistency checker.
func WithInvariantChecks() Option {
	return func(o *Options) {
		o.CheckInvariants = true
	}
}

// WithMaxAugmentations stops MaximumMatching after n augmentations.
// Panics if n < 0.
func WithMaxAugmentations(n int) Option {
	if n < 0 {
		panic("edmonds: WithMaxAugmentations(n < 0)")
	}
	return func(o *Options) {
		o.MaxAugmentations = n
	}
}

// gatherOptions applies opts over DefaultOptions in order.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

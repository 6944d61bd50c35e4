// SPDX-License-Identifier: MIT

package analytics

import (
	"io"
	"log/slog"
)

// Option configures a State. Option constructors panic on nonsensical
// values; New itself never panics.
type Option func(*config)

type config struct {
	logger         *slog.Logger
	shortcut       bool
	trackLaplacian bool
}

func defaultConfig() config {
	return config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithLogger sends debug records about mutations, reverts, recomputations
// and cache resyncs to l. The default logger discards everything.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("analytics: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithConnectivityShortcut lets IsConnected skip the full component scan
// after edge removals from a graph known to be connected: it only checks
// that the endpoints of every edge removed since then still reach each
// other. The answer is exact either way; without the option every dirty
// read scans the whole graph.
func WithConnectivityShortcut() Option {
	return func(c *config) {
		c.shortcut = true
	}
}

// WithLaplacianTracking requests incremental Laplacian maintenance. It is
// not supported and makes New fail with ErrNotImplemented.
func WithLaplacianTracking() Option {
	return func(c *config) {
		c.trackLaplacian = true
	}
}

package generator

import (
	"log/slog"
	"time"

	"github.com/rybkr/tilepuzzle/internal/jigsaw"
	"github.com/rybkr/tilepuzzle/internal/rng"
)

// Options configures generation behavior.
type Options struct {
	Timeout       time.Duration // Soft deadline; past it the partition stops retrying (0 = none)
	MaxRetries    int           // Unbalanced partitions discarded before accepting one anyway
	MaxRootDraws  int           // Root draws before adjacent roots are accepted freely (0 = 100 per tile)
	MaxFigureSize int           // Largest accepted figure size (0 = unlimited)
	// Source is used for requests without a seed. It is shared between
	// concurrent calls and wrapped accordingly. nil means a fresh time-seeded
	// source per call.
	Source rng.Source
	Logger *slog.Logger // nil means slog.Default()
}

// DefaultOptions returns standard generator options.
func DefaultOptions() *Options {
	return &Options{
		Timeout:    10 * time.Second,
		MaxRetries: jigsaw.DefaultMaxRetries,
	}
}

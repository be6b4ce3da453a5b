package solver

import (
	"time"

	"github.com/rybkr/tilepuzzle/internal/rng"
)

// Options configures the search.
type Options struct {
	Timeout      time.Duration // Search time limit (0 = none)
	MaxSolutions int           // Stop counting after this many solutions (0 = 1)
	Randomize    bool          // Try candidate placements in random order
	Source       rng.Source    // Randomness for Randomize (nil = time-seeded)
}

// DefaultOptions returns options that find enough solutions to decide
// uniqueness.
func DefaultOptions() *Options {
	return &Options{
		Timeout:      5 * time.Second,
		MaxSolutions: 2,
	}
}

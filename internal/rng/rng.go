// Package rng is the seam through which every random choice in puzzle
// generation is made. Generation code never reaches for a global source.
package rng

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Source is the subset of *rand.Rand the generator relies on.
type Source interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// New returns a deterministic source for seed. It is not safe for
// concurrent use; create one per generation.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// TimeSeed returns a seed derived from the wall clock.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}

// Locked serialises access to a shared source.
type Locked struct {
	mu  sync.Mutex
	src Source
}

// NewLocked wraps src so it can be shared between goroutines.
func NewLocked(src Source) *Locked {
	if l, ok := src.(*Locked); ok {
		return l
	}
	return &Locked{src: src}
}

func (l *Locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Intn(n)
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

// floatResolution is the number of evenly spaced values FromRoller can
// produce from Float64.
const floatResolution = 1 << 30

// diceSource draws from a dice roller. Results cannot be replayed, so use it
// only where reproducibility does not matter.
type diceSource struct {
	roller dice.Roller
}

// FromRoller adapts a dice roller into a Source.
func FromRoller(r dice.Roller) Source {
	return &diceSource{roller: r}
}

// Dice returns a Source backed by the toolkit's default roller.
func Dice() Source {
	return FromRoller(dice.DefaultRoller)
}

func (d *diceSource) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("rng: invalid argument to Intn: %d", n))
	}
	v, err := d.roller.Roll(n)
	if err != nil {
		panic(fmt.Sprintf("rng: dice roll failed: %v", err))
	}
	return v - 1
}

func (d *diceSource) Float64() float64 {
	return float64(d.Intn(floatResolution)) / floatResolution
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

// Shuffle permutes items in place with a Fisher-Yates walk.
func Shuffle[T any](src Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

package random

import (
	"math/rand"
	"time"
)

// Source provides seeded randomness for turn-order shuffles
type Source struct {
	random *rand.Rand
}

// Config for the randomness source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new randomness source
func New(cfg *Config) *Source {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Source{
		random: random,
	}
}

// Shuffle pseudo-randomizes the order of n elements using the provided swap function
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	if n < 2 {
		return
	}
	s.random.Shuffle(n, swap)
}

// Intn returns a non-negative pseudo-random number in [0, n)
func (s *Source) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return s.random.Intn(n)
}

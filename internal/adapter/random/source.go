// Package random provides the seeded source used by the spatial search.
package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source is a seeded generator safe for concurrent ticks.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New seeds the source. A zero seed draws one from the clock.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

package memory

import (
	"sync"

	"farmerbot/internal/domain/farmer"
)

// DefaultMaxDecisionsPerBot bounds the journal kept for each bot. Replay never
// asks for more than 500 decisions, so older ones are dropped.
const DefaultMaxDecisionsPerBot = 1000

type Store struct {
	mu        sync.RWMutex
	decisions map[string][]farmer.Decision
	maxPerBot int
}

func NewStore() *Store {
	return NewBoundedStore(DefaultMaxDecisionsPerBot)
}

// NewBoundedStore keeps at most maxPerBot decisions per bot, newest retained.
// A non-positive bound falls back to DefaultMaxDecisionsPerBot.
func NewBoundedStore(maxPerBot int) *Store {
	if maxPerBot <= 0 {
		maxPerBot = DefaultMaxDecisionsPerBot
	}
	return &Store{
		decisions: make(map[string][]farmer.Decision),
		maxPerBot: maxPerBot,
	}
}

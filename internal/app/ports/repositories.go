package ports

import (
	"context"
	"time"

	"farmerbot/internal/domain/farmer"
)

type DecisionQuery struct {
	BotID string
	Limit int
	From  time.Time
	To    time.Time
}

type DecisionRepository interface {
	Append(ctx context.Context, decision farmer.Decision) error
	// ListByBotID returns decisions newest first, or ErrNotFound when the bot
	// has none in range.
	ListByBotID(ctx context.Context, q DecisionQuery) ([]farmer.Decision, error)
}

package ports

import (
	"context"

	"farmerbot/internal/domain/farm"
)

type FarmQuery interface {
	GetFarm(ctx context.Context) (farm.FarmState, error)
}

type Market interface {
	Buy(ctx context.Context, item farm.Buyable, quantity int) error
	Sell(ctx context.Context, item farm.Sellable, quantity int) error
}

type Actuator interface {
	Act(ctx context.Context, action farm.Action) error
}

type Logger interface {
	Log(ctx context.Context, message string, level farm.LogLevel)
}

// Host bundles every capability a host binding offers to the tick pipeline.
type Host interface {
	FarmQuery
	Market
	Actuator
	Logger
}

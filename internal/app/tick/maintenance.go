package tick

import (
	"context"
	"fmt"

	"farmerbot/internal/domain/farm"
	"farmerbot/internal/domain/farmer"
)

type maintenanceResult struct {
	Farm      farm.FarmState
	Purchases []farmer.Purchase
	Sales     []farmer.Sale
}

// maintain restocks the bot and sells harvested produce. The first failing
// host call stops the step; nothing is retried. Completed trades are kept in
// the result even on failure.
func (u UseCase) maintain(ctx context.Context, bot farm.BotState, t farmer.Tuning) (maintenanceResult, error) {
	var out maintenanceResult

	for _, p := range t.PlanPurchases(bot) {
		if err := u.Market.Buy(ctx, p.Item, p.Quantity); err != nil {
			return out, fmt.Errorf("buy %d %s: %w", p.Quantity, p.Item, err)
		}
		out.Purchases = append(out.Purchases, p)
	}

	f, err := u.Farm.GetFarm(ctx)
	if err != nil {
		return out, fmt.Errorf("get farm: %w", err)
	}
	out.Farm = f

	for _, s := range farmer.PlanSales(f) {
		if err := u.Market.Sell(ctx, s.Item, s.Quantity); err != nil {
			return out, fmt.Errorf("sell %d %s: %w", s.Quantity, s.Item, err)
		}
		out.Sales = append(out.Sales, s)
	}
	return out, nil
}

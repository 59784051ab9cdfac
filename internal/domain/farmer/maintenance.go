package farmer

import "farmerbot/internal/domain/farm"

type Purchase struct {
	Item     farm.Buyable `json:"item"`
	Quantity int          `json:"quantity"`
}

type Sale struct {
	Item     farm.Sellable `json:"item"`
	Quantity int           `json:"quantity"`
}

// PlanPurchases lists restocking orders in the order they must be placed:
// energy, water, seeds.
func (t Tuning) PlanPurchases(bot farm.BotState) []Purchase {
	out := make([]Purchase, 0, 3)
	if bot.Energy < t.BuyEnergyBelow {
		out = append(out, Purchase{Item: farm.BuyEnergy, Quantity: t.BuyEnergyAmount})
	}
	if bot.Water < t.BuyWaterBelow {
		out = append(out, Purchase{Item: farm.BuyWater, Quantity: t.BuyWaterAmount})
	}
	if bot.Seeds < t.BuySeedsBelow {
		out = append(out, Purchase{Item: farm.BuySeeds, Quantity: t.BuySeedsAmount})
	}
	return out
}

// PlanSales sells the whole stock of each produce that has any.
func PlanSales(f farm.FarmState) []Sale {
	out := make([]Sale, 0, 2)
	if f.Grass > 0 {
		out = append(out, Sale{Item: farm.SellGrass, Quantity: f.Grass})
	}
	if f.Wheat > 0 {
		out = append(out, Sale{Item: farm.SellWheat, Quantity: f.Wheat})
	}
	return out
}

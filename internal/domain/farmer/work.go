package farmer

import "farmerbot/internal/domain/farm"

type Work string

const (
	Watering   Work = "watering"
	Harvesting Work = "harvesting"
	Seeding    Work = "seeding"
)

// NeedsWork decides what a single field needs from the bot this tick.
// A mature plant is always harvested first, watered or not.
func (t Tuning) NeedsWork(field farm.Field, bot farm.BotState) (Work, bool) {
	if p := field.Plant; p != nil {
		if p.Mature() {
			return Harvesting, true
		}
		if !field.Watered &&
			bot.Energy > t.WaterMinEnergy &&
			bot.Water > 0 &&
			p.GrowthStage > p.GrowthStageMax/2 &&
			!p.Type.GroundCover() {
			return Watering, true
		}
		return "", false
	}

	if bot.Energy > t.SeedMinEnergy && bot.Seeds > 0 {
		return Seeding, true
	}
	return "", false
}

// NeedsWork classifies with the default tuning.
func NeedsWork(field farm.Field, bot farm.BotState) (Work, bool) {
	return DefaultTuning().NeedsWork(field, bot)
}

package farmer

import "farmerbot/internal/domain/farm"

// NextAction turns the chosen target into the single action for this tick.
// ok is false when the bot should stay put and nothing is sent to the host.
func (t Tuning) NextAction(bot farm.BotState, target Candidate, hasTarget bool) (farm.Action, bool) {
	if !bot.Idle() || !hasTarget {
		return farm.Action{}, false
	}

	dx := target.X - bot.Position.X
	dy := target.Y - bot.Position.Y

	if dx == 0 && dy == 0 {
		switch target.Work {
		case Watering:
			return farm.Water(), true
		case Harvesting:
			return farm.Harvest(), true
		case Seeding:
			return farm.Seed(t.SeedPlant), true
		default:
			return farm.Action{}, false
		}
	}

	if bot.Energy <= t.MoveMinEnergy {
		return farm.Action{}, false
	}

	if abs(dx) > abs(dy) {
		if dx > 0 {
			return farm.Move(farm.ActionMoveRight), true
		}
		return farm.Move(farm.ActionMoveLeft), true
	}
	if dy > 0 {
		return farm.Move(farm.ActionMoveDown), true
	}
	return farm.Move(farm.ActionMoveUp), true
}

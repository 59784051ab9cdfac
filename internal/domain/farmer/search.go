package farmer

import "farmerbot/internal/domain/farm"

// RandomSource yields uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

type Candidate struct {
	X    int  `json:"x"`
	Y    int  `json:"y"`
	Work Work `json:"work"`
}

// ServiceableFields scans square rings of growing radius around the bot and
// returns every workable field in discovery order. Fields held by another bot
// are dropped, and ground-cover harvests are thinned with a chance that grows
// with distance.
func (t Tuning) ServiceableFields(bot farm.BotState, f farm.FarmState, rng RandomSource) []Candidate {
	out := make([]Candidate, 0)
	bx, by := bot.Position.X, bot.Position.Y

	for d := 0; d <= t.SearchRadius; d++ {
		for dx := -d; dx <= d; dx++ {
			for dy := -d; dy <= d; dy++ {
				if dx != d && dx != -d && dy != d && dy != -d {
					continue
				}
				x, y := bx+dx, by+dy
				field, ok := f.FieldAt(x, y)
				if !ok {
					continue
				}
				work, ok := t.NeedsWork(field, bot)
				if !ok {
					continue
				}

				r := rng.Float64()
				skipChance := 0.0
				if work == Harvesting && field.Plant != nil && field.Plant.Type.GroundCover() {
					skipChance = float64(manhattan(dx, dy)) * t.GroundCoverSkipPerStep
				}
				if r < skipChance {
					continue
				}
				// Occupancy is checked against the same draw. With skipChance
				// at zero this drops every occupied field except when r == 0.
				if field.OccupiedByOtherBot(bot.ID) && r > skipChance {
					continue
				}

				out = append(out, Candidate{X: x, Y: y, Work: work})
			}
		}
	}
	return out
}

func manhattan(dx, dy int) int {
	return abs(dx) + abs(dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

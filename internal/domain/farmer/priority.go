package farmer

import (
	"cmp"
	"slices"

	"farmerbot/internal/domain/farm"
)

// Priority is the sort key for a candidate: Manhattan distance from the bot
// shifted by the work modifier. Lower is better.
func (t Tuning) Priority(bot farm.BotState, c Candidate) int {
	return manhattan(c.X-bot.Position.X, c.Y-bot.Position.Y) + t.modifier(c.Work)
}

// Prioritize orders candidates by Priority. Equal keys keep discovery order.
func (t Tuning) Prioritize(bot farm.BotState, candidates []Candidate) []Candidate {
	out := slices.Clone(candidates)
	slices.SortStableFunc(out, func(a, b Candidate) int {
		return cmp.Compare(t.Priority(bot, a), t.Priority(bot, b))
	})
	return out
}

func (t Tuning) SelectTarget(bot farm.BotState, candidates []Candidate) (Candidate, bool) {
	ordered := t.Prioritize(bot, candidates)
	if len(ordered) == 0 {
		return Candidate{}, false
	}
	return ordered[0], true
}

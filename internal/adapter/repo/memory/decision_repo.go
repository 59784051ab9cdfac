package memory

import (
	"context"
	"slices"

	"farmerbot/internal/app/ports"
	"farmerbot/internal/domain/farmer"
)

type DecisionRepo struct {
	store *Store
}

func NewDecisionRepo(store *Store) DecisionRepo {
	return DecisionRepo{store: store}
}

func (r DecisionRepo) Append(_ context.Context, d farmer.Decision) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ds := append(r.store.decisions[d.BotID], d)
	if over := len(ds) - r.store.maxPerBot; over > 0 {
		ds = slices.Delete(ds, 0, over)
	}
	r.store.decisions[d.BotID] = ds
	return nil
}

func (r DecisionRepo) ListByBotID(_ context.Context, q ports.DecisionQuery) ([]farmer.Decision, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := r.store.decisions[q.BotID]
	out := make([]farmer.Decision, 0, len(all))
	for _, d := range slices.Backward(all) {
		if !q.From.IsZero() && d.OccurredAt.Before(q.From) {
			continue
		}
		if !q.To.IsZero() && d.OccurredAt.After(q.To) {
			continue
		}
		out = append(out, d)
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	if len(out) == 0 {
		return nil, ports.ErrNotFound
	}
	return out, nil
}

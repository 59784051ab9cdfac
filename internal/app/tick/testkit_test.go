package tick

import (
	"context"
	"fmt"

	"farmerbot/internal/app/ports"
	"farmerbot/internal/domain/farm"
	"farmerbot/internal/domain/farmer"
)

type stubHost struct {
	farm     farm.FarmState
	farmErr  error
	failOn   map[string]error
	calls    []string
	actions  []farm.Action
	logs     []string
	logLevel []farm.LogLevel
	actErr   error
}

func (h *stubHost) GetFarm(_ context.Context) (farm.FarmState, error) {
	h.calls = append(h.calls, "get_farm")
	if h.farmErr != nil {
		return farm.FarmState{}, h.farmErr
	}
	return h.farm, nil
}

func (h *stubHost) Buy(_ context.Context, item farm.Buyable, quantity int) error {
	key := fmt.Sprintf("buy %s %d", item, quantity)
	h.calls = append(h.calls, key)
	if err, ok := h.failOn["buy "+string(item)]; ok {
		return err
	}
	return nil
}

func (h *stubHost) Sell(_ context.Context, item farm.Sellable, quantity int) error {
	key := fmt.Sprintf("sell %s %d", item, quantity)
	h.calls = append(h.calls, key)
	if err, ok := h.failOn["sell "+string(item)]; ok {
		return err
	}
	return nil
}

func (h *stubHost) Act(_ context.Context, action farm.Action) error {
	h.calls = append(h.calls, "act "+string(action.Kind))
	h.actions = append(h.actions, action)
	return h.actErr
}

func (h *stubHost) Log(_ context.Context, message string, level farm.LogLevel) {
	h.logs = append(h.logs, message)
	h.logLevel = append(h.logLevel, level)
}

type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

type stubDecisionRepo struct {
	decisions []farmer.Decision
	err       error
}

func (r *stubDecisionRepo) Append(_ context.Context, d farmer.Decision) error {
	if r.err != nil {
		return r.err
	}
	r.decisions = append(r.decisions, d)
	return nil
}

func (r *stubDecisionRepo) ListByBotID(_ context.Context, _ ports.DecisionQuery) ([]farmer.Decision, error) {
	if len(r.decisions) == 0 {
		return nil, ports.ErrNotFound
	}
	return r.decisions, nil
}

type stubMetrics struct {
	ticks       map[farm.ActionKind]int
	maintenance int
	actuator    int
	journal     int
}

func (m *stubMetrics) RecordTick(action farm.ActionKind) {
	if m.ticks == nil {
		m.ticks = map[farm.ActionKind]int{}
	}
	m.ticks[action]++
}

func (m *stubMetrics) RecordMaintenanceFailure() { m.maintenance++ }
func (m *stubMetrics) RecordActuatorFailure() { m.actuator++ }
func (m *stubMetrics) RecordJournalFailure() { m.journal++ }

func newUseCase(host *stubHost) UseCase {
	return UseCase{
		Farm:      host,
		Market:    host,
		Actuator:  host,
		Log:       host,
		Rand:      constRand(0.5),
		NewTickID: func() string { return "tick-1" },
	}
}

func grassFarm(w, h int) farm.FarmState {
	fields := make([][]farm.Field, h)
	for y := range fields {
		fields[y] = make([]farm.Field, w)
		for x := range fields[y] {
			fields[y][x] = farm.Field{Plant: &farm.Plant{Type: farm.PlantGrass, GrowthStage: 1, GrowthStageMax: 10}}
		}
	}
	return farm.FarmState{Width: w, Height: h, Fields: fields}
}

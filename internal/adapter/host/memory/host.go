// Package memhost is an in-process host used by tests and the offline tick
// command. It serves a fixed farm snapshot and records every call made to it.
package memhost

import (
	"context"
	"fmt"
	"sync"

	"farmerbot/internal/app/ports"
	"farmerbot/internal/domain/farm"
)

type Trade struct {
	Side     string
	Item     string
	Quantity int
}

type LogEntry struct {
	Level   farm.LogLevel
	Message string
}

type Host struct {
	mu sync.Mutex

	farm    farm.FarmState
	farmErr error
	buyErr  map[farm.Buyable]error
	sellErr map[farm.Sellable]error
	actErr  error
	calls   []string
	trades  []Trade
	actions []farm.Action
	logs    []LogEntry
}

func New(f farm.FarmState) *Host {
	return &Host{
		farm:    f,
		buyErr:  map[farm.Buyable]error{},
		sellErr: map[farm.Sellable]error{},
	}
}

func (h *Host) FailFarm(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.farmErr = err
}

func (h *Host) FailBuy(item farm.Buyable, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buyErr[item] = err
}

func (h *Host) FailSell(item farm.Sellable, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sellErr[item] = err
}

func (h *Host) FailAct(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.actErr = err
}

func (h *Host) GetFarm(_ context.Context) (farm.FarmState, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, "get_farm")
	if h.farmErr != nil {
		return farm.FarmState{}, h.farmErr
	}
	return cloneFarm(h.farm), nil
}

func (h *Host) Buy(_ context.Context, item farm.Buyable, quantity int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, fmt.Sprintf("buy %s %d", item, quantity))
	if err := h.buyErr[item]; err != nil {
		return err
	}
	h.trades = append(h.trades, Trade{Side: "buy", Item: string(item), Quantity: quantity})
	return nil
}

// Sell removes the sold produce from the stored farm so a later GetFarm sees
// the reduced stock.
func (h *Host) Sell(_ context.Context, item farm.Sellable, quantity int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, fmt.Sprintf("sell %s %d", item, quantity))
	if err := h.sellErr[item]; err != nil {
		return err
	}
	switch item {
	case farm.SellGrass:
		if quantity > h.farm.Grass {
			return fmt.Errorf("%w: only %d grass in stock", ports.ErrMarketRejected, h.farm.Grass)
		}
		h.farm.Grass -= quantity
	case farm.SellWheat:
		if quantity > h.farm.Wheat {
			return fmt.Errorf("%w: only %d wheat in stock", ports.ErrMarketRejected, h.farm.Wheat)
		}
		h.farm.Wheat -= quantity
	default:
		return fmt.Errorf("%w: unknown item %q", ports.ErrMarketRejected, item)
	}
	h.trades = append(h.trades, Trade{Side: "sell", Item: string(item), Quantity: quantity})
	return nil
}

func (h *Host) Act(_ context.Context, action farm.Action) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, "act "+string(action.Kind))
	if h.actErr != nil {
		return h.actErr
	}
	h.actions = append(h.actions, action)
	return nil
}

func (h *Host) Log(_ context.Context, message string, level farm.LogLevel) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.logs = append(h.logs, LogEntry{Level: level, Message: message})
}

// Calls lists host calls in the order they were made, e.g. "buy energy 25".
func (h *Host) Calls() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.calls...)
}

func (h *Host) Trades() []Trade {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Trade(nil), h.trades...)
}

func (h *Host) Actions() []farm.Action {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]farm.Action(nil), h.actions...)
}

func (h *Host) Logs() []LogEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]LogEntry(nil), h.logs...)
}

func cloneFarm(f farm.FarmState) farm.FarmState {
	out := f
	out.Fields = make([][]farm.Field, len(f.Fields))
	for y, row := range f.Fields {
		out.Fields[y] = make([]farm.Field, len(row))
		for x, field := range row {
			if field.Plant != nil {
				p := *field.Plant
				field.Plant = &p
			}
			field.Entities = append([]farm.Entity(nil), field.Entities...)
			out.Fields[y][x] = field
		}
	}
	return out
}

var _ ports.Host = (*Host)(nil)

package hostws

import (
	"context"
	"encoding/json"
	"fmt"

	"farmerbot/internal/app/ports"
	"farmerbot/internal/domain/farm"
)

const (
	actionGetFarm = "get_farm"
	actionBuy     = "buy"
	actionSell    = "sell"
	actionAct     = "act"
	actionLog     = "log"
)

// BotHost issues host commands on behalf of one bot.
type BotHost struct {
	s     *Session
	botID string
}

func (s *Session) ForBot(botID string) BotHost {
	return BotHost{s: s, botID: botID}
}

func (h BotHost) GetFarm(ctx context.Context) (farm.FarmState, error) {
	resp, err := h.call(ctx, actionGetFarm, nil)
	if err != nil {
		return farm.FarmState{}, err
	}
	if !resp.Success {
		return farm.FarmState{}, fmt.Errorf("%w: get farm: %s", ports.ErrHostUnavailable, resp.Message)
	}
	var f farm.FarmState
	if err := json.Unmarshal(resp.Data, &f); err != nil {
		return farm.FarmState{}, fmt.Errorf("%w: decode farm: %v", ports.ErrHostUnavailable, err)
	}
	if err := f.Validate(); err != nil {
		return farm.FarmState{}, err
	}
	return f, nil
}

func (h BotHost) Buy(ctx context.Context, item farm.Buyable, quantity int) error {
	return h.trade(ctx, actionBuy, string(item), quantity)
}

func (h BotHost) Sell(ctx context.Context, item farm.Sellable, quantity int) error {
	return h.trade(ctx, actionSell, string(item), quantity)
}

func (h BotHost) trade(ctx context.Context, side, item string, quantity int) error {
	resp, err := h.call(ctx, side, map[string]any{"item": item, "quantity": quantity})
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("%s %s: %w: %s", side, item, ports.ErrMarketRejected, resp.Message)
	}
	return nil
}

func (h BotHost) Act(ctx context.Context, action farm.Action) error {
	params := map[string]any{"kind": string(action.Kind)}
	if action.Plant != "" {
		params["plant_type"] = string(action.Plant)
	}
	resp, err := h.call(ctx, actionAct, params)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("act %s: %w: %s", action.Kind, ports.ErrHostUnavailable, resp.Message)
	}
	return nil
}

// Log forwards the line to the host. Undeliverable lines go to the session's
// local logger.
func (h BotHost) Log(ctx context.Context, message string, level farm.LogLevel) {
	resp, err := h.call(ctx, actionLog, map[string]any{"message": message, "level": string(level)})
	if err == nil && !resp.Success {
		err = fmt.Errorf("host refused log: %s", resp.Message)
	}
	if err != nil {
		h.s.logger.Warn("host log delivery failed", "bot_id", h.botID, "level", string(level), "message", message, "error", err)
	}
}

func (h BotHost) call(ctx context.Context, action string, params map[string]any) (inbound, error) {
	if params == nil {
		params = map[string]any{}
	}
	params["bot_id"] = h.botID
	resp, err := h.s.command(ctx, action, params)
	if err != nil {
		return inbound{}, fmt.Errorf("%w: %s: %w", ports.ErrHostUnavailable, action, err)
	}
	return resp, nil
}

var _ ports.Host = BotHost{}

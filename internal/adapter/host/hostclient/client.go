// Package hostclient reaches the farm host over its HTTP API with the hertz
// client. One Client is bound to one bot.
package hostclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"farmerbot/internal/app/ports"
	"farmerbot/internal/domain/farm"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const defaultTimeout = 10 * time.Second

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	base    string
	botID   string
	timeout time.Duration
	hc      *client.Client

	// Fallback receives log lines the host could not accept.
	Fallback ports.Logger
}

func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("host base url is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("host base url: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	hc, err := client.NewClient(client.WithDialTimeout(timeout), client.WithClientReadTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("hertz client: %w", err)
	}
	return &Client{base: base, timeout: timeout, hc: hc}, nil
}

// ForBot returns a client whose bot-scoped calls act on botID. The underlying
// connection pool is shared.
func (c *Client) ForBot(botID string) *Client {
	cp := *c
	cp.botID = botID
	return &cp
}

type tradeRequest struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

type logRequest struct {
	Message string        `json:"message"`
	Level   farm.LogLevel `json:"level"`
}

func (c *Client) GetFarm(ctx context.Context) (farm.FarmState, error) {
	status, body, err := c.do(ctx, consts.MethodGet, "/api/farm", nil)
	if err != nil {
		return farm.FarmState{}, err
	}
	if err := statusError(status, body, false); err != nil {
		return farm.FarmState{}, fmt.Errorf("get farm: %w", err)
	}
	var f farm.FarmState
	if err := json.Unmarshal(body, &f); err != nil {
		return farm.FarmState{}, fmt.Errorf("%w: decode farm: %v", ports.ErrHostUnavailable, err)
	}
	if err := f.Validate(); err != nil {
		return farm.FarmState{}, err
	}
	return f, nil
}

func (c *Client) Buy(ctx context.Context, item farm.Buyable, quantity int) error {
	return c.trade(ctx, "buy", tradeRequest{Item: string(item), Quantity: quantity})
}

func (c *Client) Sell(ctx context.Context, item farm.Sellable, quantity int) error {
	return c.trade(ctx, "sell", tradeRequest{Item: string(item), Quantity: quantity})
}

func (c *Client) trade(ctx context.Context, side string, req tradeRequest) error {
	status, body, err := c.do(ctx, consts.MethodPost, c.botPath(side), req)
	if err != nil {
		return err
	}
	if err := statusError(status, body, true); err != nil {
		return fmt.Errorf("%s %s: %w", side, req.Item, err)
	}
	return nil
}

func (c *Client) Act(ctx context.Context, action farm.Action) error {
	status, body, err := c.do(ctx, consts.MethodPost, c.botPath("action"), action)
	if err != nil {
		return err
	}
	if err := statusError(status, body, false); err != nil {
		return fmt.Errorf("act %s: %w", action.Kind, err)
	}
	return nil
}

// Log forwards the line to the host. Delivery failures go to Fallback when set.
func (c *Client) Log(ctx context.Context, message string, level farm.LogLevel) {
	status, body, err := c.do(ctx, consts.MethodPost, c.botPath("log"), logRequest{Message: message, Level: level})
	if err == nil {
		err = statusError(status, body, false)
	}
	if err != nil && c.Fallback != nil {
		c.Fallback.Log(ctx, message, level)
		c.Fallback.Log(ctx, fmt.Sprintf("host log delivery: %v", err), farm.LogWarn)
	}
}

func (c *Client) botPath(op string) string {
	return "/api/bots/" + url.PathEscape(c.botID) + "/" + op
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (int, []byte, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer protocol.ReleaseRequest(req)
	defer protocol.ReleaseResponse(resp)

	req.SetRequestURI(c.base + path)
	req.SetMethod(method)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encode %s: %w", path, err)
		}
		req.Header.SetContentTypeBytes([]byte("application/json"))
		req.SetBody(b)
	}

	if err := c.hc.DoTimeout(ctx, req, resp, c.timeout); err != nil {
		return 0, nil, fmt.Errorf("%w: %s %s: %v", ports.ErrHostUnavailable, method, path, err)
	}
	body := append([]byte(nil), resp.Body()...)
	return resp.StatusCode(), body, nil
}

type hostError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// statusError maps a non-2xx host reply. Market endpoints report refusals with
// 409 or 422; every other failure means the host could not serve the call.
func statusError(status int, body []byte, market bool) error {
	if status >= 200 && status < 300 {
		return nil
	}
	msg := strings.TrimSpace(string(body))
	var he hostError
	if json.Unmarshal(body, &he) == nil && he.Error.Message != "" {
		msg = he.Error.Message
	}
	if market && (status == consts.StatusConflict || status == consts.StatusUnprocessableEntity) {
		return fmt.Errorf("%w: %s", ports.ErrMarketRejected, msg)
	}
	if status == consts.StatusNotFound {
		return fmt.Errorf("%w: %s", ports.ErrNotFound, msg)
	}
	return fmt.Errorf("%w: status %d: %s", ports.ErrHostUnavailable, status, msg)
}

var _ ports.Host = (*Client)(nil)

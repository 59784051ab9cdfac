// Package hostws binds the bot to a host that streams ticks over a websocket.
// The host pushes bot states; the bot answers with commands on the same
// connection and waits for the correlated replies.
package hostws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"farmerbot/internal/domain/farm"

	"github.com/gorilla/websocket"
)

const (
	typeTick     = "tick"
	typeCommand  = "command"
	typeResponse = "response"
	typePing     = "ping"
	typePong     = "pong"
	typeError    = "error"

	defaultCommandTimeout = 15 * time.Second
	defaultPingInterval   = 15 * time.Second
	tickQueueSize         = 16
)

var (
	// ErrClosed is returned by commands issued after the session ended.
	ErrClosed = errors.New("websocket session closed")
	// ErrConnectionLost ends Run when the host drops the connection.
	ErrConnectionLost = errors.New("host connection lost")
)

type outbound struct {
	ID     string         `json:"id,omitempty"`
	Type   string         `json:"type"`
	Action string         `json:"action,omitempty"`
	Params map[string]any `json:"params,omitempty"`
}

type inbound struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// TickHandler runs one tick for a pushed bot state. Ticks are handled one at a
// time in arrival order.
type TickHandler func(ctx context.Context, bot farm.BotState)

type Options struct {
	CommandTimeout time.Duration
	PingInterval   time.Duration
	Logger         *slog.Logger
}

type Session struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	responses   map[string]chan inbound
	responsesMu sync.Mutex
	seq         atomic.Uint64

	ticks  chan farm.BotState
	done   chan struct{}
	closed sync.Once

	timeout time.Duration
	ping    time.Duration
	logger  *slog.Logger
}

func Dial(ctx context.Context, url string, opts Options) (*Session, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("connect to host: %w", err)
	}
	return newSession(conn, opts), nil
}

func newSession(conn *websocket.Conn, opts Options) *Session {
	s := &Session{
		conn:      conn,
		responses: make(map[string]chan inbound),
		ticks:     make(chan farm.BotState, tickQueueSize),
		done:      make(chan struct{}),
		timeout:   opts.CommandTimeout,
		ping:      opts.PingInterval,
		logger:    opts.Logger,
	}
	if s.timeout <= 0 {
		s.timeout = defaultCommandTimeout
	}
	if s.ping <= 0 {
		s.ping = defaultPingInterval
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Run reads from the connection and feeds pushed ticks to handle until ctx is
// cancelled or the connection fails. A cancelled ctx returns nil.
func (s *Session) Run(ctx context.Context, handle TickHandler) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	readErr := make(chan error, 1)
	go func() {
		readErr <- s.listen()
		cancel()
	}()
	pingErr := make(chan error, 1)
	go func() {
		if err := s.keepAlive(ctx); err != nil {
			pingErr <- err
			cancel()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.Close()
			if err := <-readErr; err != nil {
				return err
			}
			select {
			case err := <-pingErr:
				return err
			default:
				return nil
			}
		case bot := <-s.ticks:
			handle(ctx, bot)
		}
	}
}

func (s *Session) listen() error {
	for {
		_, message, err := s.conn.ReadMessage()
		if err != nil {
			select {
			case <-s.done:
				return nil
			default:
			}
			return fmt.Errorf("%w: %v", ErrConnectionLost, err)
		}

		var msg inbound
		if err := json.Unmarshal(message, &msg); err != nil {
			s.logger.Warn("discard malformed host message", "error", err)
			continue
		}

		switch msg.Type {
		case typeTick:
			s.enqueueTick(msg)
		case typeResponse:
			s.deliver(msg)
		case typePong:
		case typeError:
			s.logger.Error("host reported error", "message", msg.Message)
		default:
			s.logger.Warn("discard unknown host message", "type", msg.Type)
		}
	}
}

func (s *Session) enqueueTick(msg inbound) {
	var bot farm.BotState
	if err := json.Unmarshal(msg.Data, &bot); err != nil {
		s.logger.Warn("discard malformed tick", "error", err)
		return
	}
	select {
	case s.ticks <- bot:
	default:
		s.logger.Warn("tick queue full, dropping tick", "bot_id", bot.ID)
	}
}

func (s *Session) deliver(msg inbound) {
	if msg.ID == "" {
		return
	}
	s.responsesMu.Lock()
	ch, ok := s.responses[msg.ID]
	if ok {
		delete(s.responses, msg.ID)
	}
	s.responsesMu.Unlock()

	if ok {
		ch <- msg
	}
}

// keepAlive pings the host until ctx ends. A failed ping means the
// connection is gone and is reported as ErrConnectionLost.
func (s *Session) keepAlive(ctx context.Context) error {
	ticker := time.NewTicker(s.ping)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.write(outbound{Type: typePing}); err != nil {
				s.logger.Warn("ping failed", "error", err)
				return fmt.Errorf("%w: ping: %v", ErrConnectionLost, err)
			}
		}
	}
}

func (s *Session) write(msg outbound) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// command sends one command and waits for its reply.
func (s *Session) command(ctx context.Context, action string, params map[string]any) (inbound, error) {
	select {
	case <-s.done:
		return inbound{}, ErrClosed
	default:
	}

	id := strconv.FormatUint(s.seq.Add(1), 10)
	ch := make(chan inbound, 1)
	s.responsesMu.Lock()
	s.responses[id] = ch
	s.responsesMu.Unlock()
	forget := func() {
		s.responsesMu.Lock()
		delete(s.responses, id)
		s.responsesMu.Unlock()
	}

	if err := s.write(outbound{ID: id, Type: typeCommand, Action: action, Params: params}); err != nil {
		forget()
		return inbound{}, err
	}

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()
	select {
	case resp := <-ch:
		return resp, nil
	case <-timer.C:
		forget()
		return inbound{}, fmt.Errorf("timeout waiting for %s reply", action)
	case <-ctx.Done():
		forget()
		return inbound{}, ctx.Err()
	case <-s.done:
		forget()
		return inbound{}, ErrClosed
	}
}

func (s *Session) Close() {
	s.closed.Do(func() {
		close(s.done)
		s.writeMu.Lock()
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		s.writeMu.Unlock()
		_ = s.conn.Close()
	})
}

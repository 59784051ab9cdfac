package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"farmerbot/internal/app/ports"
	"farmerbot/internal/app/replay"
	"farmerbot/internal/app/tick"
	"farmerbot/internal/domain/farm"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	TickUC   tick.UseCase
	ReplayUC replay.UseCase
	KPI      kpiSnapshotProvider
	// BindHost, when set, supplies the host for the requesting bot and
	// replaces the host ports configured on TickUC.
	BindHost func(botID string) ports.Host
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	bot := s.Group("/api/bot")
	bot.POST("/tick", h.tick)
	bot.GET("/replay", h.replay)

	s.GET("/ops/kpi", h.kpi)
	s.GET("/healthz", h.healthz)
}

func (h Handler) tick(c context.Context, ctx *app.RequestContext) {
	if len(ctx.Request.Body()) == 0 {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "bot state body required")
		return
	}
	var body farm.BotState
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	uc := h.TickUC
	if h.BindHost != nil {
		host := h.BindHost(body.ID)
		uc.Farm, uc.Market, uc.Actuator, uc.Log = host, host, host, host
	}
	resp, err := uc.Execute(c, tick.Request{Bot: body})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp.Decision)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, err := queryInt(ctx, "limit")
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "limit must be an integer")
		return
	}
	occurredFrom, err := queryInt64(ctx, "occurred_from")
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "occurred_from must be unix seconds")
		return
	}
	occurredTo, err := queryInt64(ctx, "occurred_to")
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "occurred_to must be unix seconds")
		return
	}

	resp, err := h.ReplayUC.Execute(c, replay.Request{
		BotID:        string(ctx.Query("bot_id")),
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h Handler) healthz(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func queryInt(ctx *app.RequestContext, key string) (int, error) {
	raw := strings.TrimSpace(string(ctx.Query(key)))
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func queryInt64(ctx *app.RequestContext, key string) (int64, error) {
	raw := strings.TrimSpace(string(ctx.Query(key)))
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, tick.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrHostUnavailable):
		writeErrorBody(ctx, consts.StatusBadGateway, "host_unavailable", err.Error())
	case errors.Is(err, farm.ErrInvalidFarmState):
		writeErrorBody(ctx, consts.StatusBadGateway, "invalid_farm_state", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

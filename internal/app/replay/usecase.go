package replay

import (
	"context"
	"errors"
	"strings"
	"time"

	"farmerbot/internal/app/ports"
	"farmerbot/internal/domain/farmer"
)

var ErrInvalidRequest = errors.New("invalid replay request")

const (
	defaultLimit = 50
	maxLimit     = 500
)

type UseCase struct {
	Decisions ports.DecisionRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.BotID = strings.TrimSpace(req.BotID)
	if req.BotID == "" || req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	if req.OccurredFrom > 0 && req.OccurredTo > 0 && req.OccurredFrom > req.OccurredTo {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	q := ports.DecisionQuery{BotID: req.BotID, Limit: limit}
	if req.OccurredFrom > 0 {
		q.From = time.Unix(req.OccurredFrom, 0)
	}
	if req.OccurredTo > 0 {
		q.To = time.Unix(req.OccurredTo, 0)
	}

	decisions, err := u.Decisions.ListByBotID(ctx, q)
	if err != nil {
		return Response{}, err
	}
	return Response{Decisions: decisions, Summary: summarize(decisions)}, nil
}

func summarize(decisions []farmer.Decision) Summary {
	s := Summary{Ticks: len(decisions), ByAction: map[string]int{}}
	for _, d := range decisions {
		s.ByAction[string(d.ActionKind())]++
		if d.MaintenanceError != "" {
			s.MaintenanceFailures++
		}
	}
	return s
}

package tick

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"farmerbot/internal/app/ports"
	"farmerbot/internal/domain/farm"
	"farmerbot/internal/domain/farmer"

	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid tick request")

type UseCase struct {
	Farm      ports.FarmQuery
	Market    ports.Market
	Actuator  ports.Actuator
	Log       ports.Logger
	Rand      ports.RandomSource
	Decisions ports.DecisionRepository
	Metrics   ports.TickMetrics
	Tuning    farmer.Tuning
	Now       func() time.Time
	NewTickID func() string
}

// Execute runs one tick for the bot: maintenance, then target search when the
// bot is idle, then at most one action sent to the host.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	bot := req.Bot
	if err := bot.Validate(); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	tuning := u.Tuning
	if tuning == (farmer.Tuning{}) {
		tuning = farmer.DefaultTuning()
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	newID := u.NewTickID
	if newID == nil {
		newID = uuid.NewString
	}
	var rng ports.RandomSource = globalRand{}
	if u.Rand != nil {
		rng = u.Rand
	}

	decision := farmer.Decision{
		TickID:   newID(),
		BotID:    bot.ID,
		Position: bot.Position,
		Energy:   bot.Energy,
		Water:    bot.Water,
		Seeds:    bot.Seeds,
		Idle:     bot.Idle(),
	}

	maint, err := u.maintain(ctx, bot, tuning)
	decision.Purchases = maint.Purchases
	decision.Sales = maint.Sales
	snapshot := maint.Farm
	if err != nil {
		decision.MaintenanceError = err.Error()
		u.log(ctx, fmt.Sprintf("Error: %v", err), farm.LogError)
		if u.Metrics != nil {
			u.Metrics.RecordMaintenanceFailure()
		}
		snapshot, err = u.Farm.GetFarm(ctx)
		if err != nil {
			return Response{}, fmt.Errorf("fetch farm after failed maintenance: %w", err)
		}
	}

	if decision.Idle {
		candidates := tuning.ServiceableFields(bot, snapshot, rng)
		decision.CandidateCount = len(candidates)
		target, hasTarget := tuning.SelectTarget(bot, candidates)
		if hasTarget {
			decision.Target = &target
		}
		if action, ok := tuning.NextAction(bot, target, hasTarget); ok {
			decision.Action = &action
			if err := u.Actuator.Act(ctx, action); err != nil {
				decision.ActuatorError = err.Error()
				u.log(ctx, fmt.Sprintf("act %s: %v", action.Kind, err), farm.LogError)
				if u.Metrics != nil {
					u.Metrics.RecordActuatorFailure()
				}
			}
		}
	}

	decision.OccurredAt = nowFn()
	if u.Metrics != nil {
		u.Metrics.RecordTick(decision.ActionKind())
	}
	if u.Decisions != nil {
		if err := u.Decisions.Append(ctx, decision); err != nil {
			u.log(ctx, fmt.Sprintf("journal tick %s: %v", decision.TickID, err), farm.LogWarn)
			if u.Metrics != nil {
				u.Metrics.RecordJournalFailure()
			}
		}
	}

	return Response{Decision: decision}, nil
}

func (u UseCase) log(ctx context.Context, msg string, level farm.LogLevel) {
	if u.Log != nil {
		u.Log.Log(ctx, msg, level)
	}
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

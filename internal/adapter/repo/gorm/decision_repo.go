package gormrepo

import (
	"context"

	"farmerbot/internal/adapter/repo/gorm/model"
	"farmerbot/internal/app/ports"
	"farmerbot/internal/domain/farm"
	"farmerbot/internal/domain/farmer"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	sideBuy  = "buy"
	sideSell = "sell"
)

type DecisionRepo struct {
	db *gorm.DB
}

func NewDecisionRepo(db *gorm.DB) DecisionRepo {
	return DecisionRepo{db: db}
}

// Append writes the decision and its trades in one transaction.
func (r DecisionRepo) Append(ctx context.Context, d farmer.Decision) error {
	row := toDecisionRow(d)
	trades := toTradeRows(d)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		if len(trades) == 0 {
			return nil
		}
		return tx.Create(&trades).Error
	})
}

func (r DecisionRepo) ListByBotID(ctx context.Context, q ports.DecisionQuery) ([]farmer.Decision, error) {
	db := r.db.WithContext(ctx)
	rows := []model.BotDecision{}
	query := db.Where("bot_id = ?", q.BotID)
	if !q.From.IsZero() {
		query = query.Where("occurred_at >= ?", q.From)
	}
	if !q.To.IsZero() {
		query = query.Where("occurred_at <= ?", q.To)
	}
	query = query.Clauses(clause.OrderBy{
		Columns: []clause.OrderByColumn{
			{Column: clause.Column{Name: "occurred_at"}, Desc: true},
			{Column: clause.Column{Name: "id"}, Desc: true},
		},
	})
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	tickIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		tickIDs = append(tickIDs, row.TickID)
	}
	trades := []model.BotTrade{}
	if err := db.Where("tick_id IN ?", tickIDs).Order("seq").Find(&trades).Error; err != nil {
		return nil, err
	}
	byTick := make(map[string][]model.BotTrade, len(rows))
	for _, t := range trades {
		byTick[t.TickID] = append(byTick[t.TickID], t)
	}

	out := make([]farmer.Decision, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromDecisionRow(row, byTick[row.TickID]))
	}
	return out, nil
}

func toDecisionRow(d farmer.Decision) model.BotDecision {
	row := model.BotDecision{
		TickID:           d.TickID,
		BotID:            d.BotID,
		PosX:             int32(d.Position.X),
		PosY:             int32(d.Position.Y),
		Energy:           int32(d.Energy),
		Water:            int32(d.Water),
		Seeds:            int32(d.Seeds),
		Idle:             d.Idle,
		MaintenanceError: d.MaintenanceError,
		CandidateCount:   int32(d.CandidateCount),
		ActuatorError:    d.ActuatorError,
		OccurredAt:       d.OccurredAt,
	}
	if d.Target != nil {
		x, y, work := int32(d.Target.X), int32(d.Target.Y), string(d.Target.Work)
		row.TargetX, row.TargetY, row.TargetWork = &x, &y, &work
	}
	if d.Action != nil {
		row.ActionKind = string(d.Action.Kind)
		row.ActionPlant = string(d.Action.Plant)
	}
	return row
}

func toTradeRows(d farmer.Decision) []model.BotTrade {
	out := make([]model.BotTrade, 0, len(d.Purchases)+len(d.Sales))
	for _, p := range d.Purchases {
		out = append(out, model.BotTrade{TickID: d.TickID, Side: sideBuy, Item: string(p.Item), Quantity: int32(p.Quantity), Seq: int32(len(out))})
	}
	for _, s := range d.Sales {
		out = append(out, model.BotTrade{TickID: d.TickID, Side: sideSell, Item: string(s.Item), Quantity: int32(s.Quantity), Seq: int32(len(out))})
	}
	return out
}

func fromDecisionRow(row model.BotDecision, trades []model.BotTrade) farmer.Decision {
	d := farmer.Decision{
		TickID:           row.TickID,
		BotID:            row.BotID,
		Position:         farm.Position{X: int(row.PosX), Y: int(row.PosY)},
		Energy:           int(row.Energy),
		Water:            int(row.Water),
		Seeds:            int(row.Seeds),
		Idle:             row.Idle,
		MaintenanceError: row.MaintenanceError,
		CandidateCount:   int(row.CandidateCount),
		ActuatorError:    row.ActuatorError,
		OccurredAt:       row.OccurredAt,
	}
	if row.TargetX != nil && row.TargetY != nil && row.TargetWork != nil {
		d.Target = &farmer.Candidate{X: int(*row.TargetX), Y: int(*row.TargetY), Work: farmer.Work(*row.TargetWork)}
	}
	if row.ActionKind != "" {
		d.Action = &farm.Action{Kind: farm.ActionKind(row.ActionKind), Plant: farm.PlantType(row.ActionPlant)}
	}
	for _, t := range trades {
		switch t.Side {
		case sideBuy:
			d.Purchases = append(d.Purchases, farmer.Purchase{Item: farm.Buyable(t.Item), Quantity: int(t.Quantity)})
		case sideSell:
			d.Sales = append(d.Sales, farmer.Sale{Item: farm.Sellable(t.Item), Quantity: int(t.Quantity)})
		}
	}
	return d
}

package gormrepo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"farmerbot/internal/app/ports"
	"farmerbot/internal/domain/farm"
	"farmerbot/internal/domain/farmer"
	"farmerbot/migrations"
)

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("FARMERBOT_DB_DSN")
	if dsn == "" {
		t.Skip("FARMERBOT_DB_DSN is required for integration test")
	}
	return dsn
}

func TestDecisionRepo_AppendAndList(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	if _, err := ApplyMigrations(ctx, db, migrations.FS); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	botID := "it-decision-journal"
	_ = db.Exec("DELETE FROM bot_decisions WHERE bot_id = ?", botID).Error

	repo := NewDecisionRepo(db)
	base := time.Unix(1700000000, 0).UTC()
	harvest := farm.Harvest()
	for i, tickID := range []string{"it-tick-1", "it-tick-2", "it-tick-3"} {
		d := farmer.Decision{
			TickID:     tickID,
			BotID:      botID,
			Idle:       true,
			Purchases:  []farmer.Purchase{{Item: farm.BuyWater, Quantity: 25}},
			OccurredAt: base.Add(time.Duration(i) * time.Second),
		}
		if i == 2 {
			d.Action = &harvest
			d.Target = &farmer.Candidate{X: 1, Y: 1, Work: farmer.Harvesting}
		}
		if err := repo.Append(ctx, d); err != nil {
			t.Fatalf("append %s: %v", tickID, err)
		}
	}

	got, err := repo.ListByBotID(ctx, ports.DecisionQuery{BotID: botID, Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].TickID != "it-tick-3" || got[1].TickID != "it-tick-2" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[0].ActionKind() != farm.ActionHarvest || got[0].Target == nil {
		t.Fatalf("expected harvest decision with target, got %+v", got[0])
	}
	if len(got[1].Purchases) != 1 || got[1].Purchases[0].Item != farm.BuyWater {
		t.Fatalf("expected water purchase, got %+v", got[1].Purchases)
	}

	_, err = repo.ListByBotID(ctx, ports.DecisionQuery{BotID: botID, From: base.Add(time.Hour)})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound outside window, got %v", err)
	}

	if err := repo.Append(ctx, farmer.Decision{TickID: "it-tick-1", BotID: botID, OccurredAt: base}); err == nil {
		t.Fatal("expected duplicate tick id rejected")
	}
}

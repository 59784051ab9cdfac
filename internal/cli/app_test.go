package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"farmerbot/internal/config"
	"farmerbot/internal/domain/farm"
	"farmerbot/internal/domain/farmer"
)

func TestApp_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	if err := app.ExecuteWithArgs(context.Background(), []string{"version"}); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "farmerbot version") {
		t.Errorf("version output missing 'farmerbot version', got: %s", stdout.String())
	}
}

func TestApp_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	if err := app.ExecuteWithArgs(context.Background(), []string{"--help"}); err != nil {
		t.Fatalf("help command failed: %v", err)
	}
	output := stdout.String()
	for _, want := range []string{"serve", "connect", "tick", "migrate"} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q, got: %s", want, output)
		}
	}
}

func TestApp_TickHarvestsInPlace(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	if err := app.ExecuteWithArgs(context.Background(), []string{"tick", "-f", "testdata/harvest.yaml"}); err != nil {
		t.Fatalf("tick command failed: %v", err)
	}
	output := stdout.String()
	if !strings.Contains(output, "action: harvest") || !strings.Contains(output, "target: (1,1) harvesting") {
		t.Errorf("unexpected tick output: %s", output)
	}
	if !strings.Contains(output, "host calls: get_farm, act harvest") {
		t.Errorf("unexpected host calls: %s", output)
	}
}

func TestApp_TickRestocksAsJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	if err := app.ExecuteWithArgs(context.Background(), []string{"tick", "-f", "testdata/restock.yaml", "--json"}); err != nil {
		t.Fatalf("tick command failed: %v", err)
	}
	var d farmer.Decision
	if err := json.Unmarshal(stdout.Bytes(), &d); err != nil {
		t.Fatalf("decode decision: %v (%s)", err, stdout.String())
	}
	want := []farmer.Purchase{
		{Item: farm.BuyEnergy, Quantity: 25},
		{Item: farm.BuyWater, Quantity: 25},
		{Item: farm.BuySeeds, Quantity: 1},
	}
	if len(d.Purchases) != len(want) {
		t.Fatalf("purchases = %+v, want %+v", d.Purchases, want)
	}
	for i := range want {
		if d.Purchases[i] != want[i] {
			t.Fatalf("purchases = %+v, want %+v", d.Purchases, want)
		}
	}
	if len(d.Sales) != 1 || d.Sales[0] != (farmer.Sale{Item: farm.SellGrass, Quantity: 5}) {
		t.Fatalf("unexpected sales: %+v", d.Sales)
	}
	if d.Action != nil {
		t.Fatalf("bot with energy 100 has nothing it may do on young grass, got %+v", d.Action)
	}
}

func TestApp_TickRequiresFixture(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	if err := app.ExecuteWithArgs(context.Background(), []string{"tick"}); err == nil {
		t.Fatal("expected error without --fixture")
	}
}

func TestApp_MigrateRequiresDSN(t *testing.T) {
	t.Setenv(config.EnvDSN, "")
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	err := app.ExecuteWithArgs(context.Background(), []string{"migrate"})
	if err == nil || !strings.Contains(err.Error(), config.EnvDSN) {
		t.Fatalf("expected missing DSN error, got %v", err)
	}
}

func TestApp_ServeRequiresHostURL(t *testing.T) {
	t.Setenv(config.EnvHostURL, "")
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	err := app.ExecuteWithArgs(context.Background(), []string{"serve"})
	if err == nil || !strings.Contains(err.Error(), config.EnvHostURL) {
		t.Fatalf("expected missing host url error, got %v", err)
	}
}

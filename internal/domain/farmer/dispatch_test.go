package farmer

import (
	"testing"

	"farmerbot/internal/domain/farm"
)

func TestScenarioA_MovesDownTowardMatureWheat(t *testing.T) {
	f := grassFarm(10, 10)
	f.Fields[6][5] = farm.Field{Plant: matureWheat()}
	bot := richBot(5, 5)
	tuning := DefaultTuning()

	candidates := tuning.ServiceableFields(bot, f, constRand(0.5))
	if len(candidates) != 1 || candidates[0] != (Candidate{X: 5, Y: 6, Work: Harvesting}) {
		t.Fatalf("expected single harvest candidate at (5,6), got %+v", candidates)
	}
	target, ok := tuning.SelectTarget(bot, candidates)
	if !ok {
		t.Fatal("expected a target")
	}
	action, ok := tuning.NextAction(bot, target, true)
	if !ok || action.Kind != farm.ActionMoveDown {
		t.Fatalf("expected move_down, got %+v ok=%v", action, ok)
	}
}

func TestScenarioB_HarvestsInPlace(t *testing.T) {
	f := grassFarm(10, 10)
	f.Fields[6][5] = farm.Field{Plant: matureWheat()}
	bot := richBot(5, 6)
	tuning := DefaultTuning()

	target, ok := tuning.SelectTarget(bot, tuning.ServiceableFields(bot, f, constRand(0.5)))
	if !ok {
		t.Fatal("expected a target")
	}
	action, ok := tuning.NextAction(bot, target, ok)
	if !ok || action.Kind != farm.ActionHarvest {
		t.Fatalf("expected harvest, got %+v ok=%v", action, ok)
	}
}

func TestNextAction_WorkInPlace(t *testing.T) {
	bot := richBot(1, 1)
	cases := map[Work]farm.Action{
		Watering:   farm.Water(),
		Harvesting: farm.Harvest(),
		Seeding:    farm.Seed(farm.PlantWheat),
	}
	for work, want := range cases {
		got, ok := DefaultTuning().NextAction(bot, Candidate{X: 1, Y: 1, Work: work}, true)
		if !ok || got != want {
			t.Fatalf("%s: got %+v ok=%v want %+v", work, got, ok, want)
		}
	}
}

func TestNextAction_StepDirection(t *testing.T) {
	bot := richBot(5, 5)
	cases := []struct {
		x, y int
		want farm.ActionKind
	}{
		{8, 6, farm.ActionMoveRight},
		{2, 4, farm.ActionMoveLeft},
		{6, 8, farm.ActionMoveDown},
		{4, 2, farm.ActionMoveUp},
		{7, 7, farm.ActionMoveDown},
		{3, 3, farm.ActionMoveUp},
	}
	for _, tc := range cases {
		got, ok := DefaultTuning().NextAction(bot, Candidate{X: tc.x, Y: tc.y, Work: Seeding}, true)
		if !ok || got.Kind != tc.want {
			t.Fatalf("target (%d,%d): got %+v ok=%v want %s", tc.x, tc.y, got, ok, tc.want)
		}
	}
}

func TestNextAction_NoAction(t *testing.T) {
	tuning := DefaultTuning()
	target := Candidate{X: 5, Y: 6, Work: Harvesting}

	busy := richBot(5, 5)
	busy.CurrentAction = farm.Move(farm.ActionMoveLeft)
	if got, ok := tuning.NextAction(busy, target, true); ok {
		t.Fatalf("busy bot must not act, got %+v", got)
	}

	if got, ok := tuning.NextAction(richBot(5, 5), Candidate{}, false); ok {
		t.Fatalf("no target must not act, got %+v", got)
	}

	tired := richBot(5, 5)
	tired.Energy = 100
	if got, ok := tuning.NextAction(tired, target, true); ok {
		t.Fatalf("bot at 100 energy must not move, got %+v", got)
	}

	tired.Position = farm.Position{X: 5, Y: 6}
	if got, ok := tuning.NextAction(tired, target, true); !ok || got.Kind != farm.ActionHarvest {
		t.Fatalf("work in place ignores move energy, got %+v ok=%v", got, ok)
	}
}

func TestNextAction_UsesTunedSeedPlant(t *testing.T) {
	tuning := DefaultTuning()
	tuning.SeedPlant = farm.PlantGrass
	got, ok := tuning.NextAction(richBot(0, 0), Candidate{Work: Seeding}, true)
	if !ok || got != farm.Seed(farm.PlantGrass) {
		t.Fatalf("expected grass seed, got %+v", got)
	}
}

package farmer

import (
	"math/rand/v2"
	"testing"

	"farmerbot/internal/domain/farm"
)

func TestServiceableFields_StaysOnGridAndWithinRadius(t *testing.T) {
	f := emptyFarm(6, 4)
	rng := rand.New(rand.NewPCG(1, 2))
	tuning := DefaultTuning()

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			bot := richBot(x, y)
			for _, c := range tuning.ServiceableFields(bot, f, rng) {
				if c.X < 0 || c.Y < 0 || c.X >= f.Width || c.Y >= f.Height {
					t.Fatalf("bot (%d,%d): candidate off grid %+v", x, y, c)
				}
				if d := max(abs(c.X-x), abs(c.Y-y)); d > SearchRadius {
					t.Fatalf("bot (%d,%d): candidate %+v at chebyshev %d", x, y, c, d)
				}
			}
		}
	}
}

func TestServiceableFields_CornerSeesClippedSquare(t *testing.T) {
	got := DefaultTuning().ServiceableFields(richBot(0, 0), emptyFarm(6, 4), constRand(0.5))
	if len(got) != 16 {
		t.Fatalf("expected 4x4 clipped square, got %d candidates", len(got))
	}
}

func TestServiceableFields_RingOrder(t *testing.T) {
	got := DefaultTuning().ServiceableFields(richBot(2, 2), emptyFarm(5, 5), constRand(0.5))
	want := [][2]int{
		{2, 2},
		{1, 1}, {1, 2}, {1, 3},
		{2, 1}, {2, 3},
		{3, 1}, {3, 2}, {3, 3},
	}
	if len(got) != 25 {
		t.Fatalf("expected full 5x5 grid, got %d", len(got))
	}
	for i, w := range want {
		if got[i].X != w[0] || got[i].Y != w[1] {
			t.Fatalf("candidate %d = (%d,%d), want (%d,%d)", i, got[i].X, got[i].Y, w[0], w[1])
		}
		if got[i].Work != Seeding {
			t.Fatalf("candidate %d: expected seeding, got %q", i, got[i].Work)
		}
	}
}

func TestServiceableFields_SkipsFieldHeldByOtherBot(t *testing.T) {
	f := grassFarm(5, 5)
	f.Fields[3][2] = farm.Field{Plant: matureWheat(), Entities: []farm.Entity{{Type: farm.EntityBot, ID: "bot-2"}}}
	f.Fields[1][2] = farm.Field{Plant: matureWheat(), Entities: []farm.Entity{{Type: farm.EntityBot, ID: "bot-1"}}}
	f.Fields[2][1] = farm.Field{Plant: matureWheat(), Entities: []farm.Entity{{Type: farm.EntityOther, ID: "crow"}}}

	got := DefaultTuning().ServiceableFields(richBot(2, 2), f, constRand(0.5))
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %+v", got)
	}
	for _, c := range got {
		if c.X == 2 && c.Y == 3 {
			t.Fatalf("field held by bot-2 must be skipped: %+v", got)
		}
	}
}

func TestServiceableFields_OccupiedKeptOnZeroDraw(t *testing.T) {
	f := grassFarm(3, 3)
	f.Fields[1][2] = farm.Field{Plant: matureWheat(), Entities: []farm.Entity{{Type: farm.EntityBot, ID: "bot-2"}}}

	got := DefaultTuning().ServiceableFields(richBot(1, 1), f, constRand(0))
	if len(got) != 1 || got[0].X != 2 || got[0].Y != 1 {
		t.Fatalf("zero draw keeps occupied field, got %+v", got)
	}
}

func TestServiceableFields_ThinsGroundCoverHarvestByDistance(t *testing.T) {
	f := grassFarm(5, 5)
	f.Fields[0][2] = farm.Field{Plant: &farm.Plant{Type: farm.PlantGrass, GrowthStage: 3, GrowthStageMax: 3}}
	bot := richBot(2, 2)

	if got := DefaultTuning().ServiceableFields(bot, f, constRand(0.29)); len(got) != 0 {
		t.Fatalf("draw below 0.30 should drop grass at distance 2, got %+v", got)
	}
	got := DefaultTuning().ServiceableFields(bot, f, constRand(0.31))
	if len(got) != 1 || got[0].Work != Harvesting {
		t.Fatalf("draw above 0.30 should keep grass harvest, got %+v", got)
	}

	f.Fields[0][2].Plant = matureWheat()
	if got := DefaultTuning().ServiceableFields(bot, f, constRand(0)); len(got) != 1 {
		t.Fatalf("wheat harvest is never thinned, got %+v", got)
	}
}

func TestServiceableFields_OccupiedGroundCoverDroppedAboveSkipChance(t *testing.T) {
	f := grassFarm(5, 5)
	f.Fields[2][3] = farm.Field{
		Plant:    &farm.Plant{Type: farm.PlantGrass, GrowthStage: 3, GrowthStageMax: 3},
		Entities: []farm.Entity{{Type: farm.EntityBot, ID: "bot-9"}},
	}
	if got := DefaultTuning().ServiceableFields(richBot(2, 2), f, constRand(0.9)); len(got) != 0 {
		t.Fatalf("occupied grass should be dropped, got %+v", got)
	}
}

func TestServiceableFields_DrawsOncePerWorkableField(t *testing.T) {
	f := grassFarm(7, 7)
	f.Fields[4][4] = farm.Field{Plant: matureWheat()}
	f.Fields[0][0] = farm.Field{Plant: matureWheat()}
	rng := &seqRand{vals: []float64{0.5}}

	got := DefaultTuning().ServiceableFields(richBot(3, 3), f, rng)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %+v", got)
	}
	if rng.draws != 2 {
		t.Fatalf("expected one draw per workable field, got %d", rng.draws)
	}
}

func TestServiceableFields_RespectsTunedRadius(t *testing.T) {
	tuning := DefaultTuning()
	tuning.SearchRadius = 1
	got := tuning.ServiceableFields(richBot(3, 3), emptyFarm(7, 7), constRand(0.5))
	if len(got) != 9 {
		t.Fatalf("radius 1 should visit 9 fields, got %d", len(got))
	}
}

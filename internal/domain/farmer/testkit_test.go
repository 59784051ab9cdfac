package farmer

import "farmerbot/internal/domain/farm"

type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

type seqRand struct {
	vals  []float64
	draws int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.draws%len(r.vals)]
	r.draws++
	return v
}

// grassFarm returns a w x h farm where every field holds young grass, which
// needs no work from any bot.
func grassFarm(w, h int) farm.FarmState {
	fields := make([][]farm.Field, h)
	for y := range fields {
		fields[y] = make([]farm.Field, w)
		for x := range fields[y] {
			fields[y][x] = farm.Field{Plant: &farm.Plant{Type: farm.PlantGrass, GrowthStage: 1, GrowthStageMax: 10}}
		}
	}
	return farm.FarmState{Width: w, Height: h, Fields: fields}
}

func emptyFarm(w, h int) farm.FarmState {
	fields := make([][]farm.Field, h)
	for y := range fields {
		fields[y] = make([]farm.Field, w)
	}
	return farm.FarmState{Width: w, Height: h, Fields: fields}
}

func matureWheat() *farm.Plant {
	return &farm.Plant{Type: farm.PlantWheat, GrowthStage: 10, GrowthStageMax: 10}
}

func richBot(x, y int) farm.BotState {
	return farm.BotState{ID: "bot-1", Position: farm.Position{X: x, Y: y}, Energy: 200, Water: 5, Seeds: 5, CurrentAction: farm.Idle()}
}

package farmer

import (
	"errors"
	"fmt"

	"farmerbot/internal/domain/farm"
)

const (
	BuyEnergyBelow  = 150
	BuyEnergyAmount = 25
	BuyWaterBelow   = 1
	BuyWaterAmount  = 25
	BuySeedsBelow   = 1
	BuySeedsAmount  = 1

	WaterMinEnergy = 100
	SeedMinEnergy  = 80
	MoveMinEnergy  = 100

	SearchRadius = 3

	GroundCoverSkipPerStep = 0.15

	HarvestPriorityModifier = -1
	WaterPriorityModifier   = 1
	SeedPriorityModifier    = 0
)

var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every threshold the decision pipeline reads. Energy minimums
// are exclusive: work needs strictly more energy than the listed value.
type Tuning struct {
	BuyEnergyBelow  int `yaml:"buy_energy_below"`
	BuyEnergyAmount int `yaml:"buy_energy_amount"`
	BuyWaterBelow   int `yaml:"buy_water_below"`
	BuyWaterAmount  int `yaml:"buy_water_amount"`
	BuySeedsBelow   int `yaml:"buy_seeds_below"`
	BuySeedsAmount  int `yaml:"buy_seeds_amount"`

	WaterMinEnergy int `yaml:"water_min_energy"`
	SeedMinEnergy  int `yaml:"seed_min_energy"`
	MoveMinEnergy  int `yaml:"move_min_energy"`

	SearchRadius           int     `yaml:"search_radius"`
	GroundCoverSkipPerStep float64 `yaml:"ground_cover_skip_per_step"`

	HarvestModifier int `yaml:"harvest_modifier"`
	WaterModifier   int `yaml:"water_modifier"`
	SeedModifier    int `yaml:"seed_modifier"`

	SeedPlant farm.PlantType `yaml:"seed_plant"`
}

func DefaultTuning() Tuning {
	return Tuning{
		BuyEnergyBelow:         BuyEnergyBelow,
		BuyEnergyAmount:        BuyEnergyAmount,
		BuyWaterBelow:          BuyWaterBelow,
		BuyWaterAmount:         BuyWaterAmount,
		BuySeedsBelow:          BuySeedsBelow,
		BuySeedsAmount:         BuySeedsAmount,
		WaterMinEnergy:         WaterMinEnergy,
		SeedMinEnergy:          SeedMinEnergy,
		MoveMinEnergy:          MoveMinEnergy,
		SearchRadius:           SearchRadius,
		GroundCoverSkipPerStep: GroundCoverSkipPerStep,
		HarvestModifier:        HarvestPriorityModifier,
		WaterModifier:          WaterPriorityModifier,
		SeedModifier:           SeedPriorityModifier,
		SeedPlant:              farm.PlantWheat,
	}
}

func (t Tuning) Validate() error {
	if t.SearchRadius < 0 {
		return fmt.Errorf("%w: search_radius %d", ErrInvalidTuning, t.SearchRadius)
	}
	if t.BuyEnergyAmount <= 0 || t.BuyWaterAmount <= 0 || t.BuySeedsAmount <= 0 {
		return fmt.Errorf("%w: purchase amounts must be positive", ErrInvalidTuning)
	}
	if t.GroundCoverSkipPerStep < 0 {
		return fmt.Errorf("%w: ground_cover_skip_per_step %v", ErrInvalidTuning, t.GroundCoverSkipPerStep)
	}
	if !t.SeedPlant.Valid() {
		return fmt.Errorf("%w: seed_plant %q", ErrInvalidTuning, t.SeedPlant)
	}
	return nil
}

func (t Tuning) modifier(w Work) int {
	switch w {
	case Harvesting:
		return t.HarvestModifier
	case Watering:
		return t.WaterModifier
	default:
		return t.SeedModifier
	}
}

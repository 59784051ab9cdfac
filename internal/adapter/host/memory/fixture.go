package memhost

import (
	"fmt"
	"os"

	"farmerbot/internal/domain/farm"

	"gopkg.in/yaml.v3"
)

const gridGrowthMax = 4

// Fixture is a bot plus the farm it stands on. The farm can be given in full
// or as a grid of one character per field:
//
//	.  empty soil
//	g  young grass      G  mature grass
//	w  young wheat      h  half grown wheat      W  mature wheat
//	B  another bot on empty soil
type Fixture struct {
	Bot  farm.BotState  `yaml:"bot"`
	Farm farm.FarmState `yaml:"farm"`
	Grid []string       `yaml:"grid"`
}

func LoadFixture(path string) (Fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	return ParseFixture(b)
}

func ParseFixture(b []byte) (Fixture, error) {
	var fx Fixture
	if err := yaml.Unmarshal(b, &fx); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	if len(fx.Grid) > 0 {
		fields, err := parseGrid(fx.Grid)
		if err != nil {
			return Fixture{}, err
		}
		fx.Farm.Fields = fields
		fx.Farm.Height = len(fields)
		fx.Farm.Width = len(fields[0])
	}
	if err := fx.Farm.Validate(); err != nil {
		return Fixture{}, err
	}
	if err := fx.Bot.Validate(); err != nil {
		return Fixture{}, err
	}
	return fx, nil
}

func parseGrid(rows []string) ([][]farm.Field, error) {
	out := make([][]farm.Field, len(rows))
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: grid row %d has %d cells, want %d", farm.ErrInvalidFarmState, y, len(row), len(rows[0]))
		}
		out[y] = make([]farm.Field, len(row))
		for x, c := range row {
			field, err := gridField(c)
			if err != nil {
				return nil, fmt.Errorf("%w: grid cell (%d,%d): %v", farm.ErrInvalidFarmState, x, y, err)
			}
			out[y][x] = field
		}
	}
	return out, nil
}

func gridField(c rune) (farm.Field, error) {
	plant := func(t farm.PlantType, stage int) farm.Field {
		return farm.Field{Plant: &farm.Plant{Type: t, GrowthStage: stage, GrowthStageMax: gridGrowthMax}}
	}
	switch c {
	case '.':
		return farm.Field{}, nil
	case 'g':
		return plant(farm.PlantGrass, 1), nil
	case 'G':
		return plant(farm.PlantGrass, gridGrowthMax), nil
	case 'w':
		return plant(farm.PlantWheat, 1), nil
	case 'h':
		return plant(farm.PlantWheat, gridGrowthMax-1), nil
	case 'W':
		return plant(farm.PlantWheat, gridGrowthMax), nil
	case 'B':
		return farm.Field{Entities: []farm.Entity{{Type: farm.EntityBot, ID: "other"}}}, nil
	default:
		return farm.Field{}, fmt.Errorf("unknown symbol %q", c)
	}
}

package farm

type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

type BotState struct {
	ID            string   `json:"id" yaml:"id"`
	Position      Position `json:"position" yaml:"position"`
	Energy        int      `json:"energy" yaml:"energy"`
	Water         int      `json:"water" yaml:"water"`
	Seeds         int      `json:"seeds" yaml:"seeds"`
	CurrentAction Action   `json:"current_action" yaml:"current_action"`
}

// Idle reports whether the host has finished the bot's previous action.
func (b BotState) Idle() bool {
	return b.CurrentAction.Kind == ActionIdle || b.CurrentAction.Kind == ""
}

type PlantType string

const (
	PlantGrass PlantType = "grass"
	PlantWheat PlantType = "wheat"
)

// GroundCover plants grow on their own and are never watered.
func (p PlantType) GroundCover() bool {
	return p == PlantGrass
}

func (p PlantType) Valid() bool {
	switch p {
	case PlantGrass, PlantWheat:
		return true
	default:
		return false
	}
}

type Plant struct {
	Type           PlantType `json:"plant_type" yaml:"plant_type"`
	GrowthStage    int       `json:"growth_stage" yaml:"growth_stage"`
	GrowthStageMax int       `json:"growth_stage_max" yaml:"growth_stage_max"`
}

func (p Plant) Mature() bool {
	return p.GrowthStage == p.GrowthStageMax
}

type EntityType string

const (
	EntityBot   EntityType = "bot"
	EntityOther EntityType = "other"
)

type Entity struct {
	Type EntityType `json:"entity_type" yaml:"entity_type"`
	ID   string     `json:"id" yaml:"id"`
}

type Field struct {
	Plant    *Plant   `json:"plant,omitempty" yaml:"plant,omitempty"`
	Watered  bool     `json:"watered" yaml:"watered"`
	Entities []Entity `json:"entities,omitempty" yaml:"entities,omitempty"`
}

// OccupiedByOtherBot reports whether a bot other than botID stands on the field.
func (f Field) OccupiedByOtherBot(botID string) bool {
	for _, e := range f.Entities {
		if e.Type == EntityBot && e.ID != botID {
			return true
		}
	}
	return false
}

type FarmState struct {
	Width  int       `json:"fields_width" yaml:"fields_width"`
	Height int       `json:"fields_height" yaml:"fields_height"`
	Fields [][]Field `json:"fields" yaml:"fields"`
	Grass  int       `json:"grass" yaml:"grass"`
	Wheat  int       `json:"wheat" yaml:"wheat"`
}

// FieldAt returns the field at column x, row y.
func (f FarmState) FieldAt(x, y int) (Field, bool) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Field{}, false
	}
	if y >= len(f.Fields) || x >= len(f.Fields[y]) {
		return Field{}, false
	}
	return f.Fields[y][x], true
}

type Buyable string

const (
	BuyEnergy Buyable = "energy"
	BuyWater  Buyable = "water"
	BuySeeds  Buyable = "seeds"
)

type Sellable string

const (
	SellGrass Sellable = "grass"
	SellWheat Sellable = "wheat"
)

type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

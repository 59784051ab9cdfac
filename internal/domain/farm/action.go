package farm

type ActionKind string

const (
	ActionIdle      ActionKind = "idle"
	ActionMoveUp    ActionKind = "move_up"
	ActionMoveDown  ActionKind = "move_down"
	ActionMoveLeft  ActionKind = "move_left"
	ActionMoveRight ActionKind = "move_right"
	ActionWater     ActionKind = "water"
	ActionHarvest   ActionKind = "harvest"
	ActionSeed      ActionKind = "seed"
)

type Action struct {
	Kind  ActionKind `json:"kind" yaml:"kind"`
	Plant PlantType  `json:"plant_type,omitempty" yaml:"plant_type,omitempty"`
}

func Idle() Action { return Action{Kind: ActionIdle} }
func Water() Action { return Action{Kind: ActionWater} }
func Harvest() Action { return Action{Kind: ActionHarvest} }
func Seed(plant PlantType) Action { return Action{Kind: ActionSeed, Plant: plant} }
func Move(kind ActionKind) Action { return Action{Kind: kind} }

func (k ActionKind) Valid() bool {
	switch k {
	case ActionIdle, ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight,
		ActionWater, ActionHarvest, ActionSeed:
		return true
	default:
		return false
	}
}

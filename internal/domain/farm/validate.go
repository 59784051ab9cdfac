package farm

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBotState  = errors.New("invalid bot state")
	ErrInvalidFarmState = errors.New("invalid farm state")
)

func (b BotState) Validate() error {
	if b.Position.X < 0 || b.Position.Y < 0 {
		return fmt.Errorf("%w: negative position (%d,%d)", ErrInvalidBotState, b.Position.X, b.Position.Y)
	}
	if b.Energy < 0 || b.Water < 0 || b.Seeds < 0 {
		return fmt.Errorf("%w: negative resources", ErrInvalidBotState)
	}
	if b.CurrentAction.Kind != "" && !b.CurrentAction.Kind.Valid() {
		return fmt.Errorf("%w: unknown current action %q", ErrInvalidBotState, b.CurrentAction.Kind)
	}
	return nil
}

// Validate checks grid rectangularity and plant growth bounds. Host data that
// fails here must not reach the decision pipeline.
func (f FarmState) Validate() error {
	if f.Width < 0 || f.Height < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidFarmState, f.Width, f.Height)
	}
	if len(f.Fields) != f.Height {
		return fmt.Errorf("%w: %d rows, want %d", ErrInvalidFarmState, len(f.Fields), f.Height)
	}
	for y, row := range f.Fields {
		if len(row) != f.Width {
			return fmt.Errorf("%w: row %d has %d fields, want %d", ErrInvalidFarmState, y, len(row), f.Width)
		}
		for x, field := range row {
			p := field.Plant
			if p == nil {
				continue
			}
			if p.GrowthStageMax <= 0 || p.GrowthStage < 0 || p.GrowthStage > p.GrowthStageMax {
				return fmt.Errorf("%w: plant at (%d,%d) stage %d/%d", ErrInvalidFarmState, x, y, p.GrowthStage, p.GrowthStageMax)
			}
		}
	}
	if f.Grass < 0 || f.Wheat < 0 {
		return fmt.Errorf("%w: negative produce", ErrInvalidFarmState)
	}
	return nil
}

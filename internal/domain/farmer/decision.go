package farmer

import (
	"time"

	"farmerbot/internal/domain/farm"
)

// Decision is the audit record of one tick. It is written after the tick and
// never read back by the pipeline.
type Decision struct {
	TickID           string        `json:"tick_id"`
	BotID            string        `json:"bot_id"`
	Position         farm.Position `json:"position"`
	Energy           int           `json:"energy"`
	Water            int           `json:"water"`
	Seeds            int           `json:"seeds"`
	Idle             bool          `json:"idle"`
	Purchases        []Purchase    `json:"purchases,omitempty"`
	Sales            []Sale        `json:"sales,omitempty"`
	MaintenanceError string        `json:"maintenance_error,omitempty"`
	CandidateCount   int           `json:"candidate_count"`
	Target           *Candidate    `json:"target,omitempty"`
	Action           *farm.Action  `json:"action,omitempty"`
	ActuatorError    string        `json:"actuator_error,omitempty"`
	OccurredAt       time.Time     `json:"occurred_at"`
}

// ActionKind reports the emitted action, or idle when nothing was sent.
func (d Decision) ActionKind() farm.ActionKind {
	if d.Action == nil {
		return farm.ActionIdle
	}
	return d.Action.Kind
}

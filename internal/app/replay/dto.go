package replay

import "farmerbot/internal/domain/farmer"

type Request struct {
	BotID        string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

type Response struct {
	Decisions []farmer.Decision `json:"decisions"`
	Summary   Summary           `json:"summary"`
}

type Summary struct {
	Ticks               int            `json:"ticks"`
	ByAction            map[string]int `json:"by_action"`
	MaintenanceFailures int            `json:"maintenance_failures"`
}

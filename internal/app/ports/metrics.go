package ports

import "farmerbot/internal/domain/farm"

type TickMetrics interface {
	RecordTick(action farm.ActionKind)
	RecordMaintenanceFailure()
	RecordActuatorFailure()
	RecordJournalFailure()
}

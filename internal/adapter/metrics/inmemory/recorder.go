package inmemory

import (
	"sync"

	"farmerbot/internal/domain/farm"
)

type Snapshot struct {
	TickTotal           uint64            `json:"tick_total"`
	ActionsEmitted      uint64            `json:"actions_emitted"`
	MaintenanceFailures uint64            `json:"maintenance_failures"`
	ActuatorFailures    uint64            `json:"actuator_failures"`
	JournalFailures     uint64            `json:"journal_failures"`
	ByAction            map[string]uint64 `json:"by_action"`
}

type Recorder struct {
	mu          sync.Mutex
	ticks       uint64
	maintenance uint64
	actuator    uint64
	journal     uint64
	byAction    map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction: map[string]uint64{},
	}
}

func (r *Recorder) RecordTick(action farm.ActionKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks++
	r.byAction[string(action)]++
}

func (r *Recorder) RecordMaintenanceFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.maintenance++
}

func (r *Recorder) RecordActuatorFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actuator++
}

func (r *Recorder) RecordJournalFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.journal++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		TickTotal:           r.ticks,
		MaintenanceFailures: r.maintenance,
		ActuatorFailures:    r.actuator,
		JournalFailures:     r.journal,
		ByAction:            make(map[string]uint64, len(r.byAction)),
	}
	for k, v := range r.byAction {
		out.ByAction[k] = v
		if k != string(farm.ActionIdle) {
			out.ActionsEmitted += v
		}
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}

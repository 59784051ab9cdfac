package model

import "time"

const TableNameBotDecision = "bot_decisions"

type BotDecision struct {
	ID               int64     `gorm:"column:id;primaryKey;autoIncrement:true"`
	TickID           string    `gorm:"column:tick_id;not null"`
	BotID            string    `gorm:"column:bot_id;not null"`
	PosX             int32     `gorm:"column:pos_x;not null"`
	PosY             int32     `gorm:"column:pos_y;not null"`
	Energy           int32     `gorm:"column:energy;not null"`
	Water            int32     `gorm:"column:water;not null"`
	Seeds            int32     `gorm:"column:seeds;not null"`
	Idle             bool      `gorm:"column:idle;not null"`
	MaintenanceError string    `gorm:"column:maintenance_error;not null"`
	CandidateCount   int32     `gorm:"column:candidate_count;not null"`
	TargetX          *int32    `gorm:"column:target_x"`
	TargetY          *int32    `gorm:"column:target_y"`
	TargetWork       *string   `gorm:"column:target_work"`
	ActionKind       string    `gorm:"column:action_kind;not null"`
	ActionPlant      string    `gorm:"column:action_plant;not null"`
	ActuatorError    string    `gorm:"column:actuator_error;not null"`
	OccurredAt       time.Time `gorm:"column:occurred_at;not null"`
}

func (*BotDecision) TableName() string {
	return TableNameBotDecision
}

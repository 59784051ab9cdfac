package model

const TableNameBotTrade = "bot_trades"

type BotTrade struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement:true"`
	TickID   string `gorm:"column:tick_id;not null"`
	Side     string `gorm:"column:side;not null"`
	Item     string `gorm:"column:item;not null"`
	Quantity int32  `gorm:"column:quantity;not null"`
	Seq      int32  `gorm:"column:seq;not null"`
}

func (*BotTrade) TableName() string {
	return TableNameBotTrade
}

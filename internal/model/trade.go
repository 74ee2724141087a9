package model

import (
	"time"

	"gorm.io/datatypes"
)

type Outcome string

const (
	OutcomeWin       Outcome = "Win"
	OutcomeLoss      Outcome = "Loss"
	OutcomeBreakEven Outcome = "Break-even"
	OutcomeUnknown   Outcome = "Unknown"
)

type Killzone string

const (
	KillzoneLondon  Killzone = "London"
	KillzoneNewYork Killzone = "New York"
	KillzoneOther   Killzone = "Other"
	KillzoneUnknown Killzone = "Unknown"
)

// Trade is one journal document normalized into a record. A trade is written
// once by the assembler and never updated, only deleted.
type Trade struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	AccountID uint   `gorm:"not null;uniqueIndex:idx_trades_account_filename" json:"account_id"`
	Filename  string `gorm:"not null;uniqueIndex:idx_trades_account_filename" json:"filename"`

	PositionSize   string `json:"position_size"`
	PipsGainedLost string `json:"pips_gained_lost"`
	RiskReward     string `json:"risk_reward"`
	StrategyUsed   string `json:"strategy_used"`

	OpenedAt time.Time `gorm:"not null" json:"opened_at"`
	ClosedAt time.Time `gorm:"not null" json:"closed_at"`

	// ProfitLoss keeps the cleaned textual amount; ProfitLossValue is nil when
	// the text did not parse as a number (outcome Unknown).
	ProfitLoss      string   `json:"profit_loss"`
	ProfitLossValue *float64 `json:"profit_loss_value"`

	OpenDay              string     `json:"open_day"`
	OpenTime             string     `json:"open_time"`
	OpenMonth            string     `json:"open_month"`
	TradeDurationMinutes float64    `json:"trade_duration_minutes"`
	Killzone             Killzone   `json:"killzone"`
	TimeWriting          *time.Time `json:"time_writing"`
	TradeOutcome         Outcome    `gorm:"not null" json:"trade_outcome"`

	// RawFields preserves the extractor's label -> value map for auditing.
	RawFields datatypes.JSON `gorm:"type:jsonb" json:"-"`

	Account   Account   `gorm:"foreignKey:AccountID;references:ID" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Trade) TableName() string {
	return "trades"
}

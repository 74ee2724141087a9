package dto

import (
	"time"

	"github.com/landifrancesco/TradeStatEngine/internal/model"
)

type GroupAxis string

const (
	GroupByDay      GroupAxis = "open_day"
	GroupByKillzone GroupAxis = "killzone"
	GroupByStrategy GroupAxis = "strategy_used"
)

type SummaryStats struct {
	TotalTrades    int `json:"total_trades"`
	TotalWins      int `json:"total_wins"`
	TotalLosses    int `json:"total_losses"`
	TotalBreakEven int `json:"total_break_even"`
	TotalUnknowns  int `json:"total_unknowns"`
}

type PnLPoint struct {
	Date          time.Time `json:"date"`
	ProfitLoss    float64   `json:"profit_loss"`
	CumulativePnL float64   `json:"cumulative_pnl"`
}

type OutcomeCounts struct {
	Wins      int `json:"wins"`
	Losses    int `json:"losses"`
	BreakEven int `json:"break_even"`
	Unknowns  int `json:"unknowns"`
}

// DurationPoint is one outcome/duration pair for the duration heatmap.
type DurationPoint struct {
	Outcome  model.Outcome `json:"outcome"`
	Duration float64       `json:"duration"`
}

type TradeDigest struct {
	Filename   string    `json:"filename"`
	Opened     time.Time `json:"opened"`
	Closed     time.Time `json:"closed"`
	ProfitLoss float64   `json:"profit_loss"`
}

type ExtremesStats struct {
	BestTrades  []TradeDigest `json:"best_trades"`
	WorstTrades []TradeDigest `json:"worst_trades"`
}

// RewardRatioStats carries either the flat distribution or the per-outcome
// split, depending on what was asked.
type RewardRatioStats struct {
	Ratios    []float64                   `json:"ratios,omitempty"`
	ByOutcome map[model.Outcome][]float64 `json:"by_outcome,omitempty"`
}

type StrategyStats struct {
	TotalTrades int     `json:"total_trades"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	WinRate     float64 `json:"win_rate"`
}

type StatsRequest struct {
	AccountID uint `query:"account_id" validate:"required"`
}

type GroupedStatsRequest struct {
	AccountID uint   `query:"account_id" validate:"required"`
	Axis      string `query:"axis" validate:"omitempty,oneof=open_day killzone strategy_used"`
}

type MonthlyStatsRequest struct {
	AccountID uint `query:"account_id" validate:"required"`
	// TimeWriting switches the monthly buckets to the journal authoring time
	// instead of the trade open time.
	TimeWriting bool `query:"time_writing"`
}

type ExtremesRequest struct {
	AccountID uint `query:"account_id" validate:"required"`
	Limit     int  `query:"limit" validate:"omitempty,min=1,max=50"`
}

type RatiosRequest struct {
	AccountID uint `query:"account_id" validate:"required"`
	ByOutcome bool `query:"by_outcome"`
}

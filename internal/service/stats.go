package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/landifrancesco/TradeStatEngine/config"
	"github.com/landifrancesco/TradeStatEngine/internal/dto"
	"github.com/landifrancesco/TradeStatEngine/internal/model"
	"github.com/landifrancesco/TradeStatEngine/internal/parser"
	"github.com/landifrancesco/TradeStatEngine/internal/repository"
	"github.com/landifrancesco/TradeStatEngine/pkg/cache"
	"github.com/landifrancesco/TradeStatEngine/pkg/common"
	"github.com/landifrancesco/TradeStatEngine/pkg/logger"
	"github.com/landifrancesco/TradeStatEngine/pkg/utils"
)

const defaultExtremesLimit = 5

// StatsService computes the canned aggregate queries over an account's trade
// snapshot. Every query tolerates an empty account by returning an empty
// result, and reads whatever is committed at call time.
type StatsService interface {
	Summary(ctx context.Context, accountID uint) (*dto.SummaryStats, error)
	PnLCurve(ctx context.Context, accountID uint) ([]dto.PnLPoint, error)
	GroupedPerformance(ctx context.Context, accountID uint, axis dto.GroupAxis) (map[string]dto.OutcomeCounts, error)
	MonthlyPerformance(ctx context.Context, accountID uint, useTimeWriting bool) (map[string]float64, error)
	Extremes(ctx context.Context, accountID uint, limit int) (*dto.ExtremesStats, error)
	RewardRatios(ctx context.Context, accountID uint, byOutcome bool) (*dto.RewardRatioStats, error)
	StrategySuccess(ctx context.Context, accountID uint) (map[string]dto.StrategyStats, error)
	AverageDuration(ctx context.Context, accountID uint) (map[model.Outcome]float64, error)
	DurationHeatmap(ctx context.Context, accountID uint) ([]dto.DurationPoint, error)
	KillzoneByDay(ctx context.Context, accountID uint) (map[model.Killzone]map[string]int, error)
}

type statsService struct {
	cfg       *config.Config
	log       *logger.Logger
	tradeRepo repository.TradeRepository
	cache     cache.Cache
}

func NewStatsService(
	cfg *config.Config,
	log *logger.Logger,
	tradeRepo repository.TradeRepository,
	inmemoryCache cache.Cache,
) StatsService {
	return &statsService{
		cfg:       cfg,
		log:       log,
		tradeRepo: tradeRepo,
		cache:     inmemoryCache,
	}
}

// listTrades fetches the account snapshot, caching it until the next ingest
// or delete for that account.
func (s *statsService) listTrades(ctx context.Context, accountID uint) ([]model.Trade, error) {
	key := fmt.Sprintf(common.KEY_ACCOUNT_TRADES, accountID)
	if cached, found := s.cache.Get(key); found {
		if trades, ok := cached.([]model.Trade); ok {
			return trades, nil
		}
	}

	trades, err := s.tradeRepo.List(ctx, accountID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, trades, s.cfg.Cache.DefaultExpiration)
	return trades, nil
}

func (s *statsService) Summary(ctx context.Context, accountID uint) (*dto.SummaryStats, error) {
	trades, err := s.listTrades(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return summarize(trades), nil
}

func (s *statsService) PnLCurve(ctx context.Context, accountID uint) ([]dto.PnLPoint, error) {
	trades, err := s.listTrades(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return pnlCurve(trades), nil
}

func (s *statsService) GroupedPerformance(ctx context.Context, accountID uint, axis dto.GroupAxis) (map[string]dto.OutcomeCounts, error) {
	trades, err := s.listTrades(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return groupOutcomes(trades, axis), nil
}

func (s *statsService) MonthlyPerformance(ctx context.Context, accountID uint, useTimeWriting bool) (map[string]float64, error) {
	trades, err := s.listTrades(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return monthlyPnL(trades, useTimeWriting), nil
}

func (s *statsService) Extremes(ctx context.Context, accountID uint, limit int) (*dto.ExtremesStats, error) {
	trades, err := s.listTrades(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if limit < 1 {
		limit = defaultExtremesLimit
	}
	return extremes(trades, limit), nil
}

func (s *statsService) RewardRatios(ctx context.Context, accountID uint, byOutcome bool) (*dto.RewardRatioStats, error) {
	trades, err := s.listTrades(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return rewardRatios(trades, byOutcome), nil
}

func (s *statsService) StrategySuccess(ctx context.Context, accountID uint) (map[string]dto.StrategyStats, error) {
	trades, err := s.listTrades(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return strategySuccess(trades), nil
}

func (s *statsService) AverageDuration(ctx context.Context, accountID uint) (map[model.Outcome]float64, error) {
	trades, err := s.listTrades(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return averageDuration(trades), nil
}

func (s *statsService) DurationHeatmap(ctx context.Context, accountID uint) ([]dto.DurationPoint, error) {
	trades, err := s.listTrades(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return durationHeatmap(trades), nil
}

func (s *statsService) KillzoneByDay(ctx context.Context, accountID uint) (map[model.Killzone]map[string]int, error) {
	trades, err := s.listTrades(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return killzoneByDay(trades), nil
}

func summarize(trades []model.Trade) *dto.SummaryStats {
	stats := &dto.SummaryStats{TotalTrades: len(trades)}
	for _, t := range trades {
		switch t.TradeOutcome {
		case model.OutcomeWin:
			stats.TotalWins++
		case model.OutcomeLoss:
			stats.TotalLosses++
		case model.OutcomeBreakEven:
			stats.TotalBreakEven++
		case model.OutcomeUnknown:
			stats.TotalUnknowns++
		}
	}
	return stats
}

// pnlCurve orders by opening time ascending and carries a running sum.
// Records without a parsed amount are skipped, not zero-filled.
func pnlCurve(trades []model.Trade) []dto.PnLPoint {
	sorted := make([]model.Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OpenedAt.Before(sorted[j].OpenedAt)
	})

	points := make([]dto.PnLPoint, 0, len(sorted))
	cumulative := 0.0
	for _, t := range sorted {
		if t.ProfitLossValue == nil {
			continue
		}
		cumulative += *t.ProfitLossValue
		points = append(points, dto.PnLPoint{
			Date:          t.OpenedAt,
			ProfitLoss:    *t.ProfitLossValue,
			CumulativePnL: cumulative,
		})
	}
	return points
}

func groupOutcomes(trades []model.Trade, axis dto.GroupAxis) map[string]dto.OutcomeCounts {
	keyOf := func(t model.Trade) string {
		switch axis {
		case dto.GroupByKillzone:
			return string(t.Killzone)
		case dto.GroupByStrategy:
			// Strategy labels group verbatim; "Box Setup" and "box setup"
			// are distinct on purpose.
			return t.StrategyUsed
		default:
			return t.OpenDay
		}
	}

	grouped := make(map[string]dto.OutcomeCounts)
	for _, t := range trades {
		key := keyOf(t)
		if key == "" {
			continue
		}
		counts := grouped[key]
		switch t.TradeOutcome {
		case model.OutcomeWin:
			counts.Wins++
		case model.OutcomeLoss:
			counts.Losses++
		case model.OutcomeBreakEven:
			counts.BreakEven++
		case model.OutcomeUnknown:
			counts.Unknowns++
		}
		grouped[key] = counts
	}
	return grouped
}

func monthlyPnL(trades []model.Trade, useTimeWriting bool) map[string]float64 {
	monthly := make(map[string]float64)
	for _, t := range trades {
		if t.ProfitLossValue == nil {
			continue
		}
		bucket := t.OpenedAt
		if useTimeWriting && t.TimeWriting != nil {
			bucket = *t.TimeWriting
		}
		monthly[utils.MonthKey(bucket)] += *t.ProfitLossValue
	}
	return monthly
}

func extremes(trades []model.Trade, limit int) *dto.ExtremesStats {
	valued := make([]model.Trade, 0, len(trades))
	for _, t := range trades {
		if t.ProfitLossValue != nil {
			valued = append(valued, t)
		}
	}
	sort.SliceStable(valued, func(i, j int) bool {
		return *valued[i].ProfitLossValue > *valued[j].ProfitLossValue
	})

	digest := func(t model.Trade) dto.TradeDigest {
		return dto.TradeDigest{
			Filename:   t.Filename,
			Opened:     t.OpenedAt,
			Closed:     t.ClosedAt,
			ProfitLoss: *t.ProfitLossValue,
		}
	}

	stats := &dto.ExtremesStats{
		BestTrades:  []dto.TradeDigest{},
		WorstTrades: []dto.TradeDigest{},
	}
	for i := 0; i < limit && i < len(valued); i++ {
		stats.BestTrades = append(stats.BestTrades, digest(valued[i]))
	}
	for i := 0; i < limit && i < len(valued); i++ {
		stats.WorstTrades = append(stats.WorstTrades, digest(valued[len(valued)-1-i]))
	}
	return stats
}

func rewardRatios(trades []model.Trade, byOutcome bool) *dto.RewardRatioStats {
	if byOutcome {
		// Every outcome present in the data gets a bucket; the dashboard plots
		// break-even ratios as their own category.
		split := make(map[model.Outcome][]float64)
		for _, t := range trades {
			ratio, ok := parser.FirstRiskReward(t.RiskReward)
			if !ok {
				continue
			}
			split[t.TradeOutcome] = append(split[t.TradeOutcome], ratio)
		}
		return &dto.RewardRatioStats{ByOutcome: split}
	}

	ratios := []float64{}
	for _, t := range trades {
		if ratio, ok := parser.FirstRiskReward(t.RiskReward); ok {
			ratios = append(ratios, ratio)
		}
	}
	return &dto.RewardRatioStats{Ratios: ratios}
}

func strategySuccess(trades []model.Trade) map[string]dto.StrategyStats {
	stats := make(map[string]dto.StrategyStats)
	for _, t := range trades {
		if t.StrategyUsed == "" {
			continue
		}
		entry := stats[t.StrategyUsed]
		entry.TotalTrades++
		switch t.TradeOutcome {
		case model.OutcomeWin:
			entry.Wins++
		case model.OutcomeLoss:
			entry.Losses++
		}
		stats[t.StrategyUsed] = entry
	}
	for key, entry := range stats {
		if entry.TotalTrades > 0 {
			entry.WinRate = utils.Round2(float64(entry.Wins) / float64(entry.TotalTrades) * 100)
		}
		stats[key] = entry
	}
	return stats
}

func averageDuration(trades []model.Trade) map[model.Outcome]float64 {
	totals := make(map[model.Outcome]float64)
	counts := make(map[model.Outcome]int)
	for _, t := range trades {
		totals[t.TradeOutcome] += t.TradeDurationMinutes
		counts[t.TradeOutcome]++
	}

	averages := make(map[model.Outcome]float64, len(totals))
	for outcome, total := range totals {
		averages[outcome] = utils.Round2(total / float64(counts[outcome]))
	}
	return averages
}

// durationHeatmap emits one outcome/duration pair per resolved trade, feeding
// the dashboard heatmap. Unknown-outcome records carry no directional signal
// and stay out.
func durationHeatmap(trades []model.Trade) []dto.DurationPoint {
	points := make([]dto.DurationPoint, 0, len(trades))
	for _, t := range trades {
		if t.TradeOutcome == model.OutcomeUnknown || t.TradeOutcome == "" {
			continue
		}
		points = append(points, dto.DurationPoint{
			Outcome:  t.TradeOutcome,
			Duration: t.TradeDurationMinutes,
		})
	}
	return points
}

func killzoneByDay(trades []model.Trade) map[model.Killzone]map[string]int {
	grouped := make(map[model.Killzone]map[string]int)
	for _, t := range trades {
		if t.Killzone == "" || t.OpenDay == "" {
			continue
		}
		if grouped[t.Killzone] == nil {
			grouped[t.Killzone] = make(map[string]int)
		}
		grouped[t.Killzone][t.OpenDay]++
	}
	return grouped
}

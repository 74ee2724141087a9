package http

import (
	"net/http"

	"github.com/landifrancesco/TradeStatEngine/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupStats(base *echo.Group) {
	statsGroup := base.Group("/stats")
	statsGroup.GET("/summary", h.summary)
	statsGroup.GET("/pnl", h.pnl)
	statsGroup.GET("/daily", h.daily)
	statsGroup.GET("/killzone", h.killzone)
	statsGroup.GET("/killzone_outcomes", h.killzoneOutcomes)
	statsGroup.GET("/strategy_success", h.strategySuccess)
	statsGroup.GET("/monthly", h.monthly)
	statsGroup.GET("/best_worst", h.bestWorst)
	statsGroup.GET("/reward_ratios", h.rewardRatios)
	statsGroup.GET("/average_duration", h.averageDuration)
	statsGroup.GET("/duration_heatmap", h.durationHeatmap)
}

func (h *HttpAPIHandler) summary(c echo.Context) error {
	req := new(dto.StatsRequest)
	if !h.bindAndValidate(c, req) {
		return nil
	}

	stats, err := h.service.StatsService.Summary(c.Request().Context(), req.AccountID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to compute summary"})
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *HttpAPIHandler) pnl(c echo.Context) error {
	req := new(dto.StatsRequest)
	if !h.bindAndValidate(c, req) {
		return nil
	}

	curve, err := h.service.StatsService.PnLCurve(c.Request().Context(), req.AccountID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to compute P&L curve"})
	}
	return c.JSON(http.StatusOK, curve)
}

func (h *HttpAPIHandler) daily(c echo.Context) error {
	return h.grouped(c, dto.GroupByDay)
}

func (h *HttpAPIHandler) killzoneOutcomes(c echo.Context) error {
	return h.grouped(c, dto.GroupByKillzone)
}

func (h *HttpAPIHandler) grouped(c echo.Context, axis dto.GroupAxis) error {
	req := new(dto.StatsRequest)
	if !h.bindAndValidate(c, req) {
		return nil
	}

	performance, err := h.service.StatsService.GroupedPerformance(c.Request().Context(), req.AccountID, axis)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to compute grouped performance"})
	}
	return c.JSON(http.StatusOK, performance)
}

func (h *HttpAPIHandler) killzone(c echo.Context) error {
	req := new(dto.StatsRequest)
	if !h.bindAndValidate(c, req) {
		return nil
	}

	performance, err := h.service.StatsService.KillzoneByDay(c.Request().Context(), req.AccountID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to compute killzone stats"})
	}
	return c.JSON(http.StatusOK, performance)
}

func (h *HttpAPIHandler) strategySuccess(c echo.Context) error {
	req := new(dto.StatsRequest)
	if !h.bindAndValidate(c, req) {
		return nil
	}

	stats, err := h.service.StatsService.StrategySuccess(c.Request().Context(), req.AccountID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to compute strategy stats"})
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *HttpAPIHandler) monthly(c echo.Context) error {
	req := new(dto.MonthlyStatsRequest)
	if !h.bindAndValidate(c, req) {
		return nil
	}

	monthly, err := h.service.StatsService.MonthlyPerformance(c.Request().Context(), req.AccountID, req.TimeWriting)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to compute monthly performance"})
	}
	return c.JSON(http.StatusOK, monthly)
}

func (h *HttpAPIHandler) bestWorst(c echo.Context) error {
	req := new(dto.ExtremesRequest)
	if !h.bindAndValidate(c, req) {
		return nil
	}

	stats, err := h.service.StatsService.Extremes(c.Request().Context(), req.AccountID, req.Limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to compute extremes"})
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *HttpAPIHandler) rewardRatios(c echo.Context) error {
	req := new(dto.RatiosRequest)
	if !h.bindAndValidate(c, req) {
		return nil
	}

	stats, err := h.service.StatsService.RewardRatios(c.Request().Context(), req.AccountID, req.ByOutcome)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to compute reward ratios"})
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *HttpAPIHandler) durationHeatmap(c echo.Context) error {
	req := new(dto.StatsRequest)
	if !h.bindAndValidate(c, req) {
		return nil
	}

	points, err := h.service.StatsService.DurationHeatmap(c.Request().Context(), req.AccountID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to compute duration heatmap"})
	}
	return c.JSON(http.StatusOK, points)
}

func (h *HttpAPIHandler) averageDuration(c echo.Context) error {
	req := new(dto.StatsRequest)
	if !h.bindAndValidate(c, req) {
		return nil
	}

	averages, err := h.service.StatsService.AverageDuration(c.Request().Context(), req.AccountID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to compute average durations"})
	}
	return c.JSON(http.StatusOK, averages)
}

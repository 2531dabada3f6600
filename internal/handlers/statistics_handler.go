package handlers

import (
	"net/http"

	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// StatisticsHandler exposes the aggregated financial views
type StatisticsHandler struct {
	statisticsService services.StatisticsServiceInterface
}

// NewStatisticsHandler creates a new statistics handler
func NewStatisticsHandler(statisticsService services.StatisticsServiceInterface) *StatisticsHandler {
	return &StatisticsHandler{
		statisticsService: statisticsService,
	}
}

// GetBalanceSummary returns the current-month balance position
// @Summary Balance summary
// @Description Current-month income, expense, balance, savings rate and trend
// @Tags Statistics
// @Produce json
// @Success 200 {object} SuccessResponse "Balance summary"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /statistics/balance [get]
func (h *StatisticsHandler) GetBalanceSummary(c echo.Context) error {
	summary, err := h.statisticsService.GetBalanceSummary(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary})
}

// GetIncomeStatistics returns income compared across calendar periods
// @Summary Income statistics
// @Description Income totals for current month, last month and current year with month-over-month change and category breakdown
// @Tags Statistics
// @Produce json
// @Success 200 {object} SuccessResponse "Income statistics"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /statistics/income [get]
func (h *StatisticsHandler) GetIncomeStatistics(c echo.Context) error {
	stats, err := h.statisticsService.GetIncomeStatistics(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: stats})
}

// GetTransactionStats returns current-month totals across both entry types
// @Summary Transaction statistics
// @Description Current-month income/expense totals, net amount, count, average transaction and category breakdown
// @Tags Statistics
// @Produce json
// @Success 200 {object} SuccessResponse "Transaction statistics"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /statistics/transactions [get]
func (h *StatisticsHandler) GetTransactionStats(c echo.Context) error {
	stats, err := h.statisticsService.GetTransactionStats(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: stats})
}

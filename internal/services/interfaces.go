package services

import (
	"context"
	"time"

	"fintrack/internal/models"
)

// StatisticsServiceInterface exposes the aggregated financial views. All
// periods are derived from the service's clock at call time; the caller's
// context carries any deadline for the underlying queries.
type StatisticsServiceInterface interface {
	GetBalanceSummary(ctx context.Context) (*models.BalanceSummary, error)
	GetIncomeStatistics(ctx context.Context) (*models.IncomeStatistics, error)
	GetTransactionStats(ctx context.Context) (*models.TransactionStats, error)
}

// SubscriptionServiceInterface defines recurring-entry business operations
type SubscriptionServiceInterface interface {
	PostDue(ctx context.Context, now time.Time) (int, error)
	MonthlyRecurringAmount(txType string) (float64, error)
}

// MetricsRecorderInterface records operational metrics for statistics
// computations and subscription posting
type MetricsRecorderInterface interface {
	RecordAggregation(kind string, duration time.Duration, err error)
	RecordSubscriptionPosted()
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Aggregation kinds reported to the metrics recorder
const (
	AggregationBalance      = "balance_summary"
	AggregationIncome       = "income_statistics"
	AggregationTransactions = "transaction_stats"
)

type statisticsService struct {
	txAggregates repositories.TransactionAggregateInterface
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      MetricsRecorderInterface
	clock        func() time.Time
}

// NewStatisticsService creates the statistics engine. A nil clock defaults
// to time.Now; tests inject a fixed clock to pin the calendar periods.
func NewStatisticsService(
	txAggregates repositories.TransactionAggregateInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	clock func() time.Time,
) StatisticsServiceInterface {
	if clock == nil {
		clock = time.Now
	}
	return &statisticsService{
		txAggregates: txAggregates,
		categoryRepo: categoryRepo,
		metrics:      metrics,
		clock:        clock,
	}
}

// GetBalanceSummary computes the current-month income, expense, balance,
// savings rate and trend
func (s *statisticsService) GetBalanceSummary(ctx context.Context) (*models.BalanceSummary, error) {
	started := s.clock()

	periods := PeriodsFor(started)
	if err := periods.Validate(); err != nil {
		return nil, err
	}

	var incomeTotal, expenseTotal models.TypeTotal

	// The two sums are independent; run them together and fail the whole
	// call if either fails, since a partial summary would misstate the
	// household's position.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomeTotal, err = s.txAggregates.SumAndCountByType(gctx, models.TransactionTypeIncome, periods.CurrentMonth)
		return err
	})
	g.Go(func() error {
		var err error
		expenseTotal, err = s.txAggregates.SumAndCountByType(gctx, models.TransactionTypeExpense, periods.CurrentMonth)
		return err
	})

	if err := g.Wait(); err != nil {
		s.recordAggregation(AggregationBalance, started, err)
		return nil, fmt.Errorf("failed to aggregate balance summary: %w", err)
	}

	income := amountOf(incomeTotal.TotalAmount)
	expense := amountOf(expenseTotal.TotalAmount)
	balance := income.Sub(expense)

	summary := &models.BalanceSummary{
		Income:      income.InexactFloat64(),
		Expense:     expense.InexactFloat64(),
		Balance:     balance.InexactFloat64(),
		SavingsRate: SavingsRate(balance, income),
		Trend:       ClassifyTrend(balance),
		Period:      periods.CurrentMonth,
	}

	s.recordAggregation(AggregationBalance, started, nil)
	slog.Info("balance summary generated",
		"period", periods.CurrentMonth.String(),
		"trend", summary.Trend)

	return summary, nil
}

// GetIncomeStatistics compares income across the current month, last month
// and current year, with a per-category breakdown of the current month
func (s *statisticsService) GetIncomeStatistics(ctx context.Context) (*models.IncomeStatistics, error) {
	started := s.clock()

	periods := PeriodsFor(started)
	if err := periods.Validate(); err != nil {
		return nil, err
	}

	var (
		currentTotal, lastTotal, yearTotal models.TypeTotal
		categoryRows                       []models.CategoryTotal
		lookup                             func(int64) (string, bool)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		currentTotal, err = s.txAggregates.SumAndCountByType(gctx, models.TransactionTypeIncome, periods.CurrentMonth)
		return err
	})
	g.Go(func() error {
		var err error
		lastTotal, err = s.txAggregates.SumAndCountByType(gctx, models.TransactionTypeIncome, periods.LastMonth)
		return err
	})
	g.Go(func() error {
		var err error
		yearTotal, err = s.txAggregates.SumAndCountByType(gctx, models.TransactionTypeIncome, periods.CurrentYear)
		return err
	})
	g.Go(func() error {
		var err error
		categoryRows, err = s.txAggregates.SumByCategory(gctx, models.TransactionTypeIncome, periods.CurrentMonth)
		return err
	})
	g.Go(func() error {
		var err error
		lookup, err = s.categoryLookup()
		return err
	})

	if err := g.Wait(); err != nil {
		s.recordAggregation(AggregationIncome, started, err)
		return nil, fmt.Errorf("failed to aggregate income statistics: %w", err)
	}

	current := amountOf(currentTotal.TotalAmount)
	last := amountOf(lastTotal.TotalAmount)

	stats := &models.IncomeStatistics{
		CurrentMonth:      current.InexactFloat64(),
		LastMonth:         last.InexactFloat64(),
		CurrentYear:       amountOf(yearTotal.TotalAmount).InexactFloat64(),
		MonthOverMonth:    MonthOverMonthChange(current, last),
		CategoryBreakdown: BuildCategoryBreakdown(categoryRows, current, lookup),
	}

	s.recordAggregation(AggregationIncome, started, nil)
	slog.Info("income statistics generated",
		"period", periods.CurrentMonth.String(),
		"month_over_month", stats.MonthOverMonth,
		"categories", len(stats.CategoryBreakdown))

	return stats, nil
}

// GetTransactionStats summarizes all current-month activity across both
// transaction types
func (s *statisticsService) GetTransactionStats(ctx context.Context) (*models.TransactionStats, error) {
	started := s.clock()

	periods := PeriodsFor(started)
	if err := periods.Validate(); err != nil {
		return nil, err
	}

	var (
		incomeTotal, expenseTotal models.TypeTotal
		categoryRows              []models.CategoryTotal
		lookup                    func(int64) (string, bool)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomeTotal, err = s.txAggregates.SumAndCountByType(gctx, models.TransactionTypeIncome, periods.CurrentMonth)
		return err
	})
	g.Go(func() error {
		var err error
		expenseTotal, err = s.txAggregates.SumAndCountByType(gctx, models.TransactionTypeExpense, periods.CurrentMonth)
		return err
	})
	g.Go(func() error {
		var err error
		categoryRows, err = s.txAggregates.SumByCategory(gctx, "", periods.CurrentMonth)
		return err
	})
	g.Go(func() error {
		var err error
		lookup, err = s.categoryLookup()
		return err
	})

	if err := g.Wait(); err != nil {
		s.recordAggregation(AggregationTransactions, started, err)
		return nil, fmt.Errorf("failed to aggregate transaction stats: %w", err)
	}

	income := amountOf(incomeTotal.TotalAmount)
	expense := amountOf(expenseTotal.TotalAmount)
	count := incomeTotal.Count + expenseTotal.Count

	avg := decimal.Zero
	if count > 0 {
		avg = income.Add(expense).Div(decimal.NewFromInt(count))
	}

	stats := &models.TransactionStats{
		TotalIncome:       income.InexactFloat64(),
		TotalExpense:      expense.InexactFloat64(),
		NetAmount:         income.Sub(expense).InexactFloat64(),
		TransactionCount:  count,
		AvgTransaction:    avg.Round(2).InexactFloat64(),
		CategoryBreakdown: BuildCategoryBreakdown(categoryRows, income.Add(expense), lookup),
	}

	s.recordAggregation(AggregationTransactions, started, nil)
	slog.Info("transaction stats generated",
		"period", periods.CurrentMonth.String(),
		"transaction_count", stats.TransactionCount)

	return stats, nil
}

// categoryLookup builds the id-to-name resolver used for breakdown entries
func (s *statisticsService) categoryLookup() (func(int64) (string, bool), error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		slog.Error("failed to fetch categories for breakdown", "error", err)
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	names := make(map[int64]string, len(categories))
	for i := range categories {
		names[categories[i].ID] = categories[i].Name
	}

	return func(id int64) (string, bool) {
		name, ok := names[id]
		return name, ok
	}, nil
}

func (s *statisticsService) recordAggregation(kind string, started time.Time, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordAggregation(kind, s.clock().Sub(started), err)
}

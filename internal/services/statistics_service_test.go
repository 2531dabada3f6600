package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// StatisticsServiceTestSuite defines the test suite for the statistics service
type StatisticsServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockAggregates   *repository_mocks.MockTransactionAggregateInterface
	mockCategoryRepo *repository_mocks.MockCategoryRepositoryInterface
	service          StatisticsServiceInterface
	now              time.Time
	periods          CalendarPeriods
}

// SetupTest runs before each test
func (s *StatisticsServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAggregates = repository_mocks.NewMockTransactionAggregateInterface(s.ctrl)
	s.mockCategoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.now = time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)
	s.periods = PeriodsFor(s.now)
	s.service = NewStatisticsService(s.mockAggregates, s.mockCategoryRepo, NoopMetrics{}, func() time.Time {
		return s.now
	})
}

// TearDownTest runs after each test
func (s *StatisticsServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestStatisticsServiceSuite runs the test suite
func TestStatisticsServiceSuite(t *testing.T) {
	suite.Run(t, new(StatisticsServiceTestSuite))
}

func typeTotal(amount float64, count int64) models.TypeTotal {
	return models.TypeTotal{
		TotalAmount: decimal.NullDecimal{Decimal: decimal.NewFromFloat(amount), Valid: true},
		Count:       count,
	}
}

// emptyTotal is what the store returns when no rows matched: a NULL sum
func emptyTotal() models.TypeTotal {
	return models.TypeTotal{}
}

func (s *StatisticsServiceTestSuite) TestGetBalanceSummary_Success() {
	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeIncome, s.periods.CurrentMonth).
		Return(typeTotal(50000, 2), nil)
	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeExpense, s.periods.CurrentMonth).
		Return(typeTotal(30000, 5), nil)

	summary, err := s.service.GetBalanceSummary(context.Background())

	s.NoError(err)
	s.NotNil(summary)
	s.Equal(50000.0, summary.Income)
	s.Equal(30000.0, summary.Expense)
	s.Equal(20000.0, summary.Balance)
	s.Equal(40.0, summary.SavingsRate)
	s.Equal(models.TrendPositive, summary.Trend)
	s.Equal(s.periods.CurrentMonth, summary.Period)
}

func (s *StatisticsServiceTestSuite) TestGetBalanceSummary_NoTransactions() {
	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeIncome, s.periods.CurrentMonth).
		Return(emptyTotal(), nil)
	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeExpense, s.periods.CurrentMonth).
		Return(emptyTotal(), nil)

	summary, err := s.service.GetBalanceSummary(context.Background())

	s.NoError(err)
	s.Equal(0.0, summary.Income)
	s.Equal(0.0, summary.Expense)
	s.Equal(0.0, summary.Balance)
	s.Equal(0.0, summary.SavingsRate)
	s.Equal(models.TrendNeutral, summary.Trend)
}

func (s *StatisticsServiceTestSuite) TestGetBalanceSummary_NegativeTrend() {
	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeIncome, s.periods.CurrentMonth).
		Return(typeTotal(10000, 1), nil)
	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeExpense, s.periods.CurrentMonth).
		Return(typeTotal(15000, 4), nil)

	summary, err := s.service.GetBalanceSummary(context.Background())

	s.NoError(err)
	s.Equal(-5000.0, summary.Balance)
	s.Equal(-50.0, summary.SavingsRate)
	s.Equal(models.TrendNegative, summary.Trend)
}

func (s *StatisticsServiceTestSuite) TestGetBalanceSummary_QueryFailure() {
	queryErr := errors.New("connection reset")

	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeIncome, s.periods.CurrentMonth).
		Return(emptyTotal(), queryErr)
	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeExpense, s.periods.CurrentMonth).
		Return(emptyTotal(), nil).
		AnyTimes()

	summary, err := s.service.GetBalanceSummary(context.Background())

	s.Error(err)
	s.Nil(summary)
	s.ErrorIs(err, queryErr)
	s.Contains(err.Error(), "failed to aggregate balance summary")
}

func (s *StatisticsServiceTestSuite) TestGetIncomeStatistics_Success() {
	salaryID, freelanceID := int64(1), int64(2)

	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeIncome, s.periods.CurrentMonth).
		Return(typeTotal(50000, 2), nil)
	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeIncome, s.periods.LastMonth).
		Return(typeTotal(40000, 2), nil)
	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeIncome, s.periods.CurrentYear).
		Return(typeTotal(260000, 12), nil)
	s.mockAggregates.EXPECT().
		SumByCategory(gomock.Any(), models.TransactionTypeIncome, s.periods.CurrentMonth).
		Return([]models.CategoryTotal{
			{CategoryID: &salaryID, TotalAmount: decimal.NullDecimal{Decimal: decimal.NewFromInt(30000), Valid: true}},
			{CategoryID: &freelanceID, TotalAmount: decimal.NullDecimal{Decimal: decimal.NewFromInt(20000), Valid: true}},
		}, nil)
	s.mockCategoryRepo.EXPECT().
		GetAll().
		Return([]models.Category{
			{ID: salaryID, Name: "Salary"},
			{ID: freelanceID, Name: "Freelance"},
		}, nil)

	stats, err := s.service.GetIncomeStatistics(context.Background())

	s.NoError(err)
	s.NotNil(stats)
	s.Equal(50000.0, stats.CurrentMonth)
	s.Equal(40000.0, stats.LastMonth)
	s.Equal(260000.0, stats.CurrentYear)
	s.Equal(25.0, stats.MonthOverMonth)
	s.Require().Len(stats.CategoryBreakdown, 2)
	s.Equal("Salary", stats.CategoryBreakdown[0].Name)
	s.Equal(60.0, stats.CategoryBreakdown[0].Percentage)
	s.Equal("Freelance", stats.CategoryBreakdown[1].Name)
	s.Equal(40.0, stats.CategoryBreakdown[1].Percentage)
}

func (s *StatisticsServiceTestSuite) TestGetIncomeStatistics_FirstMonthOfData() {
	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeIncome, s.periods.CurrentMonth).
		Return(typeTotal(50000, 1), nil)
	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeIncome, s.periods.LastMonth).
		Return(emptyTotal(), nil)
	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeIncome, s.periods.CurrentYear).
		Return(typeTotal(50000, 1), nil)
	s.mockAggregates.EXPECT().
		SumByCategory(gomock.Any(), models.TransactionTypeIncome, s.periods.CurrentMonth).
		Return([]models.CategoryTotal{}, nil)
	s.mockCategoryRepo.EXPECT().
		GetAll().
		Return([]models.Category{}, nil)

	stats, err := s.service.GetIncomeStatistics(context.Background())

	s.NoError(err)
	s.Equal(0.0, stats.LastMonth)
	s.Equal(0.0, stats.MonthOverMonth)
	s.Empty(stats.CategoryBreakdown)
}

func (s *StatisticsServiceTestSuite) TestGetIncomeStatistics_CategoryLookupFailure() {
	repoErr := errors.New("categories table locked")

	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeIncome, gomock.Any()).
		Return(emptyTotal(), nil).
		AnyTimes()
	s.mockAggregates.EXPECT().
		SumByCategory(gomock.Any(), models.TransactionTypeIncome, gomock.Any()).
		Return(nil, nil).
		AnyTimes()
	s.mockCategoryRepo.EXPECT().
		GetAll().
		Return(nil, repoErr)

	stats, err := s.service.GetIncomeStatistics(context.Background())

	s.Error(err)
	s.Nil(stats)
	s.ErrorIs(err, repoErr)
}

func (s *StatisticsServiceTestSuite) TestGetTransactionStats_Success() {
	rentID := int64(3)

	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeIncome, s.periods.CurrentMonth).
		Return(typeTotal(50000, 2), nil)
	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeExpense, s.periods.CurrentMonth).
		Return(typeTotal(30000, 6), nil)
	s.mockAggregates.EXPECT().
		SumByCategory(gomock.Any(), "", s.periods.CurrentMonth).
		Return([]models.CategoryTotal{
			{CategoryID: &rentID, TotalAmount: decimal.NullDecimal{Decimal: decimal.NewFromInt(80000), Valid: true}},
		}, nil)
	s.mockCategoryRepo.EXPECT().
		GetAll().
		Return([]models.Category{{ID: rentID, Name: "Rent"}}, nil)

	stats, err := s.service.GetTransactionStats(context.Background())

	s.NoError(err)
	s.NotNil(stats)
	s.Equal(50000.0, stats.TotalIncome)
	s.Equal(30000.0, stats.TotalExpense)
	s.Equal(20000.0, stats.NetAmount)
	s.Equal(int64(8), stats.TransactionCount)
	s.Equal(10000.0, stats.AvgTransaction)
	s.Require().Len(stats.CategoryBreakdown, 1)
	s.Equal("Rent", stats.CategoryBreakdown[0].Name)
	s.Equal(100.0, stats.CategoryBreakdown[0].Percentage)
}

func (s *StatisticsServiceTestSuite) TestGetTransactionStats_NoTransactions() {
	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeIncome, s.periods.CurrentMonth).
		Return(emptyTotal(), nil)
	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeExpense, s.periods.CurrentMonth).
		Return(emptyTotal(), nil)
	s.mockAggregates.EXPECT().
		SumByCategory(gomock.Any(), "", s.periods.CurrentMonth).
		Return([]models.CategoryTotal{}, nil)
	s.mockCategoryRepo.EXPECT().
		GetAll().
		Return([]models.Category{}, nil)

	stats, err := s.service.GetTransactionStats(context.Background())

	s.NoError(err)
	s.Equal(int64(0), stats.TransactionCount)
	s.Equal(0.0, stats.AvgTransaction)
	s.Equal(0.0, stats.NetAmount)
	s.Empty(stats.CategoryBreakdown)
}

func (s *StatisticsServiceTestSuite) TestGetTransactionStats_AverageRounding() {
	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeIncome, s.periods.CurrentMonth).
		Return(typeTotal(100, 1), nil)
	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeExpense, s.periods.CurrentMonth).
		Return(typeTotal(0.01, 2), nil)
	s.mockAggregates.EXPECT().
		SumByCategory(gomock.Any(), "", s.periods.CurrentMonth).
		Return([]models.CategoryTotal{}, nil)
	s.mockCategoryRepo.EXPECT().
		GetAll().
		Return([]models.Category{}, nil)

	stats, err := s.service.GetTransactionStats(context.Background())

	s.NoError(err)
	// (100 + 0.01) / 3 = 33.336... rounds to 33.34
	s.Equal(33.34, stats.AvgTransaction)
}

func (s *StatisticsServiceTestSuite) TestGetTransactionStats_QueryFailure() {
	queryErr := errors.New("timeout")

	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(emptyTotal(), nil).
		AnyTimes()
	s.mockAggregates.EXPECT().
		SumByCategory(gomock.Any(), "", s.periods.CurrentMonth).
		Return(nil, queryErr)
	s.mockCategoryRepo.EXPECT().
		GetAll().
		Return([]models.Category{}, nil).
		AnyTimes()

	stats, err := s.service.GetTransactionStats(context.Background())

	s.Error(err)
	s.Nil(stats)
	s.ErrorIs(err, queryErr)
}

func (s *StatisticsServiceTestSuite) TestClockPinsPeriods() {
	january := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	service := NewStatisticsService(s.mockAggregates, s.mockCategoryRepo, NoopMetrics{}, func() time.Time {
		return january
	})
	expected := PeriodsFor(january)

	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeIncome, expected.CurrentMonth).
		Return(emptyTotal(), nil)
	s.mockAggregates.EXPECT().
		SumAndCountByType(gomock.Any(), models.TransactionTypeExpense, expected.CurrentMonth).
		Return(emptyTotal(), nil)

	summary, err := service.GetBalanceSummary(context.Background())

	s.NoError(err)
	s.Equal(expected.CurrentMonth, summary.Period)
	// last month of a January reference is December of the prior year
	s.Equal(2023, expected.LastMonth.Start.Year())
	s.Equal(time.December, expected.LastMonth.Start.Month())
}

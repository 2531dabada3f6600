package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type StatisticsHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	echo        *echo.Echo
	mockService *service_mocks.MockStatisticsServiceInterface
	handler     *StatisticsHandler
}

func TestStatisticsHandlerSuite(t *testing.T) {
	suite.Run(t, new(StatisticsHandlerTestSuite))
}

func (s *StatisticsHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.mockService = service_mocks.NewMockStatisticsServiceInterface(s.ctrl)
	s.handler = NewStatisticsHandler(s.mockService)
}

func (s *StatisticsHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *StatisticsHandlerTestSuite) newContext(path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")
	return c, rec
}

// ========================================
// GET /api/v1/statistics/balance Tests
// ========================================

func (s *StatisticsHandlerTestSuite) TestGetBalanceSummary_Success() {
	c, rec := s.newContext("/api/v1/statistics/balance")

	summary := &models.BalanceSummary{
		Income:      50000,
		Expense:     30000,
		Balance:     20000,
		SavingsRate: 40.0,
		Trend:       models.TrendPositive,
		Period: models.Period{
			Start: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
		},
	}
	s.mockService.EXPECT().GetBalanceSummary(gomock.Any()).Return(summary, nil)

	err := s.handler.GetBalanceSummary(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data, ok := response.Data.(map[string]interface{})
	s.Require().True(ok)
	s.Equal(50000.0, data["income"])
	s.Equal(40.0, data["savings_rate"])
	s.Equal("positive", data["trend"])
}

func (s *StatisticsHandlerTestSuite) TestGetBalanceSummary_ServiceError() {
	c, rec := s.newContext("/api/v1/statistics/balance")

	s.mockService.EXPECT().
		GetBalanceSummary(gomock.Any()).
		Return(nil, errors.New("aggregation failed"))

	err := s.handler.GetBalanceSummary(c)

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal("test-trace-id", response.Error.TraceID)
	// internal failure details must not leak to the client
	s.NotContains(response.Error.Message, "aggregation failed")
}

// ========================================
// GET /api/v1/statistics/income Tests
// ========================================

func (s *StatisticsHandlerTestSuite) TestGetIncomeStatistics_Success() {
	c, rec := s.newContext("/api/v1/statistics/income")

	stats := &models.IncomeStatistics{
		CurrentMonth:   50000,
		LastMonth:      40000,
		CurrentYear:    260000,
		MonthOverMonth: 25.0,
		CategoryBreakdown: []models.CategoryBreakdownEntry{
			{CategoryID: 1, Name: "Salary", Amount: 30000, Percentage: 60.0},
			{CategoryID: 2, Name: "Freelance", Amount: 20000, Percentage: 40.0},
		},
	}
	s.mockService.EXPECT().GetIncomeStatistics(gomock.Any()).Return(stats, nil)

	err := s.handler.GetIncomeStatistics(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data, ok := response.Data.(map[string]interface{})
	s.Require().True(ok)
	s.Equal(25.0, data["month_over_month"])

	breakdown, ok := data["category_breakdown"].([]interface{})
	s.Require().True(ok)
	s.Len(breakdown, 2)
}

func (s *StatisticsHandlerTestSuite) TestGetIncomeStatistics_ServiceError() {
	c, rec := s.newContext("/api/v1/statistics/income")

	s.mockService.EXPECT().
		GetIncomeStatistics(gomock.Any()).
		Return(nil, errors.New("query timeout"))

	err := s.handler.GetIncomeStatistics(c)

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
}

// ========================================
// GET /api/v1/statistics/transactions Tests
// ========================================

func (s *StatisticsHandlerTestSuite) TestGetTransactionStats_Success() {
	c, rec := s.newContext("/api/v1/statistics/transactions")

	stats := &models.TransactionStats{
		TotalIncome:      50000,
		TotalExpense:     30000,
		NetAmount:        20000,
		TransactionCount: 8,
		AvgTransaction:   10000,
	}
	s.mockService.EXPECT().GetTransactionStats(gomock.Any()).Return(stats, nil)

	err := s.handler.GetTransactionStats(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data, ok := response.Data.(map[string]interface{})
	s.Require().True(ok)
	s.Equal(8.0, data["transaction_count"])
	s.Equal(10000.0, data["avg_transaction"])
}

func (s *StatisticsHandlerTestSuite) TestGetTransactionStats_ServiceError() {
	c, rec := s.newContext("/api/v1/statistics/transactions")

	s.mockService.EXPECT().
		GetTransactionStats(gomock.Any()).
		Return(nil, errors.New("connection lost"))

	err := s.handler.GetTransactionStats(c)

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("SYSTEM_001", response.Error.Code)
}

package services

import (
	"testing"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func nullAmount(value float64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(value), Valid: true}
}

func TestAmountOf(t *testing.T) {
	assert.True(t, amountOf(decimal.NullDecimal{}).IsZero())
	assert.True(t, amountOf(nullAmount(42.5)).Equal(decimal.NewFromFloat(42.5)))
}

func TestMonthOverMonthChange(t *testing.T) {
	testCases := []struct {
		name     string
		current  float64
		previous float64
		expected float64
	}{
		{"increase", 50000, 40000, 25.0},
		{"decrease", 30000, 40000, -25.0},
		{"unchanged", 40000, 40000, 0},
		{"zero previous month", 50000, 0, 0},
		{"both zero", 0, 0, 0},
		{"dropped to zero", 0, 40000, -100.0},
		{"rounded to one decimal", 10001, 30000, -66.7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			change := MonthOverMonthChange(
				decimal.NewFromFloat(tc.current),
				decimal.NewFromFloat(tc.previous),
			)
			assert.Equal(t, tc.expected, change)
		})
	}
}

func TestSavingsRate(t *testing.T) {
	testCases := []struct {
		name     string
		balance  float64
		income   float64
		expected float64
	}{
		{"positive balance", 10000, 50000, 20.0},
		{"negative balance", -5000, 50000, -10.0},
		{"zero income", 10000, 0, 0},
		{"negative income", 10000, -1, 0},
		{"rounded to one decimal", 10000, 30000, 33.3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rate := SavingsRate(
				decimal.NewFromFloat(tc.balance),
				decimal.NewFromFloat(tc.income),
			)
			assert.Equal(t, tc.expected, rate)
		})
	}
}

func TestClassifyTrend(t *testing.T) {
	assert.Equal(t, models.TrendPositive, ClassifyTrend(decimal.NewFromFloat(0.01)))
	assert.Equal(t, models.TrendNegative, ClassifyTrend(decimal.NewFromFloat(-0.01)))
	assert.Equal(t, models.TrendNeutral, ClassifyTrend(decimal.Zero))
}

func testLookup(names map[int64]string) func(int64) (string, bool) {
	return func(id int64) (string, bool) {
		name, ok := names[id]
		return name, ok
	}
}

func TestBuildCategoryBreakdown_SortsAndComputesPercentages(t *testing.T) {
	groceriesID, rentID := int64(1), int64(2)
	rows := []models.CategoryTotal{
		{CategoryID: &groceriesID, TotalAmount: nullAmount(12000)},
		{CategoryID: &rentID, TotalAmount: nullAmount(18000)},
	}
	lookup := testLookup(map[int64]string{groceriesID: "Groceries", rentID: "Rent"})

	entries := BuildCategoryBreakdown(rows, decimal.NewFromInt(30000), lookup)

	assert.Len(t, entries, 2)
	assert.Equal(t, "Rent", entries[0].Name)
	assert.Equal(t, 60.0, entries[0].Percentage)
	assert.Equal(t, "Groceries", entries[1].Name)
	assert.Equal(t, 40.0, entries[1].Percentage)
}

func TestBuildCategoryBreakdown_DropsNullRows(t *testing.T) {
	keptID := int64(7)
	rows := []models.CategoryTotal{
		{CategoryID: nil, TotalAmount: nullAmount(500)},
		{CategoryID: &keptID, TotalAmount: decimal.NullDecimal{}},
		{CategoryID: &keptID, TotalAmount: nullAmount(250)},
	}
	lookup := testLookup(map[int64]string{keptID: "Utilities"})

	entries := BuildCategoryBreakdown(rows, decimal.NewFromInt(250), lookup)

	assert.Len(t, entries, 1)
	assert.Equal(t, "Utilities", entries[0].Name)
	assert.Equal(t, 100.0, entries[0].Percentage)
}

func TestBuildCategoryBreakdown_ZeroTotalYieldsZeroPercentages(t *testing.T) {
	id := int64(3)
	rows := []models.CategoryTotal{
		{CategoryID: &id, TotalAmount: nullAmount(100)},
	}

	entries := BuildCategoryBreakdown(rows, decimal.Zero, testLookup(map[int64]string{id: "Travel"}))

	assert.Len(t, entries, 1)
	assert.Equal(t, 0.0, entries[0].Percentage)
	assert.Equal(t, 100.0, entries[0].Amount)
}

func TestBuildCategoryBreakdown_UnknownCategoryFallsBackToUncategorized(t *testing.T) {
	orphanID := int64(99)
	rows := []models.CategoryTotal{
		{CategoryID: &orphanID, TotalAmount: nullAmount(100)},
	}

	entries := BuildCategoryBreakdown(rows, decimal.NewFromInt(100), testLookup(nil))

	assert.Len(t, entries, 1)
	assert.Equal(t, models.UncategorizedName, entries[0].Name)
}

func TestBuildCategoryBreakdown_PercentagesSumToWhole(t *testing.T) {
	a, b, c := int64(1), int64(2), int64(3)
	rows := []models.CategoryTotal{
		{CategoryID: &a, TotalAmount: nullAmount(100)},
		{CategoryID: &b, TotalAmount: nullAmount(100)},
		{CategoryID: &c, TotalAmount: nullAmount(100)},
	}
	lookup := testLookup(map[int64]string{a: "A", b: "B", c: "C"})

	entries := BuildCategoryBreakdown(rows, decimal.NewFromInt(300), lookup)

	sum := 0.0
	for _, entry := range entries {
		sum += entry.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.1)
}

func TestBuildCategoryBreakdown_EmptyInput(t *testing.T) {
	entries := BuildCategoryBreakdown(nil, decimal.Zero, testLookup(nil))

	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

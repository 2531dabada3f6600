package services

import (
	"sort"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Pure ratio and classification math applied to raw aggregates. Every
// function here guards its zero denominator explicitly: a degenerate ratio
// is a normal input, never an error, and never produces Inf or NaN.

// ratioPrecision is the number of decimal places exposed for percentages.
// decimal.Round rounds half away from zero.
const ratioPrecision = 1

// amountOf normalizes a nullable aggregate sum to a concrete amount.
// A SUM over zero rows arrives as an invalid NullDecimal and means zero.
func amountOf(total decimal.NullDecimal) decimal.Decimal {
	if !total.Valid {
		return decimal.Zero
	}
	return total.Decimal
}

// MonthOverMonthChange returns the percentage change from previous to
// current, rounded to one decimal. A zero previous month yields 0 so a
// household's first month of data never reports an infinite change.
func MonthOverMonthChange(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	change := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100))
	return change.Round(ratioPrecision).InexactFloat64()
}

// SavingsRate returns the balance as a percentage of income, rounded to one
// decimal. Zero or negative income yields 0.
func SavingsRate(balance, income decimal.Decimal) float64 {
	if income.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	rate := balance.Div(income).Mul(decimal.NewFromInt(100))
	return rate.Round(ratioPrecision).InexactFloat64()
}

// ClassifyTrend labels a balance by exact comparison against zero
func ClassifyTrend(balance decimal.Decimal) string {
	switch balance.Sign() {
	case 1:
		return models.TrendPositive
	case -1:
		return models.TrendNegative
	default:
		return models.TrendNeutral
	}
}

// BuildCategoryBreakdown turns raw per-category totals into display entries.
// Rows without a category link or without a total are dropped, percentages
// are computed against the supplied total (0 when the total is 0), and the
// result is sorted descending by amount with ties keeping query order.
func BuildCategoryBreakdown(rows []models.CategoryTotal, total decimal.Decimal, lookup func(int64) (string, bool)) []models.CategoryBreakdownEntry {
	entries := make([]models.CategoryBreakdownEntry, 0, len(rows))

	for _, row := range rows {
		if row.CategoryID == nil || !row.TotalAmount.Valid {
			continue
		}

		name, ok := lookup(*row.CategoryID)
		if !ok {
			name = models.UncategorizedName
		}

		amount := row.TotalAmount.Decimal
		percentage := float64(0)
		if !total.IsZero() {
			percentage = amount.Div(total).Mul(decimal.NewFromInt(100)).
				Round(ratioPrecision).InexactFloat64()
		}

		entries = append(entries, models.CategoryBreakdownEntry{
			CategoryID: *row.CategoryID,
			Name:       name,
			Amount:     amount.InexactFloat64(),
			Percentage: percentage,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Amount > entries[j].Amount
	})

	return entries
}

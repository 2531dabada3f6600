package models

import "github.com/shopspring/decimal"

// Trend classifies a balance figure against zero
const (
	TrendPositive = "positive"
	TrendNegative = "negative"
	TrendNeutral  = "neutral"
)

// TypeTotal is the raw aggregate returned by the store for one transaction
// type within one period. TotalAmount is invalid (NULL) when no rows matched;
// consumers must treat that as zero.
type TypeTotal struct {
	TotalAmount decimal.NullDecimal `json:"total_amount"`
	Count       int64               `json:"count"`
}

// CategoryTotal is one row of a per-category raw aggregate. CategoryID is nil
// for transactions that were never linked to a category; such rows are
// filtered out of breakdowns.
type CategoryTotal struct {
	CategoryID  *int64              `json:"category_id"`
	TotalAmount decimal.NullDecimal `json:"total_amount"`
}

// CategoryBreakdownEntry is the per-category share of a total, sorted
// descending by amount in every breakdown
type CategoryBreakdownEntry struct {
	CategoryID int64   `json:"category_id"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// BalanceSummary is the current-month financial position
type BalanceSummary struct {
	Income      float64 `json:"income"`
	Expense     float64 `json:"expense"`
	Balance     float64 `json:"balance"`
	SavingsRate float64 `json:"savings_rate"`
	Trend       string  `json:"trend"`
	Period      Period  `json:"period"`
}

// IncomeStatistics compares income across calendar periods
type IncomeStatistics struct {
	CurrentMonth      float64                  `json:"current_month"`
	LastMonth         float64                  `json:"last_month"`
	CurrentYear       float64                  `json:"current_year"`
	MonthOverMonth    float64                  `json:"month_over_month"`
	CategoryBreakdown []CategoryBreakdownEntry `json:"category_breakdown"`
}

// TransactionStats summarizes all current-month activity regardless of type
type TransactionStats struct {
	TotalIncome       float64                  `json:"total_income"`
	TotalExpense      float64                  `json:"total_expense"`
	NetAmount         float64                  `json:"net_amount"`
	TransactionCount  int64                    `json:"transaction_count"`
	AvgTransaction    float64                  `json:"avg_transaction"`
	CategoryBreakdown []CategoryBreakdownEntry `json:"category_breakdown"`
}

package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
)

// Transaction represents a single income or expense entry in the household ledger
type Transaction struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Type        string          `gorm:"type:varchar(10);not null;index" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CategoryID  *int64          `gorm:"index" json:"category_id,omitempty"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// IsValidTransactionType checks whether the given type is one of the known kinds
func IsValidTransactionType(txType string) bool {
	return txType == TransactionTypeIncome || txType == TransactionTypeExpense
}

// Validate checks the transaction invariants before persistence
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// TransactionFilters captures the optional criteria for listing transactions
type TransactionFilters struct {
	Type       string
	CategoryID *int64
	StartDate  *time.Time
	EndDate    *time.Time
	Offset     int
	Limit      int
}

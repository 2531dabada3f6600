package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidBillingDay = errors.New("billing day must be between 1 and 28")
)

// Subscription is a recurring entry (rent, streaming services, salary) that is
// posted to the ledger once per month on its billing day
type Subscription struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string          `gorm:"type:varchar(100);not null" json:"name"`
	Type       string          `gorm:"type:varchar(10);not null;default:'expense'" json:"type"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CategoryID *int64          `gorm:"index" json:"category_id,omitempty"`
	BillingDay int             `gorm:"not null" json:"billing_day"`
	Active     bool            `gorm:"not null;default:true;index" json:"active"`
	LastPosted *time.Time      `json:"last_posted,omitempty"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// Validate checks the subscription invariants before persistence.
// Billing days above 28 are rejected so every month has the billing day.
func (s *Subscription) Validate() error {
	if !IsValidTransactionType(s.Type) {
		return ErrInvalidTransactionType
	}
	if !s.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if s.BillingDay < 1 || s.BillingDay > 28 {
		return ErrInvalidBillingDay
	}
	return nil
}

// IsDueOn reports whether the subscription should be posted on the given day.
// A subscription is due when its billing day has been reached in the current
// month and it has not been posted during that month yet.
func (s *Subscription) IsDueOn(day time.Time) bool {
	if !s.Active || day.Day() < s.BillingDay {
		return false
	}
	if s.LastPosted == nil {
		return true
	}
	return s.LastPosted.Year() != day.Year() || s.LastPosted.Month() != day.Month()
}

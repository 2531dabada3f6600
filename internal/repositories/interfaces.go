package repositories

import (
	"context"
	"time"

	"fintrack/internal/models"
)

// TransactionAggregateInterface is the query port the statistics engine uses
// to fetch grouped sums from the transaction store. Implementations must
// return NULL-tolerant aggregates: a sum over zero rows surfaces as an
// invalid NullDecimal, never as an error.
type TransactionAggregateInterface interface {
	// SumAndCountByType returns the total amount and row count for one
	// transaction type within the period. An empty txType matches all types.
	SumAndCountByType(ctx context.Context, txType string, period models.Period) (models.TypeTotal, error)

	// SumByCategory returns per-category totals for one transaction type
	// within the period. An empty txType matches all types. Rows whose
	// transactions carry no category are returned with a nil CategoryID.
	SumByCategory(ctx context.Context, txType string, period models.Period) ([]models.CategoryTotal, error)
}

// TransactionRepositoryInterface defines transaction persistence operations
type TransactionRepositoryInterface interface {
	TransactionAggregateInterface

	Create(transaction *models.Transaction) error
	GetByID(id int64) (*models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	Update(transaction *models.Transaction) error
	Delete(id int64) error
}

// CategoryRepositoryInterface defines category persistence operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id int64) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	GetAll() ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id int64) error
	CountTransactions(id int64) (int64, error)
}

// SubscriptionRepositoryInterface defines subscription persistence operations
type SubscriptionRepositoryInterface interface {
	Create(subscription *models.Subscription) error
	GetByID(id int64) (*models.Subscription, error)
	GetAll() ([]models.Subscription, error)
	GetActive() ([]models.Subscription, error)
	Update(subscription *models.Subscription) error
	Delete(id int64) error
	// PostEntry inserts the ledger transaction and stamps the
	// subscription's last_posted in a single database transaction, so a
	// failed stamp never leaves an orphaned ledger entry behind.
	PostEntry(transaction *models.Transaction, subscriptionID int64, postedAt time.Time) error
}

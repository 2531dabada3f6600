package repositories

import (
	"context"
	"errors"
	"fmt"

	"fintrack/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id int64) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetWithFilters retrieves transactions with multiple filters
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{})

	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.StartDate != nil {
		query = query.Where("date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", *filters.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	if err := query.Offset(filters.Offset).Limit(filters.Limit).
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// Update saves changes to an existing transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	result := r.db.Model(&models.Transaction{}).
		Where("id = ?", transaction.ID).
		Updates(map[string]interface{}{
			"type":        transaction.Type,
			"amount":      transaction.Amount,
			"category_id": transaction.CategoryID,
			"description": transaction.Description,
			"date":        transaction.Date,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction
func (r *transactionRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Transaction{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// SumAndCountByType calculates the aggregate total and count for a type
// within a period. SUM over zero rows yields NULL; the NullDecimal carries
// that through so callers normalize it, rather than this layer guessing.
func (r *transactionRepository) SumAndCountByType(ctx context.Context, txType string, period models.Period) (models.TypeTotal, error) {
	var result models.TypeTotal

	query := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("SUM(amount) as total_amount, COUNT(*) as count").
		Where("date BETWEEN ? AND ?", period.Start, period.End)

	if txType != "" {
		query = query.Where("type = ?", txType)
	}

	if err := query.Scan(&result).Error; err != nil {
		return models.TypeTotal{}, fmt.Errorf("failed to sum transactions by type: %w", err)
	}

	return result, nil
}

// SumByCategory calculates per-category totals for a type within a period
func (r *transactionRepository) SumByCategory(ctx context.Context, txType string, period models.Period) ([]models.CategoryTotal, error) {
	var totals []models.CategoryTotal

	query := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("category_id, SUM(amount) as total_amount").
		Where("date BETWEEN ? AND ?", period.Start, period.End)

	if txType != "" {
		query = query.Where("type = ?", txType)
	}

	if err := query.Group("category_id").
		Order("total_amount DESC").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to sum transactions by category: %w", err)
	}

	return totals, nil
}

package repositories

import (
	"errors"
	"fmt"
	"time"

	"fintrack/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// subscriptionRepository implements SubscriptionRepositoryInterface
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepositoryInterface {
	return &subscriptionRepository{
		db: db,
	}
}

// Create creates a new subscription
func (r *subscriptionRepository) Create(subscription *models.Subscription) error {
	if err := r.db.Create(subscription).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

// GetByID retrieves a subscription by ID
func (r *subscriptionRepository) GetByID(id int64) (*models.Subscription, error) {
	var subscription models.Subscription
	if err := r.db.First(&subscription, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return &subscription, nil
}

// GetAll retrieves all subscriptions ordered by billing day
func (r *subscriptionRepository) GetAll() ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	if err := r.db.Order("billing_day ASC, name ASC").Find(&subscriptions).Error; err != nil {
		return nil, fmt.Errorf("failed to get subscriptions: %w", err)
	}
	return subscriptions, nil
}

// GetActive retrieves all active subscriptions
func (r *subscriptionRepository) GetActive() ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	if err := r.db.Where("active = ?", true).
		Order("billing_day ASC, name ASC").
		Find(&subscriptions).Error; err != nil {
		return nil, fmt.Errorf("failed to get active subscriptions: %w", err)
	}
	return subscriptions, nil
}

// Update saves changes to an existing subscription
func (r *subscriptionRepository) Update(subscription *models.Subscription) error {
	result := r.db.Model(&models.Subscription{}).
		Where("id = ?", subscription.ID).
		Updates(map[string]interface{}{
			"name":        subscription.Name,
			"type":        subscription.Type,
			"amount":      subscription.Amount,
			"category_id": subscription.CategoryID,
			"billing_day": subscription.BillingDay,
			"active":      subscription.Active,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

// Delete removes a subscription
func (r *subscriptionRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Subscription{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

// PostEntry writes the ledger transaction and the subscription's last_posted
// stamp atomically. Either both land or neither does, so retrying a failed
// posting run never duplicates the ledger entry.
func (r *subscriptionRepository) PostEntry(transaction *models.Transaction, subscriptionID int64, postedAt time.Time) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}

		result := tx.Model(&models.Subscription{}).
			Where("id = ?", subscriptionID).
			Update("last_posted", postedAt)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSubscriptionNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSubscriptionNotFound) {
			return ErrSubscriptionNotFound
		}
		return fmt.Errorf("failed to post subscription entry: %w", err)
	}
	return nil
}

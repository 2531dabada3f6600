package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/shopspring/decimal"
)

type subscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepositoryInterface
	metrics          MetricsRecorderInterface
}

// NewSubscriptionService creates the recurring-entry service
func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepositoryInterface,
	metrics MetricsRecorderInterface,
) SubscriptionServiceInterface {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		metrics:          metrics,
	}
}

// PostDue turns every due subscription into a ledger transaction dated on
// its billing day of the current month. Returns the number posted. A failure
// on one subscription stops the run so the next invocation retries it; each
// posting is atomic, so a retried run never writes the same entry twice.
func (s *subscriptionService) PostDue(ctx context.Context, now time.Time) (int, error) {
	subscriptions, err := s.subscriptionRepo.GetActive()
	if err != nil {
		return 0, fmt.Errorf("failed to fetch active subscriptions: %w", err)
	}

	posted := 0
	for i := range subscriptions {
		if err := ctx.Err(); err != nil {
			return posted, err
		}

		sub := &subscriptions[i]
		if !sub.IsDueOn(now) {
			continue
		}

		transaction := &models.Transaction{
			Type:        sub.Type,
			Amount:      sub.Amount,
			CategoryID:  sub.CategoryID,
			Description: sub.Name,
			Date:        time.Date(now.Year(), now.Month(), sub.BillingDay, 0, 0, 0, 0, now.Location()),
		}

		if err := s.subscriptionRepo.PostEntry(transaction, sub.ID, now); err != nil {
			slog.Error("failed to post subscription",
				"subscription_id", sub.ID,
				"name", sub.Name,
				"error", err)
			return posted, fmt.Errorf("failed to post subscription %d: %w", sub.ID, err)
		}

		posted++
		if s.metrics != nil {
			s.metrics.RecordSubscriptionPosted()
		}
	}

	if posted > 0 {
		slog.Info("due subscriptions posted",
			"posted", posted,
			"date", now.Format("2006-01-02"))
	}

	return posted, nil
}

// MonthlyRecurringAmount sums active subscriptions of the given type,
// giving the fixed monthly income or expense commitment
func (s *subscriptionService) MonthlyRecurringAmount(txType string) (float64, error) {
	subscriptions, err := s.subscriptionRepo.GetActive()
	if err != nil {
		return 0, fmt.Errorf("failed to fetch active subscriptions: %w", err)
	}

	total := decimal.Zero
	for i := range subscriptions {
		if subscriptions[i].Type == txType {
			total = total.Add(subscriptions[i].Amount)
		}
	}

	return total.InexactFloat64(), nil
}

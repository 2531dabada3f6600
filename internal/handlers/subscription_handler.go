package handlers

import (
	"net/http"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// SubscriptionHandler handles recurring-entry HTTP requests
type SubscriptionHandler struct {
	subscriptionRepo    repositories.SubscriptionRepositoryInterface
	subscriptionService services.SubscriptionServiceInterface
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(
	subscriptionRepo repositories.SubscriptionRepositoryInterface,
	subscriptionService services.SubscriptionServiceInterface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionRepo:    subscriptionRepo,
		subscriptionService: subscriptionService,
	}
}

// ListSubscriptions returns all subscriptions
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	subscriptions, err := h.subscriptionRepo.GetAll()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: subscriptions})
}

// GetSubscription retrieves a single subscription by ID
func (h *SubscriptionHandler) GetSubscription(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.SubscriptionInvalidID)
	}

	subscription, err := h.subscriptionRepo.GetByID(id)
	if err != nil {
		if err == repositories.ErrSubscriptionNotFound {
			return SendError(c, errors.SubscriptionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: subscription})
}

// CreateSubscription registers a new recurring entry
func (h *SubscriptionHandler) CreateSubscription(c echo.Context) error {
	var req dto.CreateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return SendError(c, errors.TransactionInvalidAmount)
	}

	subscription := &models.Subscription{
		Name:       req.Name,
		Type:       req.Type,
		Amount:     amount,
		CategoryID: req.CategoryID,
		BillingDay: req.BillingDay,
		Active:     true,
	}

	if err := subscription.Validate(); err != nil {
		if err == models.ErrInvalidBillingDay {
			return SendError(c, errors.SubscriptionInvalidBillingDay)
		}
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if err := h.subscriptionRepo.Create(subscription); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    subscription,
		Message: "Subscription created",
	})
}

// UpdateSubscription edits a recurring entry
func (h *SubscriptionHandler) UpdateSubscription(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.SubscriptionInvalidID)
	}

	var req dto.UpdateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return SendError(c, errors.TransactionInvalidAmount)
	}

	existing, err := h.subscriptionRepo.GetByID(id)
	if err != nil {
		if err == repositories.ErrSubscriptionNotFound {
			return SendError(c, errors.SubscriptionNotFound)
		}
		return SendSystemError(c, err)
	}

	active := existing.Active
	if req.Active != nil {
		active = *req.Active
	}

	subscription := &models.Subscription{
		ID:         id,
		Name:       req.Name,
		Type:       req.Type,
		Amount:     amount,
		CategoryID: req.CategoryID,
		BillingDay: req.BillingDay,
		Active:     active,
	}

	if err := subscription.Validate(); err != nil {
		if err == models.ErrInvalidBillingDay {
			return SendError(c, errors.SubscriptionInvalidBillingDay)
		}
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if err := h.subscriptionRepo.Update(subscription); err != nil {
		if err == repositories.ErrSubscriptionNotFound {
			return SendError(c, errors.SubscriptionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    subscription,
		Message: "Subscription updated",
	})
}

// DeleteSubscription removes a recurring entry
func (h *SubscriptionHandler) DeleteSubscription(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.SubscriptionInvalidID)
	}

	if err := h.subscriptionRepo.Delete(id); err != nil {
		if err == repositories.ErrSubscriptionNotFound {
			return SendError(c, errors.SubscriptionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// PostDueSubscriptions posts all due subscriptions to the ledger
func (h *SubscriptionHandler) PostDueSubscriptions(c echo.Context) error {
	posted, err := h.subscriptionService.PostDue(c.Request().Context(), time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Due subscriptions posted",
		Meta:    map[string]int{"posted": posted},
	})
}

package dto

// Subscription Request DTOs

// CreateSubscriptionRequest represents the request payload for creating a recurring entry
type CreateSubscriptionRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Type       string `json:"type" validate:"required,oneof=income expense"`
	Amount     string `json:"amount" validate:"required"`
	CategoryID *int64 `json:"category_id,omitempty"`
	BillingDay int    `json:"billing_day" validate:"required,min=1,max=28"`
}

// UpdateSubscriptionRequest represents the request payload for editing a recurring entry
type UpdateSubscriptionRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Type       string `json:"type" validate:"required,oneof=income expense"`
	Amount     string `json:"amount" validate:"required"`
	CategoryID *int64 `json:"category_id,omitempty"`
	BillingDay int    `json:"billing_day" validate:"required,min=1,max=28"`
	Active     *bool  `json:"active,omitempty"`
}

package dto

import "fintrack/internal/models"

// Transaction Request DTOs

// CreateTransactionRequest represents the request payload for recording a transaction
type CreateTransactionRequest struct {
	Type        string `json:"type" validate:"required,oneof=income expense"`
	Amount      string `json:"amount" validate:"required"`
	CategoryID  *int64 `json:"category_id,omitempty"`
	Description string `json:"description" validate:"max=255"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
}

// UpdateTransactionRequest represents the request payload for editing a transaction
type UpdateTransactionRequest struct {
	Type        string `json:"type" validate:"required,oneof=income expense"`
	Amount      string `json:"amount" validate:"required"`
	CategoryID  *int64 `json:"category_id,omitempty"`
	Description string `json:"description" validate:"max=255"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
}

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	Type       string `query:"type"`
	CategoryID *int64 `query:"category_id"`
	StartDate  string `query:"start_date"`
	EndDate    string `query:"end_date"`
	Offset     int    `query:"offset"`
	Limit      int    `query:"limit"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Pagination   PaginationInfo       `json:"pagination"`
}

package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// ListTransactions retrieves filtered, paginated transactions
// @Summary List transactions
// @Description Retrieve transactions filtered by type, category and date range
// @Tags Transactions
// @Produce json
// @Param type query string false "Filter by type" Enums(income, expense)
// @Param category_id query int false "Filter by category ID"
// @Param start_date query string false "Filter by start date (YYYY-MM-DD)"
// @Param end_date query string false "Filter by end date (YYYY-MM-DD)"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Number of results per page (max 100)" default(20)
// @Success 200 {object} dto.ListTransactionsResponse "Transactions with pagination"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var query dto.TransactionFilters
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if query.Type != "" && !models.IsValidTransactionType(query.Type) {
		return SendError(c, errors.TransactionInvalidType)
	}

	filters := models.TransactionFilters{
		Type:       query.Type,
		CategoryID: query.CategoryID,
		Offset:     query.Offset,
		Limit:      normalizeLimit(query.Limit),
	}

	if query.StartDate != "" {
		start, err := parseDate(query.StartDate)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("Invalid start_date"))
		}
		filters.StartDate = &start
	}
	if query.EndDate != "" {
		end, err := parseDate(query.EndDate)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("Invalid end_date"))
		}
		filters.EndDate = &end
	}

	transactions, total, err := h.transactionRepo.GetWithFilters(filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: transactions,
		Pagination: dto.PaginationInfo{
			Offset: filters.Offset,
			Limit:  filters.Limit,
			Total:  total,
		},
	})
}

// GetTransaction retrieves a single transaction by ID
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.TransactionInvalidID)
	}

	transaction, err := h.transactionRepo.GetByID(id)
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: transaction})
}

// CreateTransaction records a new ledger entry
// @Summary Create transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction payload"
// @Success 201 {object} SuccessResponse "Created transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, err := h.buildTransaction(c, req.Type, req.Amount, req.CategoryID, req.Description, req.Date)
	if err != nil || transaction == nil {
		return err
	}

	if err := h.transactionRepo.Create(transaction); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    transaction,
		Message: "Transaction recorded",
	})
}

// UpdateTransaction edits an existing ledger entry
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.TransactionInvalidID)
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, err := h.buildTransaction(c, req.Type, req.Amount, req.CategoryID, req.Description, req.Date)
	if err != nil || transaction == nil {
		return err
	}
	transaction.ID = id

	if err := h.transactionRepo.Update(transaction); err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    transaction,
		Message: "Transaction updated",
	})
}

// DeleteTransaction removes a ledger entry
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.TransactionInvalidID)
	}

	if err := h.transactionRepo.Delete(id); err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// buildTransaction validates and assembles a transaction from request fields.
// On validation failure it writes the error response and returns a nil
// transaction; the returned error is the response write result.
func (h *TransactionHandler) buildTransaction(c echo.Context, txType, amount string, categoryID *int64, description, date string) (*models.Transaction, error) {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil || !parsedAmount.IsPositive() {
		return nil, SendError(c, errors.TransactionInvalidAmount)
	}

	parsedDate, err := parseDate(date)
	if err != nil {
		return nil, SendError(c, errors.ValidationInvalidDate)
	}

	if categoryID != nil {
		if _, err := h.categoryRepo.GetByID(*categoryID); err != nil {
			if err == repositories.ErrCategoryNotFound {
				return nil, SendError(c, errors.CategoryNotFound)
			}
			return nil, SendSystemError(c, err)
		}
	}

	return &models.Transaction{
		Type:        txType,
		Amount:      parsedAmount,
		CategoryID:  categoryID,
		Description: description,
		Date:        parsedDate,
	}, nil
}

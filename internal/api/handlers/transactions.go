package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/middleware"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/response"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/service"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/validation"
)

// TransactionHandler handles HTTP requests for spending/income transactions.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the transactionService.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// ListTransactions handles GET requests to retrieve the authenticated user's
// transactions, optionally filtered by month.
//
// Endpoint: GET /api/transactions?month=YYYY-MM
// Response: 200 OK with array of model.Transaction
// Error: 400 Bad Request if the month parameter is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonth(r.URL.Query().Get("month"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid month, expected YYYY-MM", err.Error())
		return
	}

	transactions, err := h.transactionService.List(middleware.UserID(r), month)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, transactions)
}

// GetTransaction handles GET requests to retrieve a single transaction by ID.
//
// Endpoint: GET /api/transactions/{uuid}
// Response: 200 OK with model.Transaction
// Error: 400 Bad Request if transaction ID is invalid (validated by middleware)
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transaction, err := h.transactionService.Get(middleware.UserID(r), chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, transaction)
}

// CreateTransaction handles POST requests to record a new transaction.
// An empty category is assigned from the merchant name.
//
// Endpoint: POST /api/transactions
// Request Body: CreateTransactionRequest (date, merchant, amount, category, notes)
// Response: 201 Created with model.Transaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	amount, _ := decimal.NewFromString(req.Amount)

	transaction, err := h.transactionService.Create(model.Transaction{
		UserID:   middleware.UserID(r),
		Date:     date,
		Merchant: req.Merchant,
		Amount:   amount,
		Category: req.Category,
		Notes:    req.Notes,
	})
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create transaction", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusCreated, transaction)
}

// UpdateTransaction handles PUT requests to update an existing transaction.
// Only fields present in the body change; a merchant change with a cleared
// category re-derives the category.
//
// Endpoint: PUT /api/transactions/{uuid}
// Request Body: UpdateTransactionRequest (all fields optional)
// Response: 200 OK with model.Transaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if the update fails
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	userID := middleware.UserID(r)
	transaction, err := h.transactionService.Get(userID, chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	if req.Date != nil {
		transaction.Date, _ = time.Parse("2006-01-02", *req.Date)
	}
	if req.Merchant != nil {
		transaction.Merchant = *req.Merchant
	}
	if req.Amount != nil {
		transaction.Amount, _ = decimal.NewFromString(*req.Amount)
	}
	if req.Category != nil {
		transaction.Category = *req.Category
	}
	if req.Notes != nil {
		transaction.Notes = *req.Notes
	}

	updated, err := h.transactionService.Update(transaction)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to update transaction", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, updated)
}

// DeleteTransaction handles DELETE requests to remove a transaction.
//
// Endpoint: DELETE /api/transactions/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if the delete fails
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	err := h.transactionService.Delete(middleware.UserID(r), chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete transaction", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusNoContent, nil)
}

// MonthlySummary handles GET requests for the per-category rollup of one
// month's transactions. Defaults to the current month.
//
// Endpoint: GET /api/transactions/summary?month=YYYY-MM
// Response: 200 OK with model.MonthlySummary
// Error: 400 Bad Request if the month parameter is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonth(r.URL.Query().Get("month"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid month, expected YYYY-MM", err.Error())
		return
	}
	if month.IsZero() {
		month = time.Now().UTC()
	}

	summary, err := h.transactionService.MonthlySummary(middleware.UserID(r), month)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, summary)
}

// parseMonth parses a YYYY-MM query value. Empty input yields a zero time,
// which downstream code treats as "no filter".
func parseMonth(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01", value)
}

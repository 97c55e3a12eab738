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

// BudgetHandler handles HTTP requests for budget categories.
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler with the provided service dependency.
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// ListBudgets handles GET requests for the authenticated user's budget categories.
//
// Endpoint: GET /api/budgets
// Response: 200 OK with array of model.BudgetCategory
// Error: 500 Internal Server Error if retrieval fails
func (h *BudgetHandler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.budgetService.List(middleware.UserID(r))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveBudgets.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, budgets)
}

// CreateBudget handles POST requests to add a budget category.
//
// Endpoint: POST /api/budgets
// Request Body: CreateBudgetRequest (category, limit)
// Response: 201 Created with model.BudgetCategory
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 409 Conflict if the category is already budgeted
// Error: 500 Internal Server Error if creation fails
func (h *BudgetHandler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateBudgetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateBudget(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	limit, _ := decimal.NewFromString(req.Limit)
	budget, err := h.budgetService.Create(model.BudgetCategory{
		UserID:   middleware.UserID(r),
		Category: req.Category,
		Limit:    limit,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEntry) {
			response.RespondError(w, http.StatusConflict, "category already budgeted", "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create budget", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusCreated, budget)
}

// UpdateBudget handles PUT requests to change a budget category's monthly limit.
//
// Endpoint: PUT /api/budgets/{uuid}
// Request Body: UpdateBudgetRequest (limit)
// Response: 200 OK
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the budget does not exist
// Error: 500 Internal Server Error if the update fails
func (h *BudgetHandler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateBudgetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateBudget(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	limit, _ := decimal.NewFromString(req.Limit)
	err = h.budgetService.Update(model.BudgetCategory{
		ID:     chi.URLParam(r, "uuid"),
		UserID: middleware.UserID(r),
		Limit:  limit,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrBudgetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrBudgetNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update budget", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DeleteBudget handles DELETE requests to remove a budget category.
//
// Endpoint: DELETE /api/budgets/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the budget does not exist
// Error: 500 Internal Server Error if the delete fails
func (h *BudgetHandler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	err := h.budgetService.Delete(middleware.UserID(r), chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrBudgetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrBudgetNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete budget", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusNoContent, nil)
}

// BudgetSummary handles GET requests for the current month's budget status:
// each budget joined with that month's spending in its category.
//
// Endpoint: GET /api/budgets/summary
// Response: 200 OK with array of model.BudgetStatus
// Error: 500 Internal Server Error if retrieval fails
func (h *BudgetHandler) BudgetSummary(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.budgetService.Summary(middleware.UserID(r), time.Now().UTC())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveBudgets.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, statuses)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/middleware"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/response"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/service"
)

// PortfolioHandler handles HTTP requests for portfolio endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the portfolioService.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependency.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Portfolio handles GET requests for the authenticated user's portfolio
// snapshot: holdings valued at current prices, totals, daily change, overall
// return, and the allocation breakdown.
//
// Endpoint: GET /api/portfolio
// Response: 200 OK with model.PortfolioSnapshot
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.portfolioService.Snapshot(middleware.UserID(r))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePortfolio.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, snapshot)
}

// Wallet handles GET requests for the authenticated user's cash balance.
//
// Endpoint: GET /api/portfolio/wallet
// Response: 200 OK with model.Wallet
// Error: 404 Not Found if no wallet exists for the user
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) Wallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.portfolioService.Wallet(middleware.UserID(r))
	if err != nil {
		if errors.Is(err, apperrors.ErrWalletNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrWalletNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveWallet.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, wallet)
}

// RealizedGains handles GET requests for the authenticated user's realized
// gain/loss history, newest first.
//
// Endpoint: GET /api/portfolio/gains
// Response: 200 OK with array of model.RealizedGainLoss
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) RealizedGains(w http.ResponseWriter, r *http.Request) {
	gains, err := h.portfolioService.RealizedGains(middleware.UserID(r))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveGains.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, gains)
}

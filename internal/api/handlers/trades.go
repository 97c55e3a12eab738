package handlers

import (
	"errors"
	"net/http"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/middleware"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/response"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/feed"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/service"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/validation"
)

// TradeHandler handles HTTP requests for trade execution.
type TradeHandler struct {
	tradeService *service.TradeService
	feed         *feed.Service
}

// NewTradeHandler creates a new TradeHandler with the provided dependencies.
func NewTradeHandler(tradeService *service.TradeService, feedService *feed.Service) *TradeHandler {
	return &TradeHandler{
		tradeService: tradeService,
		feed:         feedService,
	}
}

// PlaceTrade handles POST requests to execute a buy or sell order. The whole
// order runs against the snapshot current at validation time, so the
// confirmation price is the validated price even if a feed refresh lands
// mid-execution. A rejected order changes no state.
//
// Endpoint: POST /api/portfolio/trade
// Request Body: TradeRequest (symbol, side, quantity)
// Response: 200 OK with model.TradeConfirmation
// Error: 400 Bad Request if the body is invalid or the quantity does not parse
// Error: 422 Unprocessable Entity if the order is rejected (no usable quote,
// insufficient shares, insufficient funds)
// Error: 503 Service Unavailable before the first snapshot has published
// Error: 500 Internal Server Error if execution fails
func (h *TradeHandler) PlaceTrade(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.TradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	order, err := validation.ParseTradeRequest(req)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}
	order.UserID = middleware.UserID(r)

	snapshot := h.feed.Snapshot()
	if snapshot == nil {
		response.RespondError(w, http.StatusServiceUnavailable, "quotes not yet available", "")
		return
	}

	confirmation, err := h.tradeService.PlaceTrade(order, snapshot)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrQuoteUnavailable),
			errors.Is(err, apperrors.ErrInvalidQuantity),
			errors.Is(err, apperrors.ErrInsufficientShares),
			errors.Is(err, apperrors.ErrInsufficientFunds):
			response.RespondError(w, http.StatusUnprocessableEntity, err.Error(), "")
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToExecuteTrade.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, confirmation)
}

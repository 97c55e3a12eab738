package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/response"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/feed"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
)

// QuoteHandler handles HTTP requests for the quote feed and watchlist.
type QuoteHandler struct {
	feed           *feed.Service
	instrumentRepo *repository.InstrumentRepository
}

// NewQuoteHandler creates a new QuoteHandler with the provided dependencies.
func NewQuoteHandler(feedService *feed.Service, instrumentRepo *repository.InstrumentRepository) *QuoteHandler {
	return &QuoteHandler{
		feed:           feedService,
		instrumentRepo: instrumentRepo,
	}
}

// QuotesResponse is the latest published snapshot flattened for the frontend,
// quotes in symbol order.
type QuotesResponse struct {
	AsOf      time.Time     `json:"asOf"`
	Synthetic bool          `json:"synthetic"`
	Quotes    []model.Quote `json:"quotes"`
}

// Quotes handles GET requests for the latest quote snapshot.
//
// Endpoint: GET /api/quotes
// Response: 200 OK with QuotesResponse
// Error: 503 Service Unavailable before the first refresh has published
func (h *QuoteHandler) Quotes(w http.ResponseWriter, r *http.Request) {
	snapshot := h.feed.Snapshot()
	if snapshot == nil {
		response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrFailedToRetrieveQuotes.Error(), "no snapshot published yet")
		return
	}
	respondJSON(w, http.StatusOK, snapshotResponse(snapshot))
}

// RefreshQuotes handles POST requests to force a feed refresh outside the
// schedule. Concurrent callers share a single fetch and all receive the
// resulting snapshot.
//
// Endpoint: POST /api/quotes/refresh
// Response: 200 OK with QuotesResponse (synthetic when the provider is down)
func (h *QuoteHandler) RefreshQuotes(w http.ResponseWriter, r *http.Request) {
	snapshot := h.feed.Refresh(r.Context())
	respondJSON(w, http.StatusOK, snapshotResponse(snapshot))
}

// Watchlist handles GET requests for the tracked instrument universe.
//
// Endpoint: GET /api/watchlist
// Response: 200 OK with array of model.Instrument
// Error: 500 Internal Server Error if retrieval fails
func (h *QuoteHandler) Watchlist(w http.ResponseWriter, r *http.Request) {
	instruments, err := h.instrumentRepo.List()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveWatchlist.Error(), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, instruments)
}

func snapshotResponse(snapshot *model.QuoteSnapshot) QuotesResponse {
	quotes := make([]model.Quote, 0, len(snapshot.Quotes))
	for _, quote := range snapshot.Quotes {
		quotes = append(quotes, quote)
	}
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].Symbol < quotes[j].Symbol })

	return QuotesResponse{
		AsOf:      snapshot.AsOf,
		Synthetic: snapshot.Synthetic,
		Quotes:    quotes,
	}
}

package handlers

import (
	"net/http"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/response"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/service"
)

// SettingsHandler handles HTTP requests for application settings.
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler with the provided service dependency.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// QuoteKeyResponse reports whether a quote-provider API key is configured.
// The key itself is only ever returned masked.
type QuoteKeyResponse struct {
	Configured bool   `json:"configured"`
	MaskedKey  string `json:"maskedKey,omitempty"`
}

// QuoteKey handles GET requests for the quote-provider API key status.
//
// Endpoint: GET /api/settings/quote-key
// Response: 200 OK with QuoteKeyResponse
// Error: 500 Internal Server Error if retrieval or decryption fails
func (h *SettingsHandler) QuoteKey(w http.ResponseWriter, r *http.Request) {
	masked, ok, err := h.settingsService.MaskedQuoteAPIKey()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to read quote API key", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, QuoteKeyResponse{Configured: ok, MaskedKey: masked})
}

// UpdateQuoteKey handles PUT requests to store the quote-provider API key,
// encrypted at rest.
//
// Endpoint: PUT /api/settings/quote-key
// Request Body: UpdateQuoteKeyRequest (apiKey)
// Response: 200 OK with QuoteKeyResponse
// Error: 400 Bad Request if the body is invalid or the key is empty
// Error: 500 Internal Server Error if storage fails
func (h *SettingsHandler) UpdateQuoteKey(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateQuoteKeyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.APIKey == "" {
		response.RespondError(w, http.StatusBadRequest, "apiKey is required", "")
		return
	}

	if err := h.settingsService.SetQuoteAPIKey(req.APIKey); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to store quote API key", err.Error())
		return
	}

	masked, ok, err := h.settingsService.MaskedQuoteAPIKey()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to read quote API key", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, QuoteKeyResponse{Configured: ok, MaskedKey: masked})
}

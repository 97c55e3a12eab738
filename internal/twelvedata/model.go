package twelvedata

import "encoding/json"

// QuoteEntry represents one symbol's entry in a batch quote response.
// Numeric fields arrive as JSON strings from the provider and are kept as
// strings here; parsing into decimals happens in the feed layer so malformed
// values degrade to "unavailable" instead of failing the whole batch.
type QuoteEntry struct {
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Exchange      string `json:"exchange"`
	Currency      string `json:"currency"`
	Close         string `json:"close"`
	Change        string `json:"change"`
	PercentChange string `json:"percent_change"`

	// Error payload fields, present when the provider substitutes an error
	// object for the quote (plan restrictions, unknown symbols).
	Code    int    `json:"code,omitempty"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// IsError reports whether the entry is a provider error object rather than
// quote data.
func (e QuoteEntry) IsError() bool {
	return e.Status == "error" || e.Code != 0
}

// WellFormed reports whether the entry carries at least a symbol and a price,
// the minimum required to issue a quote.
func (e QuoteEntry) WellFormed() bool {
	return !e.IsError() && e.Symbol != "" && e.Close != ""
}

// BatchResponse is the success shape of the batch quote endpoint: a JSON
// object keyed by symbol. When only one symbol is requested the provider
// flattens the response to a single entry; both shapes decode here.
type BatchResponse map[string]QuoteEntry

// apiError is the provider's top-level error payload, returned with a 2xx
// status for plan-restricted requests.
type apiError struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// decodeBatch decodes body into a BatchResponse, accepting both the keyed
// batch shape and the flattened single-quote shape.
func decodeBatch(body []byte, symbols []string) (BatchResponse, error) {
	var batch BatchResponse
	if err := json.Unmarshal(body, &batch); err == nil {
		// A keyed object decodes cleanly; a flattened single quote also
		// decodes but with garbage keys, so verify at least one requested
		// symbol is present.
		for _, s := range symbols {
			if _, ok := batch[s]; ok {
				return batch, nil
			}
		}
	}

	var single QuoteEntry
	if err := json.Unmarshal(body, &single); err != nil {
		return nil, err
	}
	if single.Symbol == "" && !single.IsError() {
		return nil, errMalformedResponse
	}
	if single.Symbol == "" && len(symbols) == 1 {
		single.Symbol = symbols[0]
	}
	return BatchResponse{single.Symbol: single}, nil
}

// Package response renders the dashboard API's JSON payloads. Errors share
// one envelope so the frontend can display any failure the same way.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorEnvelope is the error body for every non-2xx response: a short
// user-facing message plus an optional technical detail string.
type ErrorEnvelope struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// RespondJSON writes data as JSON with the given status code. A nil data
// writes only the status, which is what 204 No Content needs. Encoding
// failures are logged; the status line has already been sent by then.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError writes an ErrorEnvelope with the given status code. message is
// the user-facing description; detail carries the underlying error text and
// may be empty.
//
// Example:
//
//	response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
//	response.RespondError(w, http.StatusNotFound, "resource not found", "")
func RespondError(w http.ResponseWriter, status int, message, detail string) {
	RespondJSON(w, status, ErrorEnvelope{
		Error:  message,
		Detail: detail,
	})
}

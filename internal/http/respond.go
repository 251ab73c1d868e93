package http

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/GoodPie/aihl-media-app/internal/apperr"
)

// errorEnvelope is the wire shape of every error response.
type errorEnvelope struct {
	Message   string `json:"message"`
	ErrorType string `json:"errorType"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// respondError maps a domain error onto the error envelope. Untagged errors
// surface as a 500 with a generic message.
func respondError(w http.ResponseWriter, err error) {
	status := apperr.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error("Unhandled error", "error", err)
		message = "internal server error"
	}
	respondJSON(w, status, errorEnvelope{Message: message, ErrorType: apperr.ErrorType(err)})
}

// decodeJSON parses a request body, tagging malformed payloads as validation
// failures.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Wrap(apperr.KindValidation, err, "invalid JSON body")
	}
	return nil
}

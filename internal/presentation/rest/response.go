package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/model"
)

// writeJSON marshals the value as JSON and writes it to the response.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, msg string) {
	writeJSON(w, statusCode, map[string]string{"error": msg})
}

type validationErrorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

// writeDomainError maps use case errors onto the JSON error contract.
func writeDomainError(w http.ResponseWriter, err error) {
	var verr *model.ValidationError
	switch {
	case errors.Is(err, model.ErrMissingIdempotencyKey):
		writeError(w, http.StatusBadRequest, "Missing Idempotency-Key header")
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, validationErrorBody{Error: "validation", Details: verr.Details})
	case errors.Is(err, model.ErrPaymentNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, model.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "invalid_transition")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error")
	}
}

// writeDocument writes a rendered XML document.
func writeDocument(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// writeNotFoundText is the plain-text 404 of the document endpoints.
func writeNotFoundText(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("Not Found"))
}

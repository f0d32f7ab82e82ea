// internal/app/system/jsonutil/jsonutil.go

// Package jsonutil writes the JSON envelopes every API handler shares.
// Success bodies are encoded as-is; failures use {message, details} so the
// client form layer can map details back onto individual fields.
package jsonutil

import (
	"encoding/json"
	"net/http"
)

// WriteJSON encodes v with the given status. Encoding failures are ignored
// at this point: headers are already written and the connection belongs to
// the client.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the shared failure envelope.
type errorBody struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the failure envelope with an optional details value
// (typically a field→messages map from the validator).
func WriteError(w http.ResponseWriter, status int, message string, details any) {
	WriteJSON(w, status, errorBody{Message: message, Details: details})
}

// WriteNotFound writes the 404 envelope.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message, nil)
}

// WriteServerError writes the opaque 500 envelope. The cause is for logs,
// never the response body.
func WriteServerError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, "Unexpected server error.", nil)
}

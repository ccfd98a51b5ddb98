package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/demo-blog/api/internal/apperr"
)

// envelope is the uniform response wrapper: {success, data} on success,
// {success, error} on failure.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondData writes a success envelope.
func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

// respondError writes an error envelope with an explicit status.
func respondError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Error: msg})
}

// respondErr writes an error envelope, deriving the status from the error
// kind. Only the message reaches the client; causes stay server-side.
func respondErr(w http.ResponseWriter, err error) {
	respondError(w, apperr.Status(err), err.Error())
}

// routeNotFound is the uniform response for unmatched routes and methods.
func routeNotFound(w http.ResponseWriter) {
	respondError(w, http.StatusNotFound, "route not found")
}

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/demo-blog/api/internal/config"
	"github.com/demo-blog/api/internal/validate"
)

// Health handles GET /api/health.
func Health(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondData(w, http.StatusOK, map[string]any{
			"service":   cfg.ServiceName,
			"database":  cfg.DBPath,
			"timestamp": time.Now().UTC(),
		})
	}
}

// Greeting handles GET /api/greeting?name=. The name defaults to "Guest".
func Greeting(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "Guest"
	}
	respondData(w, http.StatusOK, map[string]any{
		"message":   fmt.Sprintf("Hello, %s!", name),
		"timestamp": time.Now().UTC(),
	})
}

// Sum handles POST /api/sum: pure arithmetic over two coerced numbers.
func Sum(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		A any `json:"a"`
		B any `json:"b"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	a, b, err := validate.Sum(payload.A, payload.B)
	if err != nil {
		respondErr(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]float64{"a": a, "b": b, "result": a + b})
}

// Fail handles GET /api/fail: an unconditional 500 for failure-path testing.
func Fail(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusInternalServerError, "intentional failure")
}

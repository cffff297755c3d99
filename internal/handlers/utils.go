package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/aaronzipp/rock-paper-showdown/internal/game"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write json response: %v", err)
	}
}

// writeError maps a core error onto the JSON error contract.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

// statusFor maps the error taxonomy to HTTP status codes. Validation and
// state errors are the caller's to fix; everything else is a storage or
// internal failure.
func statusFor(err error) int {
	var verr *game.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, game.ErrInvalidChoice),
		errors.Is(err, game.ErrNoActiveSession),
		errors.Is(err, game.ErrGameComplete):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads a JSON request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return game.Validationf("invalid request body")
	}
	return nil
}

// nullable turns an empty string into a JSON null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

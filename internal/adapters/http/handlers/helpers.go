package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-actuator/internal/adapters/http/dto"
)

// statusCode maps a health flag to 200 or 503.
func statusCode(ok bool) int {
	if ok {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

// writeStatus writes {"status":"UP"} with 200 or {"status":"DOWN"} with 503.
func writeStatus(w http.ResponseWriter, ok bool) {
	writeJSON(w, statusCode(ok), dto.NewStatusResponse(ok))
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

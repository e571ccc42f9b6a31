package dto

import (
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/go-actuator/internal/domain"
)

// RefreshRequest holds the query parameters of POST {base}/refresh.
type RefreshRequest struct {
	// Wait makes the request block until a fresh verdict is computed.
	Wait bool
}

// ParseRefreshRequest reads RefreshRequest from the query string.
// Returns a *domain.ValidationError for malformed parameters.
func ParseRefreshRequest(r *http.Request) (RefreshRequest, error) {
	var req RefreshRequest

	raw := r.URL.Query().Get("wait")
	if raw == "" {
		return req, nil
	}

	wait, err := strconv.ParseBool(raw)
	if err != nil {
		return req, &domain.ValidationError{
			Fields: map[string]string{"wait": "must be a boolean"},
		}
	}
	req.Wait = wait
	return req, nil
}

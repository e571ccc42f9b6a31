// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import "github.com/jsamuelsen11/go-actuator/internal/domain"

// StatusAccepted is reported when a refresh was requested without waiting.
const StatusAccepted = "ACCEPTED"

// StatusResponse is the body of the health endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}

// NewStatusResponse maps a health flag to {"status":"UP"} or {"status":"DOWN"}.
func NewStatusResponse(ok bool) StatusResponse {
	return StatusResponse{Status: string(domain.StatusOf(ok))}
}

// RefreshResponse is the body of a refresh that waited for a fresh verdict.
type RefreshResponse struct {
	Status  string `json:"status"`
	Ready   bool   `json:"ready"`
	Alive   bool   `json:"alive"`
	Healthy bool   `json:"healthy"`
}

// ToRefreshResponse converts a verdict to a RefreshResponse. Status is UP
// only when the verdict serves traffic and is alive.
func ToRefreshResponse(v domain.Verdict) RefreshResponse {
	return RefreshResponse{
		Status:  string(domain.StatusOf(v.Serving() && v.Alive)),
		Ready:   v.Ready,
		Alive:   v.Alive,
		Healthy: v.Healthy,
	}
}

package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-actuator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-actuator/internal/ports"
)

// ActuatorHandler serves the actuator health endpoints.
type ActuatorHandler struct {
	svc ports.ActuatorService
}

// NewActuatorHandler creates an ActuatorHandler backed by svc.
func NewActuatorHandler(svc ports.ActuatorService) *ActuatorHandler {
	return &ActuatorHandler{svc: svc}
}

// Health handles GET {base}/health. UP when the service is both ready and
// alive.
func (h *ActuatorHandler) Health(w http.ResponseWriter, r *http.Request) {
	ready := h.svc.Readiness(r.Context())
	alive := h.svc.Liveness(r.Context())
	writeStatus(w, ready && alive)
}

// Readiness handles GET {base}/health/readiness.
func (h *ActuatorHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, h.svc.Readiness(r.Context()))
}

// Liveness handles GET {base}/health/liveness.
func (h *ActuatorHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, h.svc.Liveness(r.Context()))
}

// Info handles GET {base}/info. The body is empty; only the status code
// carries the health outcome.
func (h *ActuatorHandler) Info(w http.ResponseWriter, r *http.Request) {
	ready := h.svc.Readiness(r.Context())
	alive := h.svc.Liveness(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode(ready && alive))
}

// Refresh handles POST {base}/refresh. Without ?wait=true it triggers a
// refresh and answers 202 at once; with it, the response carries the fresh
// verdict.
func (h *ActuatorHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	req, err := dto.ParseRefreshRequest(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	v, err := h.svc.Refresh(r.Context(), req.Wait)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if !req.Wait {
		writeJSON(w, http.StatusAccepted, dto.StatusResponse{Status: dto.StatusAccepted})
		return
	}
	writeJSON(w, http.StatusOK, dto.ToRefreshResponse(v))
}

package ports

import (
	"context"

	"github.com/jsamuelsen11/go-actuator/internal/domain"
)

// ActuatorService defines the service port behind the actuator endpoints.
// Implemented by the application layer; called by inbound adapters (handlers).
// It combines the health engine verdict with the service's own top-level
// availability flags.
type ActuatorService interface {
	// Readiness reports whether the service should receive traffic.
	Readiness(ctx context.Context) bool

	// Liveness reports whether the service is running correctly.
	Liveness(ctx context.Context) bool

	// Refresh forces a refresh of the cached verdict. When wait is false it
	// returns immediately with the current cached verdict; otherwise it
	// blocks until a fresh verdict is available or ctx is done.
	Refresh(ctx context.Context, wait bool) (domain.Verdict, error)

	// SetReady flips the top-level readiness flag, e.g. during graceful
	// shutdown.
	SetReady(ready bool)

	// SetAlive flips the top-level liveness flag.
	SetAlive(alive bool)
}

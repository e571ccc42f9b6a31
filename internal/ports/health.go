package ports

import (
	"context"

	"github.com/jsamuelsen11/go-actuator/internal/domain"
)

// Probe is implemented by any component that can report readiness and
// liveness. Examples: database pools, cache clients, downstream API clients.
//
// Both methods must be safe for concurrent use and must not block for long:
// they are called from the health engine's refresh loop and, in direct read
// mode, from request handlers. A probe that cannot determine its state must
// report false.
type Probe interface {
	// IsReady reports whether the component can currently serve traffic.
	IsReady() bool

	// IsAlive reports whether the component is running correctly. A false
	// value means the process should be restarted.
	IsAlive() bool
}

// NamedProbe pairs a registered probe with its registry name.
type NamedProbe struct {
	Name  string
	Probe Probe
}

// HealthEngine tracks registered probes and caches the aggregate verdict.
// The verdict is refreshed periodically and on demand in the background;
// snapshot reads never wait for a refresh.
type HealthEngine interface {
	// RegisterProbe inserts or replaces the probe registered under name.
	// The next refresh includes it.
	RegisterProbe(name string, probe Probe)

	// TriggerRefresh requests an immediate refresh without waiting for it.
	// The returned ticket identifies the request; a notification with
	// Trigger >= ticket carries a verdict computed after the call.
	TriggerRefresh() uint64

	// Refresh requests an immediate refresh and waits for a verdict computed
	// after the request was made.
	Refresh(ctx context.Context) (domain.Verdict, error)

	// ReadinessSnapshot returns the cached readiness.
	ReadinessSnapshot() bool

	// LivenessSnapshot returns the cached liveness.
	LivenessSnapshot() bool

	// Snapshot returns the full cached verdict.
	Snapshot() domain.Verdict

	// Probes returns the registered probes in registration order.
	Probes() []NamedProbe
}

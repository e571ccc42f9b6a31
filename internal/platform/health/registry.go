// Package health implements the process-wide health engine: a registry of
// named probes, the fail-fast aggregation policy, and a background refresh
// loop that keeps a cached verdict fresh on a fixed interval and on demand.
//
// Lifecycle:
//
//	engine := health.New(health.WithLogger(logger), health.WithMetrics(metrics))
//	engine.RegisterProbe("database", probes.NewPostgres(pool))
//	if err := engine.Start(ctx); err != nil { ... }
//	defer engine.Stop(shutdownCtx)
//
// Request handlers read engine.ReadinessSnapshot() and
// engine.LivenessSnapshot(); these never wait on probe evaluation.
package health

import (
	"sync"

	"github.com/jsamuelsen11/go-actuator/internal/ports"
)

// Registry is a thread-safe mapping from probe name to probe. Registration
// is the only mutation: a repeated name replaces the probe in place and keeps
// its original position in iteration order.
type Registry struct {
	mu     sync.RWMutex
	probes map[string]ports.Probe
	order  []string
}

// NewRegistry creates an empty probe registry.
func NewRegistry() *Registry {
	return &Registry{
		probes: make(map[string]ports.Probe),
	}
}

// Register inserts or replaces the probe for name. Safe for concurrent use.
func (r *Registry) Register(name string, probe ports.Probe) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.probes[name]; !exists {
		r.order = append(r.order, name)
	}
	r.probes[name] = probe
}

// Entries returns a snapshot of the registered probes in registration order.
// The snapshot is copied under a read lock so probes are queried without
// holding it.
func (r *Registry) Entries() []ports.NamedProbe {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]ports.NamedProbe, 0, len(r.order))
	for _, name := range r.order {
		entries = append(entries, ports.NamedProbe{Name: name, Probe: r.probes[name]})
	}
	return entries
}

// Names returns the registered probe names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered probes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

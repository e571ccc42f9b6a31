package probes

import (
	"context"

	"github.com/jsamuelsen11/go-actuator/internal/ports"
)

// Compile-time interface check.
var _ ports.Probe = (*Downstream)(nil)

// DownstreamClient is the part of httpclient.Client the downstream probe
// needs.
type DownstreamClient interface {
	Name() string
	Ping(ctx context.Context, path string) error
	Available() bool
}

// Downstream probes a downstream HTTP service. It is not ready while the
// client's circuit breaker is open or the latest health request failed.
type Downstream struct {
	*PingProbe
	client DownstreamClient
}

// NewDownstream returns a probe named after the client that requests
// healthPath on every liveness check.
func NewDownstream(client DownstreamClient, healthPath string, opts ...Option) *Downstream {
	ping := NewPing(client.Name(), func(ctx context.Context) error {
		return client.Ping(ctx, healthPath)
	}, opts...)
	return &Downstream{PingProbe: ping, client: client}
}

// IsReady reports false without a network call while the breaker is open.
func (d *Downstream) IsReady() bool {
	return d.client.Available() && d.PingProbe.IsReady()
}

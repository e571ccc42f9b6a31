package probes

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen11/go-actuator/internal/platform/config"
	"github.com/jsamuelsen11/go-actuator/internal/ports"
)

const defaultPingTimeout = 2 * time.Second

// Compile-time interface check.
var _ ports.Probe = (*PingProbe)(nil)

// PingFunc checks a dependency and returns nil when it is reachable.
type PingFunc func(ctx context.Context) error

// Option configures a PingProbe.
type Option func(*PingProbe)

// WithTimeout bounds every ping. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(p *PingProbe) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithFailureThreshold sets how many consecutive failed pings make the probe
// report not alive. Zero (the default) means a failing dependency never
// makes the process dead, only not ready.
func WithFailureThreshold(n int) Option {
	return func(p *PingProbe) {
		p.threshold = max(n, 0)
	}
}

// WithLogger sets the logger used to report state changes.
func WithLogger(logger *slog.Logger) Option {
	return func(p *PingProbe) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// FromConfig translates shared probe settings into options.
func FromConfig(cfg config.ProbeConfig) []Option {
	return []Option{
		WithTimeout(cfg.Timeout),
		WithFailureThreshold(cfg.FailureThreshold),
	}
}

// PingProbe turns a PingFunc into a probe.
//
// IsAlive pings the dependency and counts consecutive failures; IsReady
// reports the outcome of the latest ping, pinging only when none has run
// yet. The health engine queries liveness before readiness, so each
// evaluation costs a single ping. Concurrent pings are collapsed into one.
type PingProbe struct {
	name      string
	ping      PingFunc
	timeout   time.Duration
	threshold int
	logger    *slog.Logger

	group singleflight.Group

	mu       sync.Mutex
	pinged   bool
	lastErr  error
	failures int
}

// NewPing returns a probe named name that checks the dependency with ping.
func NewPing(name string, ping PingFunc, opts ...Option) *PingProbe {
	p := &PingProbe{
		name:    name,
		ping:    ping,
		timeout: defaultPingTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the probe name used in logs.
func (p *PingProbe) Name() string {
	return p.name
}

// IsAlive pings the dependency and reports false once the configured number
// of consecutive pings have failed.
func (p *PingProbe) IsAlive() bool {
	p.check()

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.threshold == 0 || p.failures < p.threshold
}

// IsReady reports whether the latest ping succeeded.
func (p *PingProbe) IsReady() bool {
	p.mu.Lock()
	pinged := p.pinged
	p.mu.Unlock()

	if !pinged {
		p.check()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr == nil
}

// LastError returns the error of the latest ping, or nil.
func (p *PingProbe) LastError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// check runs one ping, sharing it with concurrent callers.
func (p *PingProbe) check() {
	_, _, _ = p.group.Do(p.name, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()

		err := p.ping(ctx)
		p.record(err)
		return nil, nil
	})
}

func (p *PingProbe) record(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	wasOK := !p.pinged || p.lastErr == nil
	p.pinged = true
	p.lastErr = err

	if err == nil {
		if !wasOK {
			p.logger.Info("dependency recovered",
				slog.String("probe", p.name),
				slog.Int("failed_pings", p.failures),
			)
		}
		p.failures = 0
		return
	}

	p.failures++
	if wasOK || p.failures == p.threshold {
		p.logger.Warn("dependency ping failed",
			slog.String("probe", p.name),
			slog.Int("consecutive_failures", p.failures),
			slog.Int("failure_threshold", p.threshold),
			slog.Any("error", err),
		)
	}
}

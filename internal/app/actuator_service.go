// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jsamuelsen11/go-actuator/internal/app/fanout"
	"github.com/jsamuelsen11/go-actuator/internal/domain"
	"github.com/jsamuelsen11/go-actuator/internal/ports"
)

// Compile-time check that ActuatorService implements ports.ActuatorService.
var _ ports.ActuatorService = (*ActuatorService)(nil)

// ReadMode selects how the actuator answers readiness and liveness queries.
type ReadMode string

const (
	// ReadModeCached answers from the engine's cached verdict only.
	ReadModeCached ReadMode = "cached"
	// ReadModeDirect queries every registered probe on each request.
	ReadModeDirect ReadMode = "direct"
	// ReadModeCombined requires both the cached verdict and a direct pass.
	ReadModeCombined ReadMode = "combined"
)

const (
	defaultMaxWorkers     = 8
	defaultRefreshTimeout = 5 * time.Second
)

// ActuatorOption configures an ActuatorService.
type ActuatorOption func(*ActuatorService)

// WithReadMode sets the read mode. Unknown modes fall back to cached.
func WithReadMode(mode ReadMode) ActuatorOption {
	return func(s *ActuatorService) {
		switch mode {
		case ReadModeCached, ReadModeDirect, ReadModeCombined:
			s.mode = mode
		default:
			s.mode = ReadModeCached
		}
	}
}

// WithRefreshTimeout caps how long Refresh waits for a fresh verdict.
func WithRefreshTimeout(d time.Duration) ActuatorOption {
	return func(s *ActuatorService) {
		if d > 0 {
			s.refreshTimeout = d
		}
	}
}

// WithMaxWorkers bounds how many probes a direct pass queries at once.
func WithMaxWorkers(n int) ActuatorOption {
	return func(s *ActuatorService) {
		if n > 0 {
			s.maxWorkers = n
		}
	}
}

// ActuatorService implements ports.ActuatorService on top of a health engine.
// It adds the service's own top-level availability flags, which are checked
// before any probe and let the process take itself out of rotation (for
// example while draining on shutdown).
type ActuatorService struct {
	engine         ports.HealthEngine
	logger         *slog.Logger
	mode           ReadMode
	refreshTimeout time.Duration
	maxWorkers     int

	ready atomic.Bool
	alive atomic.Bool
}

// NewActuatorService creates an ActuatorService reading from engine. Both
// top-level flags start true. A nil logger discards output.
func NewActuatorService(engine ports.HealthEngine, logger *slog.Logger, opts ...ActuatorOption) *ActuatorService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &ActuatorService{
		engine:         engine,
		logger:         logger,
		mode:           ReadModeCached,
		refreshTimeout: defaultRefreshTimeout,
		maxWorkers:     defaultMaxWorkers,
	}
	s.ready.Store(true)
	s.alive.Store(true)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode returns the configured read mode.
func (s *ActuatorService) Mode() ReadMode {
	return s.mode
}

// Readiness reports whether the service should receive traffic.
func (s *ActuatorService) Readiness(ctx context.Context) bool {
	if !s.ready.Load() {
		return false
	}

	switch s.mode {
	case ReadModeDirect:
		return s.direct(ctx, ports.Probe.IsReady)
	case ReadModeCombined:
		return s.engine.ReadinessSnapshot() && s.direct(ctx, ports.Probe.IsReady)
	default:
		return s.engine.ReadinessSnapshot()
	}
}

// Liveness reports whether the service is running correctly.
func (s *ActuatorService) Liveness(ctx context.Context) bool {
	if !s.alive.Load() {
		return false
	}

	switch s.mode {
	case ReadModeDirect:
		return s.direct(ctx, ports.Probe.IsAlive)
	case ReadModeCombined:
		return s.engine.LivenessSnapshot() && s.direct(ctx, ports.Probe.IsAlive)
	default:
		return s.engine.LivenessSnapshot()
	}
}

// Refresh triggers a refresh of the cached verdict. Without wait it returns
// the current cached verdict at once. With wait it blocks until a verdict
// computed after the call is available, ctx is done, or the refresh timeout
// elapses; failures wrap domain.ErrUnavailable.
func (s *ActuatorService) Refresh(ctx context.Context, wait bool) (domain.Verdict, error) {
	if !wait {
		s.engine.TriggerRefresh()
		return s.engine.Snapshot(), nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.refreshTimeout)
	defer cancel()

	v, err := s.engine.Refresh(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "health refresh did not complete",
			slog.String("operation", "Refresh"),
			slog.Any("error", err),
		)
		return v, fmt.Errorf("%w: refreshing health verdict: %w", domain.ErrUnavailable, err)
	}
	return v, nil
}

// SetReady flips the top-level readiness flag.
func (s *ActuatorService) SetReady(ready bool) {
	if s.ready.Swap(ready) != ready {
		s.logger.Info("service readiness changed", slog.Bool("ready", ready))
	}
}

// SetAlive flips the top-level liveness flag.
func (s *ActuatorService) SetAlive(alive bool) {
	if s.alive.Swap(alive) != alive {
		s.logger.Info("service liveness changed", slog.Bool("alive", alive))
	}
}

// direct queries flag on every registered probe concurrently and reports
// whether all of them returned true. Unlike the engine's fail-fast pass it
// does not stop at the first failure. A canceled ctx counts as a failure.
func (s *ActuatorService) direct(ctx context.Context, flag func(ports.Probe) bool) bool {
	results := fanout.Run(ctx, s.maxWorkers, s.engine.Probes(),
		func(_ context.Context, np ports.NamedProbe) (bool, error) {
			return flag(np.Probe), nil
		})

	ok := true
	for _, r := range results {
		if r.Err != nil || !r.Value {
			ok = false
		}
	}
	return ok
}

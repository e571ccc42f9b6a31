package health

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-actuator/internal/domain"
	"github.com/jsamuelsen11/go-actuator/internal/platform/syncx"
	"github.com/jsamuelsen11/go-actuator/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-actuator/internal/ports"
)

// RefreshInterval is the fixed cadence of timer-driven refreshes.
const RefreshInterval = 10 * time.Second

// Compile-time interface check.
var _ ports.HealthEngine = (*Engine)(nil)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics sets the metric instruments. A nil value disables recording.
func WithMetrics(metrics *telemetry.Metrics) Option {
	return func(e *Engine) {
		e.metrics = metrics
	}
}

// Engine owns the probe registry, the cached verdict and the refresh loop.
//
// The loop is the only writer of the cached verdict, so two refreshes never
// run concurrently. Readers copy the verdict under a short read lock and
// never wait on probe evaluation.
type Engine struct {
	registry *Registry
	state    *syncx.Ref[domain.Verdict]
	topic    *topic

	// trigger holds at most one pending refresh request.
	trigger chan struct{}
	tickets atomic.Uint64
	seq     uint64 // owned by the refresh loop

	interval time.Duration
	logger   *slog.Logger
	metrics  *telemetry.Metrics
	tracer   trace.Tracer

	mu      sync.Mutex
	started bool
	stopped bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates an engine with an empty registry and an optimistic verdict
// (ready, alive and healthy). The refresh loop does not run until Start.
func New(opts ...Option) *Engine {
	e := &Engine{
		registry: NewRegistry(),
		state:    syncx.NewRef(domain.OptimisticVerdict()),
		topic:    newTopic(),
		trigger:  make(chan struct{}, 1),
		interval: RefreshInterval,
		logger:   slog.New(slog.DiscardHandler),
		tracer:   otel.GetTracerProvider().Tracer("health"),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start launches the refresh loop. The loop runs an initial refresh, then
// refreshes on every interval tick and every trigger until ctx is canceled or
// Stop is called. An engine can be started once.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started || e.stopped {
		return ErrAlreadyStarted
	}
	e.started = true

	loopCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel

	go e.run(loopCtx)

	e.logger.InfoContext(ctx, "health engine started",
		slog.Duration("interval", e.interval),
		slog.Int("probes", e.registry.Len()),
	)
	return nil
}

// Stop cancels the refresh loop and waits for it to exit or for ctx to be
// done. Pending Subscription.Next calls return ErrStopped. Stop is
// idempotent; an engine that was never started is simply marked stopped.
func (e *Engine) Stop(ctx context.Context) error {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return e.waitDone(ctx)
	}
	e.stopped = true
	if !e.started {
		e.mu.Unlock()
		e.topic.close()
		close(e.done)
		return nil
	}
	e.cancel()
	e.mu.Unlock()

	return e.waitDone(ctx)
}

func (e *Engine) waitDone(ctx context.Context) error {
	select {
	case <-e.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for health engine to stop: %w", ctx.Err())
	}
}

// Done is closed once the refresh loop has exited.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// RegisterProbe inserts or replaces the probe registered under name. A nil
// probe or an empty name is ignored.
func (e *Engine) RegisterProbe(name string, probe ports.Probe) {
	if name == "" || probe == nil {
		e.logger.Warn("ignoring invalid probe registration",
			slog.String("probe", name),
			slog.Bool("nil_probe", probe == nil),
		)
		return
	}
	e.registry.Register(name, probe)
	e.logger.Debug("probe registered", slog.String("probe", name))
}

// TriggerRefresh requests an immediate refresh and returns without waiting.
// Requests made while one is already pending are coalesced into it.
//
// The returned ticket is covered by the first notification whose Trigger is
// >= ticket; Subscription.NextAfter waits for it. A subscriber must subscribe
// before triggering to be sure to observe that notification.
func (e *Engine) TriggerRefresh() uint64 {
	return e.requestRefresh()
}

// requestRefresh issues a ticket and signals the loop. The loop reads the
// ticket counter after taking the signal, so the refresh that consumes the
// pending signal always covers the returned ticket.
func (e *Engine) requestRefresh() uint64 {
	ticket := e.tickets.Add(1)
	select {
	case e.trigger <- struct{}{}:
	default:
	}
	return ticket
}

// Subscribe returns a subscription to refresh-completion notifications.
// Callers must Close it when done.
func (e *Engine) Subscribe() *Subscription {
	return e.topic.subscribe()
}

// Refresh requests an immediate refresh and waits until a refresh that
// started after the request completes, returning its verdict. On error the
// current cached verdict is returned alongside it.
func (e *Engine) Refresh(ctx context.Context) (domain.Verdict, error) {
	e.mu.Lock()
	started, stopped := e.started, e.stopped
	e.mu.Unlock()

	switch {
	case stopped:
		return e.Snapshot(), ErrStopped
	case !started:
		return e.Snapshot(), ErrNotStarted
	}

	sub := e.Subscribe()
	defer sub.Close()

	n, err := sub.NextAfter(ctx, e.requestRefresh())
	if err != nil {
		return e.Snapshot(), err
	}
	return n.Verdict, nil
}

// Snapshot returns the cached verdict.
func (e *Engine) Snapshot() domain.Verdict {
	return e.state.Load()
}

// ReadinessSnapshot reports whether the cached verdict allows serving
// traffic. See domain.Verdict.Serving.
func (e *Engine) ReadinessSnapshot() bool {
	return e.state.Load().Serving()
}

// LivenessSnapshot reports the cached liveness flag.
func (e *Engine) LivenessSnapshot() bool {
	return e.state.Load().Alive
}

// Probes returns the registered probes in registration order.
func (e *Engine) Probes() []ports.NamedProbe {
	return e.registry.Entries()
}

func (e *Engine) run(ctx context.Context) {
	defer close(e.done)
	defer e.topic.close()

	e.refresh(ctx, SourceStartup)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		// No priority between the ticker and the trigger: select picks
		// uniformly among ready cases.
		select {
		case <-ctx.Done():
			e.logger.Info("health engine stopped", slog.Uint64("refreshes", e.seq))
			return
		case <-ticker.C:
			e.refresh(ctx, SourceTimer)
		case <-e.trigger:
			e.refresh(ctx, SourceTrigger)
		}
	}
}

// refresh evaluates all probes, stores the verdict and notifies subscribers.
func (e *Engine) refresh(ctx context.Context, source Source) {
	start := time.Now()
	ticket := e.tickets.Load()
	entries := e.registry.Entries()

	ctx, span := e.tracer.Start(ctx, "health.refresh",
		trace.WithAttributes(
			attribute.String("health.refresh.source", string(source)),
			attribute.Int("health.probes", len(entries)),
		),
	)
	defer span.End()

	prev := e.state.Load()
	next, failure := e.evaluate(ctx, prev, entries)
	e.state.Store(next)
	e.seq++

	switch {
	case failure.Flag == FlagPanic:
		span.SetStatus(codes.Error, failure.Probe+" panicked")
	case failure.Probe != "":
		span.SetStatus(codes.Error, failure.Probe+" not "+failure.Flag)
	}
	e.logTransition(ctx, source, prev, next, failure)
	e.recordMetrics(ctx, source, start, next)

	e.topic.publish(Notification{
		Seq:     e.seq,
		Trigger: ticket,
		Source:  source,
		Verdict: next,
		Failure: failure,
		At:      time.Now(),
	})
}

// evaluate runs Evaluate, converting a panicking probe into an unhealthy
// verdict so the loop survives misbehaving probes.
func (e *Engine) evaluate(ctx context.Context, prev domain.Verdict, entries []ports.NamedProbe) (next domain.Verdict, failure Failure) {
	var current string
	tracked := make([]ports.NamedProbe, len(entries))
	for i, entry := range entries {
		tracked[i] = ports.NamedProbe{
			Name:  entry.Name,
			Probe: trackedProbe{name: entry.Name, probe: entry.Probe, current: &current},
		}
	}

	defer func() {
		if v := recover(); v != nil {
			e.logger.ErrorContext(ctx, "probe panicked during refresh",
				slog.String("probe", current),
				slog.String("panic", fmt.Sprint(v)),
			)
			next = prev
			next.Healthy = false
			failure = Failure{Probe: current, Flag: FlagPanic}
		}
	}()
	return Evaluate(prev, tracked)
}

// trackedProbe records the name of the probe being queried, so a panic can
// be attributed to it.
type trackedProbe struct {
	name    string
	probe   ports.Probe
	current *string
}

func (p trackedProbe) IsReady() bool {
	*p.current = p.name
	return p.probe.IsReady()
}

func (p trackedProbe) IsAlive() bool {
	*p.current = p.name
	return p.probe.IsAlive()
}

func (e *Engine) logTransition(ctx context.Context, source Source, prev, next domain.Verdict, failure Failure) {
	attrs := []any{
		slog.String("source", string(source)),
		slog.Bool("ready", next.Ready),
		slog.Bool("alive", next.Alive),
		slog.Bool("healthy", next.Healthy),
	}
	if failure.Probe != "" {
		attrs = append(attrs,
			slog.String("failed_probe", failure.Probe),
			slog.String("failed_flag", failure.Flag),
		)
	}

	switch {
	case prev == next:
		e.logger.DebugContext(ctx, "health refreshed", attrs...)
	case next.Healthy:
		e.logger.InfoContext(ctx, "health verdict changed", attrs...)
	default:
		e.logger.WarnContext(ctx, "health verdict changed", attrs...)
	}
}

// recordMetrics records refresh count, duration and verdict gauges.
// Safe to call with nil metrics.
func (e *Engine) recordMetrics(ctx context.Context, source Source, start time.Time, v domain.Verdict) {
	if e.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(telemetry.AttrRefreshSource.String(string(source)))
	e.metrics.HealthRefreshTotal.Add(ctx, 1, attrs)
	e.metrics.HealthRefreshDuration.Record(ctx, time.Since(start).Seconds(), attrs)

	for flag, ok := range map[string]bool{
		FlagReady: v.Ready,
		FlagAlive: v.Alive,
		"healthy": v.Healthy,
	} {
		var val int64
		if ok {
			val = 1
		}
		e.metrics.HealthVerdict.Record(ctx, val, metric.WithAttributes(telemetry.AttrHealthFlag.String(flag)))
	}
}

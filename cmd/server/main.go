// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the health engine and the HTTP server, and
// handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"
	"golang.org/x/sync/errgroup"

	adapthttp "github.com/jsamuelsen11/go-actuator/internal/adapters/http"
	"github.com/jsamuelsen11/go-actuator/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-actuator/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-actuator/internal/adapters/probes"

	"github.com/jsamuelsen11/go-actuator/internal/app"
	"github.com/jsamuelsen11/go-actuator/internal/platform/config"
	"github.com/jsamuelsen11/go-actuator/internal/platform/health"
	"github.com/jsamuelsen11/go-actuator/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-actuator/internal/platform/logging"
	"github.com/jsamuelsen11/go-actuator/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-actuator/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	otelShutdownTimeout   = 5 * time.Second
	engineShutdownTimeout = 5 * time.Second

	// serverProbe is the probe tracking the process's own HTTP listener.
	serverProbe = "server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger, otel.handler)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		_ = otel.Shutdown(context.Background())
		return fmt.Errorf("resolving server: %w", err)
	}
	engine := do.MustInvoke[*health.Engine](injector)
	svc := do.MustInvoke[*app.ActuatorService](injector)

	// The server probe stays not ready until the listener is bound.
	self := probes.NewStatic(false, true)
	engine.RegisterProbe(serverProbe, self)
	server.OnListen(func(net.Addr) {
		self.SetReady(true)
		engine.TriggerRefresh()
	})

	deps, err := registerProbes(ctx, cfg, logger, otel.metrics, engine)
	if err != nil {
		_ = otel.Shutdown(context.Background())
		return fmt.Errorf("registering probes: %w", err)
	}

	if err := engine.Start(context.WithoutCancel(ctx)); err != nil {
		deps.Close(logger)
		_ = otel.Shutdown(context.Background())
		return fmt.Errorf("starting health engine: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(server.Start)

	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			logger.Info("received shutdown signal")
		}

		// Leave rotation before draining.
		svc.SetReady(false)
		self.SetReady(false)
		engine.TriggerRefresh()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	runErr := g.Wait()
	if runErr != nil {
		logger.Error("service stopped with error", slog.Any("error", runErr))
	}

	engineCtx, engineCancel := context.WithTimeout(context.Background(), engineShutdownTimeout)
	defer engineCancel()

	if err := engine.Stop(engineCtx); err != nil {
		logger.Error("health engine shutdown error", slog.Any("error", err))
	}

	deps.Close(logger)

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return runErr
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics

	// handler serves GET /metrics; nil unless the prometheus exporter is used.
	handler nethttp.Handler
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	var (
		meterOpts []telemetry.MeterOption
		handler   nethttp.Handler
	)
	if cfg.Telemetry.Exporter == telemetry.ExporterPrometheus {
		reg := prometheus.NewRegistry()
		meterOpts = append(meterOpts, telemetry.WithRegisterer(reg))
		handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
		meterOpts...,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
		handler: handler,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger, metricsHandler nethttp.Handler) {
	do.Provide(injector, func(i do.Injector) (*health.Engine, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return health.New(
			health.WithLogger(logger),
			health.WithMetrics(metrics),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.ActuatorService, error) {
		engine := do.MustInvoke[*health.Engine](i)
		return app.NewActuatorService(engine, logger,
			app.WithReadMode(app.ReadMode(cfg.Actuator.ReadMode)),
			app.WithRefreshTimeout(cfg.Actuator.RefreshWaitTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ActuatorService, error) {
		return do.MustInvoke[*app.ActuatorService](i), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ActuatorHandler, error) {
		svc := do.MustInvoke[ports.ActuatorService](i)
		return handlers.NewActuatorHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		actuatorH := do.MustInvoke[*handlers.ActuatorHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		chain := middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger,
				middleware.WithQuietPaths(cfg.Actuator.BasePath+"/health", "/metrics"),
			),
			middleware.Timeout(cfg.Server.WriteTimeout),
		)

		return adapthttp.NewRouter(actuatorH, cfg.Actuator.BasePath, metricsHandler, chain), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// dependencies holds the clients opened for dependency probes.
type dependencies struct {
	pool  *pgxpool.Pool
	redis redis.UniversalClient
}

// Close releases every opened client.
func (d *dependencies) Close(logger *slog.Logger) {
	if d.pool != nil {
		d.pool.Close()
	}
	if d.redis != nil {
		if err := d.redis.Close(); err != nil {
			logger.Error("redis close error", slog.Any("error", err))
		}
	}
}

// registerProbes opens the enabled dependency clients and registers a probe
// for each with the engine.
func registerProbes(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
	engine *health.Engine,
) (*dependencies, error) {
	deps := &dependencies{}

	if pc := cfg.Probes.Postgres; pc.Enabled {
		pool, err := probes.OpenPostgres(ctx, pc)
		if err != nil {
			return nil, err
		}
		deps.pool = pool
		engine.RegisterProbe("postgres",
			probes.NewPostgres(pool, probeOptions(pc.ProbeConfig, logger)...))
	}

	if rc := cfg.Probes.Redis; rc.Enabled {
		deps.redis = probes.OpenRedis(rc)
		engine.RegisterProbe("redis",
			probes.NewRedis(deps.redis, probeOptions(rc.ProbeConfig, logger)...))
	}

	if dc := cfg.Probes.Downstream; dc.Enabled {
		client := httpclient.New(&cfg.Client, dc.Name, metrics, logger)
		engine.RegisterProbe(dc.Name,
			probes.NewDownstream(client, dc.HealthPath, probeOptions(dc.ProbeConfig, logger)...))
	}

	logger.Info("probes registered", slog.Any("probes", probeNames(engine.Probes())))
	return deps, nil
}

func probeOptions(cfg config.ProbeConfig, logger *slog.Logger) []probes.Option {
	return append(probes.FromConfig(cfg), probes.WithLogger(logger))
}

func probeNames(entries []ports.NamedProbe) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

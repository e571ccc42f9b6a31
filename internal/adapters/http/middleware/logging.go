package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-actuator/internal/platform/logging"
)

// LoggingOption configures the Logging middleware.
type LoggingOption func(*loggingOptions)

type loggingOptions struct {
	quietPrefixes []string
}

// WithQuietPaths logs requests whose path starts with any of prefixes at
// debug level instead of info. Intended for orchestrator probes and metric
// scrapes, which arrive every few seconds.
func WithQuietPaths(prefixes ...string) LoggingOption {
	return func(o *loggingOptions) {
		o.quietPrefixes = append(o.quietPrefixes, prefixes...)
	}
}

func (o *loggingOptions) quiet(path string) bool {
	for _, p := range o.quietPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Logging returns middleware that logs request start and completion events.
// It creates a child logger enriched with the request ID and correlation ID
// from context, stores it via logging.WithLogger for downstream use, and
// logs completion with method, path, status code, bytes written and duration.
//
// Completed requests with a 5xx status other than 503 are logged at warn;
// 503 is the normal DOWN answer of the health endpoints.
func Logging(logger *slog.Logger, opts ...LoggingOption) func(http.Handler) http.Handler {
	o := &loggingOptions{}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			level := slog.LevelInfo
			if o.quiet(r.URL.Path) {
				level = slog.LevelDebug
			}

			child.Log(ctx, level, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if child.Enabled(ctx, slog.LevelDebug) {
				headerAttrs := RedactHeaders(r.Header)
				args := make([]any, 0, len(headerAttrs))
				for _, a := range headerAttrs {
					args = append(args, a)
				}
				child.DebugContext(ctx, "request headers", args...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			if rw.statusCode >= http.StatusInternalServerError && rw.statusCode != http.StatusServiceUnavailable {
				level = slog.LevelWarn
			}

			child.Log(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

package api

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"concertflow/pkg/clientid"
	tracing "concertflow/pkg/otel"
)

// traceMiddleware continues any incoming W3C trace and opens a request span.
func (h *Handlers) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		if h.tracer != nil {
			ctx = tracing.InjectTracing(ctx, h.tracer)
		}
		ctx, span := tracing.AddSpan(ctx, r.Method+" "+r.URL.Path)
		defer span.End()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// logMiddleware logs every completed request.
func (h *Handlers) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		h.log.Info(r.Context(), "request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"http_status", rec.status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_id", clientIDFromRequest(r),
		)
	})
}

// clientIDFromRequest returns the identifier the client sent, if any. Newly
// issued identifiers are logged by the issuer itself.
func clientIDFromRequest(r *http.Request) string {
	if c, err := r.Cookie(clientid.CookieName); err == nil {
		return c.Value
	}
	return ""
}

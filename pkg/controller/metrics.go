package controller

import (
	"fmt"
	"intake/pkg/metrics"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// unmatchedRoute labels requests no route pattern matched, keeping the
// attribute cardinality bounded.
const unmatchedRoute = "unmatched"

// Metrics records per-route request counts, latencies and body sizes.
type Metrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
	bodySize metric.Int64Histogram
}

func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter("intake/pkg/controller")

	requests, err := meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Number of handled HTTP requests."),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}

	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of handled HTTP requests."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.LatencyBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create request duration histogram: %w", err)
	}

	bodySize, err := meter.Int64Histogram("http.server.request.body.size",
		metric.WithDescription("Size of received HTTP request bodies."),
		metric.WithUnit("By"),
		metric.WithExplicitBucketBoundaries(metrics.SizeBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create request body size histogram: %w", err)
	}

	return &Metrics{
		requests: requests,
		duration: duration,
		bodySize: bodySize,
	}, nil
}

// Middleware must wrap the ServeMux directly: the route attribute is read
// from the pattern the mux stores on the request.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}
		attrs := metric.WithAttributes(
			attribute.String("http.request.method", r.Method),
			attribute.String("http.route", route),
			attribute.Int("http.response.status_code", rec.status),
		)
		m.requests.Add(r.Context(), 1, attrs)
		m.duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
		if r.ContentLength > 0 {
			m.bodySize.Record(r.Context(), r.ContentLength, attrs)
		}
	})
}

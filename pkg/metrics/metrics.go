// Package metrics holds the process-wide Prometheus collectors and the
// OpenTelemetry meter used by services.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// InstrumentationName scopes every otel instrument created by this service.
const InstrumentationName = "campaigner"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// HTTPRequestDuration observes handled requests by method, route pattern and status code.
var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
	Namespace: "campaigner",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "Duration of HTTP requests.",
	Buckets:   DefaultBuckets,
}, []string{"method", "route", "status"})

// Setup installs a global otel meter provider that exports through reg, so
// instruments obtained from Meter show up on the Prometheus endpoint.
func Setup(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	otel.SetMeterProvider(mp)

	return mp, nil
}

// Meter returns the service meter from the global provider. Before Setup it
// is a no-op meter.
func Meter() metric.Meter {
	return otel.Meter(InstrumentationName)
}

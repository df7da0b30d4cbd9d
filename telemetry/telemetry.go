package telemetry

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/awantoch/edgebridge/config"
	"github.com/awantoch/edgebridge/constants"
)

const tracerName = "github.com/awantoch/edgebridge"

var (
	loadTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edgebridge_load_total",
			Help: "Entry adapter load attempts by outcome.",
		},
		[]string{"outcome"},
	)
	loadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "edgebridge_load_duration_seconds",
			Help:    "Time spent resolving and binding the backend application.",
			Buckets: prometheus.DefBuckets,
		},
	)
	instanceInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "edgebridge_instance_info",
			Help: "Function instance bound to an application; always 1.",
		},
		[]string{"instance_id", "app"},
	)
)

func init() {
	prometheus.MustRegister(loadTotal, loadDuration, instanceInfo)
}

// Init sets up the tracing exporter based on config and returns a shutdown func.
// Supported exporters: "stdout", "otlp", "none". No tracing config means "none".
func Init(cfg *config.Config) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if cfg == nil || cfg.Tracing == nil {
		return noop, nil
	}
	serviceName := constants.ServiceName
	if cfg.Tracing.ServiceName != "" {
		serviceName = cfg.Tracing.ServiceName
	}
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
	if err != nil {
		// Schema URL conflicts between the SDK default and semconv are not fatal.
		res = resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName))
	}

	var exp sdktrace.SpanExporter
	switch strings.ToLower(cfg.Tracing.Exporter) {
	case constants.TracingExporterOTLP:
		var opts []otlptracehttp.Option
		if cfg.Tracing.Endpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpointURL(cfg.Tracing.Endpoint))
		}
		exp, err = otlptracehttp.New(context.Background(), opts...)
	case constants.TracingExporterStdout:
		exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	default:
		return noop, nil
	}
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

// Tracer returns the tracer used for adapter spans.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// ObserveLoad records one adapter load attempt.
func ObserveLoad(outcome string, d time.Duration) {
	loadTotal.WithLabelValues(outcome).Inc()
	loadDuration.Observe(d.Seconds())
}

// SetInstance marks the running function instance as bound to app.
func SetInstance(instanceID, app string) {
	instanceInfo.WithLabelValues(instanceID, app).Set(1)
}

// MetricsHandler returns the Prometheus metrics endpoint handler.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/adrianliechti/txtai/pkg/client"

// Metrics holds the prometheus collectors shared by all services built with
// WithMetrics. Failed operations are counted as transport_error or
// response_error.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics registers the client metrics on reg. Calling it again with the
// same registerer returns metrics backed by the collectors already there.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	operations, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "txtai_client_operations_total",
		Help: "Total client operations by endpoint and status.",
	}, []string{"operation", "status"}))

	if err != nil {
		return nil, fmt.Errorf("operations metric: %w", err)
	}

	// model backed endpoints range from milliseconds to tens of seconds
	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "txtai_client_operation_duration_seconds",
		Help:    "Client operation duration in seconds.",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 14),
	}, []string{"operation"}))

	if err != nil {
		return nil, fmt.Errorf("duration metric: %w", err)
	}

	return &Metrics{
		operations: operations,
		duration:   duration,
	}, nil
}

func (m *Metrics) record(op string, err error, dur time.Duration) {
	m.operations.WithLabelValues(op, outcome(err)).Inc()
	m.duration.WithLabelValues(op).Observe(dur.Seconds())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"

	case errors.Is(err, ErrTransport):
		return "transport_error"

	case errors.Is(err, ErrResponse):
		return "response_error"

	default:
		return "error"
	}
}

// register adds c to reg, or returns the equal collector registered before.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	err := reg.Register(c)

	var registered prometheus.AlreadyRegisteredError

	if err == nil || !errors.As(err, &registered) {
		return c, err
	}

	existing, ok := registered.ExistingCollector.(T)

	if !ok {
		return c, fmt.Errorf("registered as %T", registered.ExistingCollector)
	}

	return existing, nil
}

type observer struct {
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

func newObserver(cfg *RequestConfig) *observer {
	o := &observer{
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}

	if cfg.Tracing {
		o.tracer = otel.Tracer(tracerName)
	}

	return o
}

// observe starts an operation and returns the function that completes it.
func (o *observer) observe(ctx context.Context, op string) (context.Context, func(error)) {
	start := time.Now()

	var span trace.Span

	if o.tracer != nil {
		ctx, span = o.tracer.Start(ctx, "txtai."+op,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(attribute.String("txtai.operation", op)),
		)
	}

	return ctx, func(err error) {
		dur := time.Since(start)

		if span != nil {
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}

			span.End()
		}

		if o.metrics != nil {
			o.metrics.record(op, err, dur)
		}

		if o.logger != nil {
			if err != nil {
				o.logger.Warn("operation failed",
					"op", op,
					"outcome", outcome(err),
					"duration", dur,
					"error", err,
				)
			} else {
				o.logger.Debug("operation completed",
					"op", op,
					"duration", dur,
				)
			}
		}
	}
}

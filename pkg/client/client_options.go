package client

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"
)

// RequestConfig is the resolved configuration of a single call. It is built
// from the service options plus the per-call options and never mutated after.
type RequestConfig struct {
	URL   string
	Token string

	Client *http.Client

	Logger  *slog.Logger
	Metrics *Metrics
	Limiter *rate.Limiter

	Tracing bool
}

type RequestOption func(*RequestConfig)

func WithURL(url string) RequestOption {
	return func(c *RequestConfig) {
		c.URL = url
	}
}

// WithToken sets the bearer credential. An empty token sends no
// Authorization header at all.
func WithToken(token string) RequestOption {
	return func(c *RequestConfig) {
		c.Token = token
	}
}

func WithClient(client *http.Client) RequestOption {
	return func(c *RequestConfig) {
		c.Client = client
	}
}

// WithLogger enables structured logging of operations. Pass nil to disable (default).
func WithLogger(logger *slog.Logger) RequestOption {
	return func(c *RequestConfig) {
		c.Logger = logger
	}
}

// WithMetrics records operation counts and durations, see NewMetrics.
func WithMetrics(m *Metrics) RequestOption {
	return func(c *RequestConfig) {
		c.Metrics = m
	}
}

// WithLimiter makes every request wait for the limiter before it is sent.
func WithLimiter(l *rate.Limiter) RequestOption {
	return func(c *RequestConfig) {
		c.Limiter = l
	}
}

// WithTracing instruments the HTTP transport with OpenTelemetry and opens
// a span per operation using the global tracer provider.
func WithTracing() RequestOption {
	return func(c *RequestConfig) {
		c.Tracing = true
	}
}

package config

import (
	"github.com/adrianliechti/txtai/pkg/client"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// Options converts the config into client request options. Metrics are
// registered on the default prometheus registerer.
func (c *Config) Options() ([]client.RequestOption, error) {
	options := []client.RequestOption{
		client.WithURL(c.URL),
	}

	if c.Token != "" {
		options = append(options, client.WithToken(c.Token))
	}

	if c.RateLimit > 0 {
		burst := c.Burst

		if burst <= 0 {
			burst = 1
		}

		options = append(options, client.WithLimiter(rate.NewLimiter(rate.Limit(c.RateLimit), burst)))
	}

	if c.Tracing {
		options = append(options, client.WithTracing())
	}

	if c.Metrics {
		m, err := client.NewMetrics(prometheus.DefaultRegisterer)

		if err != nil {
			return nil, err
		}

		options = append(options, client.WithMetrics(m))
	}

	return options, nil
}

func (c *Config) Client(opts ...client.RequestOption) (*client.Client, error) {
	options, err := c.Options()

	if err != nil {
		return nil, err
	}

	return client.New(c.URL, append(options, opts...)...), nil
}

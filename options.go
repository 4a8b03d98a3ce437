package extern

import (
	"log/slog"

	"github.com/hashicorp/go-metrics"
)

type config struct {
	logHandler   slog.Handler
	msink        metrics.MetricSink
	metricLabels []metrics.Label
	platform     Platform
	compat       bool
	ticker       Ticker
	fallback     FallbackFunc
	distList     bool
}

// Option to pass to `New`.
type Option func(*config) error

// WithLog specifies which `slog.Handler` to use.
func WithLog(handler slog.Handler) Option {
	return func(c *config) error {
		c.logHandler = handler
		return nil
	}
}

// WithMetricSink allows you to choose how to collect the metrics emitted by
// the object.
func WithMetricSink(ms metrics.MetricSink) Option {
	return func(c *config) error {
		if ms == nil {
			ms = &metrics.BlackholeSink{}
		}
		c.msink = ms
		return nil
	}
}

// WithMetricLabels adds static labels to all metrics produced by the object.
func WithMetricLabels(labels []metrics.Label) Option {
	return func(c *config) error {
		c.metricLabels = labels
		return nil
	}
}

// WithPlatform selects the host family descriptor. Defaults to PlatformPd.
func WithPlatform(pl Platform) Option {
	return func(c *config) error {
		c.platform = pl
		return nil
	}
}

// WithCompatibility restricts behavior to what is valid on every host
// family. On by default; the flag is fixed at construction and read-only
// afterwards.
func WithCompatibility(compat bool) Option {
	return func(c *config) error {
		c.compat = compat
		return nil
	}
}

// WithTicker wires the host's tick primitive used to schedule Drain on the
// host thread whenever queued work is pending. Without one, the host glue
// must call Drain itself.
func WithTicker(t Ticker) Option {
	return func(c *config) error {
		c.ticker = t
		return nil
	}
}

// WithFallback replaces the handler of last resort for messages no
// registered entry consumed.
func WithFallback(f FallbackFunc) Option {
	return func(c *config) error {
		c.fallback = f
		return nil
	}
}

// WithListDistribution enables Max-style spreading of inlet-0 lists over
// the message inlets.
func WithListDistribution(d bool) Option {
	return func(c *config) error {
		c.distList = d
		return nil
	}
}

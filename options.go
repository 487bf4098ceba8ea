package brepgo

import (
	"github.com/hupe1980/brepgo/algo"
	"github.com/hupe1980/brepgo/store"
	"github.com/hupe1980/brepgo/topology"
)

type options struct {
	name             string
	logger           *Logger
	metricsCollector MetricsCollector
	storeOptions     []store.Option
	checkOptions     []topology.Option
	revolveSteps     int
}

// Option configures a Model.
type Option func(*options)

// WithName tags every log record of the model with a "model" field.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &brepgo.BasicMetricsCollector{}
//	m := brepgo.New(brepgo.WithMetricsCollector(metrics))
//	// ... perform operations ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithCapacity pre-sizes the entity store. It is a performance hint only.
func WithCapacity(vertices, edges, faces int) Option {
	return func(o *options) {
		o.storeOptions = append(o.storeOptions, store.WithCapacity(vertices, edges, faces))
	}
}

// WithCheckConcurrency bounds the number of topology checks running at once.
// Values below 1 mean no limit.
func WithCheckConcurrency(n int) Option {
	return func(o *options) {
		o.checkOptions = append(o.checkOptions, topology.WithConcurrency(n))
	}
}

// WithRevolveSteps sets the default number of angular steps for revolves.
// A per-call algo.WithSteps takes precedence.
func WithRevolveSteps(n int) Option {
	return func(o *options) {
		o.revolveSteps = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		revolveSteps: algo.DefaultRevolveSteps,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.name != "" {
		o.logger = o.logger.WithModel(o.name)
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	return o
}

// SPDX-License-Identifier: EPL-2.0

// Package observe holds the OpenTelemetry metric instruments recorded by the
// engine.
//
// Instruments are created from a [metric.MeterProvider]. [DefaultMetrics]
// uses the global provider, which records nothing until an application
// installs one; tests should use [NewMetrics] with their own provider.
package observe

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all soxe metrics.
const meterName = "github.com/ik5/soxe"

// Operation outcomes used as the status attribute.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Sample flow directions used as the direction attribute.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// Metrics holds the engine's metric instruments. All fields are safe for
// concurrent use.
type Metrics struct {
	// Operations counts engine operations. Use with attributes:
	//   attribute.String("op", ...), attribute.String("status", ...)
	Operations metric.Int64Counter

	// Samples counts samples moved by an operation. Use with attributes:
	//   attribute.String("op", ...), attribute.String("direction", ...)
	Samples metric.Int64Counter

	// OperationDuration tracks wall time per operation. Use with attribute:
	//   attribute.String("op", ...)
	OperationDuration metric.Float64Histogram
}

// durationBuckets are histogram boundaries in seconds, from a short clip
// to a long recording.
var durationBuckets = []float64{
	0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 60,
}

// NewMetrics creates every instrument on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Operations, err = m.Int64Counter("soxe.operations",
		metric.WithDescription("Engine operations by operation and status."),
	); err != nil {
		return nil, err
	}
	if met.Samples, err = m.Int64Counter("soxe.samples",
		metric.WithDescription("Samples read and written by operation."),
	); err != nil {
		return nil, err
	}
	if met.OperationDuration, err = m.Float64Histogram("soxe.operation.duration",
		metric.WithDescription("Wall time of engine operations."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBuckets...),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, created on
// first call from [otel.GetMeterProvider].
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordOperation counts one finished operation and its duration.
func (m *Metrics) RecordOperation(ctx context.Context, op, status string, elapsed time.Duration) {
	m.Operations.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("op", op),
			attribute.String("status", status),
		),
	)
	m.OperationDuration.Record(ctx, elapsed.Seconds(),
		metric.WithAttributes(attribute.String("op", op)),
	)
}

// RecordSamples adds n samples moved in direction by op. Zero is not
// recorded.
func (m *Metrics) RecordSamples(ctx context.Context, op, direction string, n int64) {
	if n <= 0 {
		return
	}
	m.Samples.Add(ctx, n,
		metric.WithAttributes(
			attribute.String("op", op),
			attribute.String("direction", direction),
		),
	)
}

package xdict

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

const (
	instrumentationName = "github.com/omeyang/xvalue/pkg/util/xdict"

	metricEntries = "xvalue.dict.entries"
	metricRefs    = "xvalue.dict.refs"
)

// registerMetrics 注册条目数与引用数 Gauge，回调中读取原子计数，不加锁。
func registerMetrics(provider metric.MeterProvider, d *dictImpl) (metric.Registration, error) {
	meter := provider.Meter(instrumentationName)

	entries, err := meter.Int64ObservableGauge(
		metricEntries,
		metric.WithDescription("live interned entries"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegisterMetrics, err)
	}
	refs, err := meter.Int64ObservableGauge(
		metricRefs,
		metric.WithDescription("live references to interned entries"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegisterMetrics, err)
	}

	reg, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(entries, d.entryCount.Load())
		o.ObserveInt64(refs, d.refCount.Load())
		return nil
	}, entries, refs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegisterMetrics, err)
	}
	return reg, nil
}

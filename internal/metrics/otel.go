package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// =============================================================================
// 📡 OpenTelemetry 指标
// =============================================================================

// Instruments 通过 OTel MeterProvider 记录与 Collector 相同的调用指标，
// 由 telemetry 包配置的 OTLP exporter 导出。
type Instruments struct {
	requests     metric.Int64Counter
	duration     metric.Float64Histogram
	responseSize metric.Int64Histogram
}

// NewInstruments 在 mp 的 scope 下创建计数器与直方图
func NewInstruments(mp metric.MeterProvider, scope string) (*Instruments, error) {
	meter := mp.Meter(scope)

	requests, err := meter.Int64Counter("nextleg.client.requests",
		metric.WithDescription("Total number of API requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create requests counter: %w", err)
	}

	duration, err := meter.Float64Histogram("nextleg.client.request.duration",
		metric.WithDescription("API request duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60, 300),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	size, err := meter.Int64Histogram("nextleg.client.response.size",
		metric.WithDescription("API response size"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("create response size histogram: %w", err)
	}

	return &Instruments{requests: requests, duration: duration, responseSize: size}, nil
}

// RecordRequest 记录一次 API 调用，语义同 Collector.RecordRequest
func (i *Instruments) RecordRequest(ctx context.Context, operation, method string, status int, duration time.Duration, responseSize int64) {
	op := attribute.String("operation", operation)
	i.requests.Add(ctx, 1, metric.WithAttributes(
		op,
		attribute.String("method", method),
		attribute.String("status", StatusClass(status)),
	))
	i.duration.Record(ctx, duration.Seconds(), metric.WithAttributes(op))
	if status != 0 {
		i.responseSize.Record(ctx, responseSize, metric.WithAttributes(op))
	}
}

package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Quote outcome attribute values.
const (
	OutcomeQuoted   = "quoted"
	OutcomeRejected = "rejected"
)

// QuoteMetrics holds pricing metrics.
type QuoteMetrics struct {
	quotes metric.Int64Counter
	totals metric.Int64Histogram
}

// NewQuoteMetrics creates pricing metrics on the global meter provider.
// With telemetry disabled the global provider is a noop.
func NewQuoteMetrics() (*QuoteMetrics, error) {
	meter := otel.Meter(instrumentationName)

	quotes, err := meter.Int64Counter(
		"delivery.quotes",
		metric.WithDescription("Number of delivery quote calculations by outcome"),
	)
	if err != nil {
		return nil, err
	}

	totals, err := meter.Int64Histogram(
		"delivery.quote.total",
		metric.WithDescription("Distribution of quoted delivery prices"),
		metric.WithExplicitBucketBoundaries(400, 500, 600, 700, 800, 1000),
	)
	if err != nil {
		return nil, err
	}

	return &QuoteMetrics{quotes: quotes, totals: totals}, nil
}

// RecordQuote records a successful quote. Safe on a nil receiver.
func (m *QuoteMetrics) RecordQuote(ctx context.Context, size string, total int) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("outcome", OutcomeQuoted),
		attribute.String("size", size),
	)

	m.quotes.Add(ctx, 1, attrs)
	m.totals.Record(ctx, int64(total), metric.WithAttributes(attribute.String("size", size)))
}

// RecordRejection records a quote rejected for the given field. Safe on a nil receiver.
func (m *QuoteMetrics) RecordRejection(ctx context.Context, field string) {
	if m == nil {
		return
	}

	m.quotes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", OutcomeRejected),
		attribute.String("field", field),
	))
}

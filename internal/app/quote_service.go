// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture: it coordinates
// domain logic and infrastructure through ports.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/delivery-cost-service/internal/domain"
	"github.com/jsamuelsen/delivery-cost-service/internal/platform/logging"
	"github.com/jsamuelsen/delivery-cost-service/internal/platform/telemetry"
	"github.com/jsamuelsen/delivery-cost-service/internal/ports"
)

// DefaultBatchWorkers is the default number of concurrent calculations per batch.
const DefaultBatchWorkers = 4

var _ ports.DeliveryQuoter = (*DeliveryQuoteService)(nil)

// DeliveryQuoteService orchestrates delivery pricing use cases.
type DeliveryQuoteService struct {
	exec    *Executor
	logger  *slog.Logger
	metrics *telemetry.QuoteMetrics
	workers int
}

// DeliveryQuoteServiceConfig contains configuration for the quote service.
type DeliveryQuoteServiceConfig struct {
	Logger *slog.Logger

	// Metrics is optional; nil disables quote metrics.
	Metrics *telemetry.QuoteMetrics

	// BatchWorkers bounds concurrent calculations in QuoteBatch.
	// Zero or negative selects DefaultBatchWorkers.
	BatchWorkers int
}

// NewDeliveryQuoteService creates a new quote service.
func NewDeliveryQuoteService(cfg DeliveryQuoteServiceConfig) *DeliveryQuoteService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "app.DeliveryQuoteService"))

	workers := cfg.BatchWorkers
	if workers <= 0 {
		workers = DefaultBatchWorkers
	}

	return &DeliveryQuoteService{
		exec:    NewExecutor(logger),
		logger:  logger,
		metrics: cfg.Metrics,
		workers: workers,
	}
}

// Quote prices a single delivery request.
// Rule violations are returned as *domain.InvalidInputError.
func (s *DeliveryQuoteService) Quote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error) {
	logger := logging.FromContextOr(ctx, s.logger)

	logger.DebugContext(ctx, "calculating delivery quote",
		slog.Float64("distance_km", req.DistanceKm),
		slog.String("size", string(req.Size)),
		slog.Bool("fragile", req.Fragile),
		slog.String("load_level", string(req.LoadLevel)),
	)

	quote, err := Execute(ctx, s.exec, quoteOperation, req)
	if err != nil {
		var invalid *domain.InvalidInputError
		if errors.As(err, &invalid) {
			s.metrics.RecordRejection(ctx, invalid.Field)
			logger.InfoContext(ctx, "delivery quote rejected",
				slog.String("field", invalid.Field),
				slog.String("reason", invalid.Message),
			)

			return nil, invalid
		}

		logger.ErrorContext(ctx, "delivery quote failed", slog.Any("error", err))

		return nil, fmt.Errorf("quoting delivery: %w", err)
	}

	s.metrics.RecordQuote(ctx, string(quote.Request.Size), quote.Total)

	logger.InfoContext(ctx, "delivery quote calculated",
		slog.Int("subtotal", quote.Subtotal),
		slog.Int("total", quote.Total),
		slog.Float64("load_factor", quote.LoadFactor),
		slog.Bool("minimum_applied", quote.MinimumApplied),
	)

	return quote, nil
}

// QuoteBatch prices independent requests concurrently.
// One outcome is returned per request, in input order; a failing item does
// not affect the others.
func (s *DeliveryQuoteService) QuoteBatch(ctx context.Context, reqs []domain.QuoteRequest) []domain.QuoteOutcome {
	fns := make([]func(context.Context) (*domain.Quote, error), len(reqs))
	for i, req := range reqs {
		fns[i] = func(ctx context.Context) (*domain.Quote, error) {
			return s.Quote(ctx, req)
		}
	}

	results := ParallelPartialLimit(ctx, s.workers, fns...)

	outcomes := make([]domain.QuoteOutcome, len(results))
	rejected := 0

	for i, r := range results {
		outcomes[i] = domain.QuoteOutcome{Quote: r.Value, Err: r.Err}
		if r.Err != nil {
			rejected++
		}
	}

	logging.FromContextOr(ctx, s.logger).InfoContext(ctx, "delivery quote batch completed",
		slog.Int("items", len(reqs)),
		slog.Int("rejected", rejected),
	)

	return outcomes
}

var quoteOperation = Operation[domain.QuoteRequest, *domain.Quote, *domain.Quote]{
	Name: "quote_delivery",
	Validate: func(ctx context.Context, _ domain.QuoteRequest) error {
		return ctx.Err()
	},
	Perform: func(_ context.Context, req domain.QuoteRequest) (*domain.Quote, error) {
		return domain.NewQuote(req)
	},
	Verify: func(_ context.Context, _ domain.QuoteRequest, q *domain.Quote) error {
		return verifyQuote(q)
	},
	Respond: func(_ context.Context, _ domain.QuoteRequest, q *domain.Quote) (*domain.Quote, error) {
		return q, nil
	},
}

// verifyQuote checks a computed quote against the pricing invariants.
func verifyQuote(q *domain.Quote) error {
	if q == nil {
		return errors.New("no quote computed")
	}

	sum := 0
	for _, s := range q.Supplements {
		sum += s.Amount
	}

	switch {
	case sum != q.Subtotal:
		return fmt.Errorf("supplements sum to %d, subtotal is %d", sum, q.Subtotal)
	case q.Total < domain.MinimumPrice:
		return fmt.Errorf("total %d below minimum %d", q.Total, domain.MinimumPrice)
	case q.Total != max(q.Subtotal, domain.MinimumPrice):
		return fmt.Errorf("total %d does not match subtotal %d", q.Total, q.Subtotal)
	}

	return nil
}

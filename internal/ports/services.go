// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrInvalidInput)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/jsamuelsen/delivery-cost-service/internal/domain"
)

// DeliveryQuoter prices delivery requests.
// Inbound adapters (HTTP handlers) depend on this port rather than on the
// application service directly.
type DeliveryQuoter interface {
	// Quote prices a single request.
	// Returns domain.ErrInvalidInput if the request violates a pricing rule.
	Quote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error)

	// QuoteBatch prices several independent requests.
	// The result has one outcome per request, in input order.
	QuoteBatch(ctx context.Context, reqs []domain.QuoteRequest) []domain.QuoteOutcome
}

package app

import (
	"context"
	"fmt"

	"github.com/jsamuelsen/delivery-cost-service/internal/domain"
	"github.com/jsamuelsen/delivery-cost-service/internal/ports"
)

var _ ports.HealthChecker = (*RulesChecker)(nil)

// canary is a request with a known price. A zero expected total means the
// request must be rejected as invalid input.
type canary struct {
	name     string
	req      domain.QuoteRequest
	expected int
}

var defaultCanaries = []canary{
	{
		name:     "short hop floors to minimum",
		req:      domain.QuoteRequest{DistanceKm: 1, Size: domain.SizeSmall, LoadLevel: domain.LoadNormal},
		expected: domain.MinimumPrice,
	},
	{
		name:     "fragile within limit",
		req:      domain.QuoteRequest{DistanceKm: 29, Size: domain.SizeSmall, Fragile: true, LoadLevel: domain.LoadNormal},
		expected: 600,
	},
	{
		name:     "fragile large under peak load",
		req:      domain.QuoteRequest{DistanceKm: 20, Size: domain.SizeLarge, Fragile: true, LoadLevel: domain.LoadVeryHigh},
		expected: 700,
	},
	{
		name: "fragile beyond limit",
		req:  domain.QuoteRequest{DistanceKm: 31, Size: domain.SizeSmall, Fragile: true, LoadLevel: domain.LoadNormal},
	},
}

// RulesChecker is a readiness check that prices a fixed set of canary
// requests and fails if any result drifts from its known value.
type RulesChecker struct {
	canaries []canary
}

// NewRulesChecker creates a checker over the built-in canaries.
func NewRulesChecker() *RulesChecker {
	return &RulesChecker{canaries: defaultCanaries}
}

// Name implements ports.HealthChecker.
func (c *RulesChecker) Name() string {
	return "pricing-rules"
}

// Check implements ports.HealthChecker.
func (c *RulesChecker) Check(ctx context.Context) error {
	fns := make([]func(context.Context) (struct{}, error), len(c.canaries))
	for i, cn := range c.canaries {
		fns[i] = func(ctx context.Context) (struct{}, error) {
			return struct{}{}, cn.verify(ctx)
		}
	}

	_, err := Parallel(ctx, fns...)

	return err
}

func (cn canary) verify(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	got, err := domain.Calculate(cn.req.DistanceKm, cn.req.Size, cn.req.Fragile, cn.req.LoadLevel)

	if cn.expected == 0 {
		if !domain.IsInvalidInput(err) {
			return fmt.Errorf("canary %q: expected invalid input, got total %d (err: %v)", cn.name, got, err)
		}

		return nil
	}

	if err != nil {
		return fmt.Errorf("canary %q: %w", cn.name, err)
	}

	if got != cn.expected {
		return fmt.Errorf("canary %q: got %d, want %d", cn.name, got, cn.expected)
	}

	return nil
}

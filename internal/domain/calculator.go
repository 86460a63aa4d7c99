package domain

import "math"

// Pricing rule constants.
const (
	// MinimumPrice is the lowest total a quote can have.
	MinimumPrice = 400

	// FragileDistanceLimitKm is the longest distance a fragile shipment may travel.
	FragileDistanceLimitKm = 30.0
)

// Supplement rule names.
const (
	RuleDistance = "distance"
	RuleSize     = "size"
	RuleFragile  = "fragile"
)

// supplementRule computes one additive component of a quote.
type supplementRule func(req QuoteRequest) (Supplement, error)

// supplementRules are evaluated in order; the first failure aborts the quote.
var supplementRules = []supplementRule{
	distanceSupplement,
	sizeSupplement,
	fragileSupplement,
}

// Calculate returns the delivery price for the given inputs.
// It fails with an InvalidInputError on a non-positive or non-finite distance,
// an unknown size category, or a fragile shipment beyond FragileDistanceLimitKm.
//
// size and load must be canonical values. Callers holding raw labels,
// including the legacy ones such as "маленькие", normalize them with
// ParseSize and ParseLoadLevel first.
func Calculate(distanceKm float64, size Size, fragile bool, load LoadLevel) (int, error) {
	q, err := NewQuote(QuoteRequest{
		DistanceKm: distanceKm,
		Size:       size,
		Fragile:    fragile,
		LoadLevel:  load,
	})
	if err != nil {
		return 0, err
	}

	return q.Total, nil
}

// NewQuote computes a quote with its breakdown.
//
// The load factor is resolved and reported but does not scale the billed
// total: the subtotal is billed as-is, floored at MinimumPrice.
func NewQuote(req QuoteRequest) (*Quote, error) {
	q := &Quote{
		Request:     req,
		Supplements: make([]Supplement, 0, len(supplementRules)),
		LoadFactor:  LoadFactor(req.LoadLevel),
	}

	for _, rule := range supplementRules {
		s, err := rule(req)
		if err != nil {
			return nil, err
		}

		q.Supplements = append(q.Supplements, s)
		q.Subtotal += s.Amount
	}

	q.Total = q.Subtotal
	if q.Total < MinimumPrice {
		q.Total = MinimumPrice
		q.MinimumApplied = true
	}

	return q, nil
}

// LoadFactor returns the demand factor for a load level.
// Unrecognized levels map to 1.0.
func LoadFactor(level LoadLevel) float64 {
	switch level {
	case LoadVeryHigh:
		return 1.6
	case LoadHigh:
		return 1.4
	case LoadElevated:
		return 1.2
	default:
		return 1.0
	}
}

func distanceSupplement(req QuoteRequest) (Supplement, error) {
	d := req.DistanceKm
	if math.IsInf(d, 0) {
		return Supplement{}, NewInvalidInputError(FieldDistance, "invalid distance")
	}

	var amount int

	switch {
	case d > 30:
		amount = 300
	case d > 10:
		amount = 200
	case d > 2:
		amount = 100
	case d > 0:
		amount = 50
	default:
		// Also catches NaN.
		return Supplement{}, NewInvalidInputError(FieldDistance, "invalid distance")
	}

	return Supplement{Rule: RuleDistance, Amount: amount}, nil
}

func sizeSupplement(req QuoteRequest) (Supplement, error) {
	switch req.Size {
	case SizeLarge:
		return Supplement{Rule: RuleSize, Amount: 200}, nil
	case SizeSmall:
		return Supplement{Rule: RuleSize, Amount: 100}, nil
	default:
		return Supplement{}, NewInvalidInputErrorWithValue(FieldSize, "unknown size category", string(req.Size))
	}
}

// fragileSupplement checks the raw distance, independent of the distance bracket.
func fragileSupplement(req QuoteRequest) (Supplement, error) {
	if !req.Fragile {
		return Supplement{Rule: RuleFragile, Amount: 0}, nil
	}

	if req.DistanceKm > FragileDistanceLimitKm {
		return Supplement{}, NewInvalidInputError(FieldFragile, "fragile shipments cannot travel beyond 30 km")
	}

	return Supplement{Rule: RuleFragile, Amount: 300}, nil
}

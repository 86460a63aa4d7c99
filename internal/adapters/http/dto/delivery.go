package dto

import (
	"github.com/jsamuelsen/delivery-cost-service/internal/domain"
)

// QuoteRequest is the HTTP request for a single delivery quote. It binds from
// a JSON body or from query parameters.
type QuoteRequest struct {
	// DistanceKm is a pointer so that an absent value fails validation while
	// zero reaches the calculator and is rejected as an invalid distance.
	DistanceKm *float64 `json:"distance_km" form:"distance_km" validate:"required"`
	Size       string   `json:"size"        form:"size"        validate:"required,notblank"`
	Fragile    bool     `json:"fragile"     form:"fragile"`
	LoadLevel  string   `json:"load_level"  form:"load_level"`
}

// ToDomain converts the request, normalizing size and load labels.
func (r *QuoteRequest) ToDomain() domain.QuoteRequest {
	var distance float64
	if r.DistanceKm != nil {
		distance = *r.DistanceKm
	}

	return domain.QuoteRequest{
		DistanceKm: distance,
		Size:       domain.ParseSize(r.Size),
		Fragile:    r.Fragile,
		LoadLevel:  domain.ParseLoadLevel(r.LoadLevel),
	}
}

// BatchQuoteRequest is the HTTP request for several independent quotes.
type BatchQuoteRequest struct {
	Items []QuoteRequest `json:"items" validate:"required,min=1,dive"`
}

// ToDomain converts every item in order.
func (r *BatchQuoteRequest) ToDomain() []domain.QuoteRequest {
	reqs := make([]domain.QuoteRequest, len(r.Items))
	for i := range r.Items {
		reqs[i] = r.Items[i].ToDomain()
	}

	return reqs
}

// SupplementResponse is one priced component of a quote.
type SupplementResponse struct {
	Rule   string `json:"rule"`
	Amount int    `json:"amount"`
}

// QuoteResponse is the HTTP response for a computed quote.
type QuoteResponse struct {
	DistanceKm     float64              `json:"distance_km"`
	Size           string               `json:"size"`
	Fragile        bool                 `json:"fragile"`
	LoadLevel      string               `json:"load_level"`
	Supplements    []SupplementResponse `json:"supplements"`
	Subtotal       int                  `json:"subtotal"`
	LoadFactor     float64              `json:"load_factor"`
	MinimumApplied bool                 `json:"minimum_applied"`
	Total          int                  `json:"total"`
}

// NewQuoteResponse converts a domain quote to its HTTP representation.
func NewQuoteResponse(q *domain.Quote) *QuoteResponse {
	supplements := make([]SupplementResponse, len(q.Supplements))
	for i, s := range q.Supplements {
		supplements[i] = SupplementResponse{Rule: s.Rule, Amount: s.Amount}
	}

	return &QuoteResponse{
		DistanceKm:     q.Request.DistanceKm,
		Size:           string(q.Request.Size),
		Fragile:        q.Request.Fragile,
		LoadLevel:      string(q.Request.LoadLevel),
		Supplements:    supplements,
		Subtotal:       q.Subtotal,
		LoadFactor:     q.LoadFactor,
		MinimumApplied: q.MinimumApplied,
		Total:          q.Total,
	}
}

// BatchItemResponse is the result of one batch item: a quote or an error.
type BatchItemResponse struct {
	Index int            `json:"index"`
	Quote *QuoteResponse `json:"quote,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// BatchQuoteResponse is the HTTP response for a batch quote request.
type BatchQuoteResponse struct {
	Items    []BatchItemResponse `json:"items"`
	Quoted   int                 `json:"quoted"`
	Rejected int                 `json:"rejected"`
}

// NewBatchQuoteResponse converts batch outcomes, mapping each failure the
// same way a single request would be mapped.
func NewBatchQuoteResponse(outcomes []domain.QuoteOutcome) *BatchQuoteResponse {
	resp := &BatchQuoteResponse{Items: make([]BatchItemResponse, len(outcomes))}

	for i, o := range outcomes {
		item := BatchItemResponse{Index: i}

		if o.Err != nil {
			_, errResp := MapDomainError(o.Err)
			item.Error = &errResp.Error
			resp.Rejected++
		} else {
			item.Quote = NewQuoteResponse(o.Quote)
			resp.Quoted++
		}

		resp.Items[i] = item
	}

	return resp
}

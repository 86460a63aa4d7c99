package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/delivery-cost-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/delivery-cost-service/internal/ports"
)

// DefaultMaxBatchItems bounds batch requests when no limit is configured.
const DefaultMaxBatchItems = 100

// DeliveryHandler handles delivery quote endpoints.
type DeliveryHandler struct {
	quoter   ports.DeliveryQuoter
	maxBatch int
}

// NewDeliveryHandler creates a delivery handler. A maxBatch below 1 selects
// DefaultMaxBatchItems.
func NewDeliveryHandler(quoter ports.DeliveryQuoter, maxBatch int) *DeliveryHandler {
	if maxBatch < 1 {
		maxBatch = DefaultMaxBatchItems
	}

	return &DeliveryHandler{
		quoter:   quoter,
		maxBatch: maxBatch,
	}
}

// PostQuote handles POST /api/v1/delivery/quote.
//
// @Summary Quote a delivery
// @Tags delivery
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Delivery parameters"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/delivery/quote [post]
func (h *DeliveryHandler) PostQuote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	h.quote(c, &req)
}

// GetQuote handles GET /api/v1/delivery/quote with the request fields as
// query parameters.
//
// @Summary Quote a delivery from query parameters
// @Tags delivery
// @Produce json
// @Param distance_km query number true "Distance in kilometers"
// @Param size query string true "SMALL or LARGE"
// @Param fragile query bool false "Fragile shipment"
// @Param load_level query string false "NORMAL, ELEVATED, HIGH or VERY_HIGH"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/delivery/quote [get]
func (h *DeliveryHandler) GetQuote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	h.quote(c, &req)
}

func (h *DeliveryHandler) quote(c *gin.Context, req *dto.QuoteRequest) {
	quote, err := h.quoter.Quote(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// PostBatch handles POST /api/v1/delivery/quotes/batch. Items are priced
// independently; per-item failures are reported inline with status 200.
//
// @Summary Quote several deliveries
// @Tags delivery
// @Accept json
// @Produce json
// @Param request body dto.BatchQuoteRequest true "Batch items"
// @Success 200 {object} dto.BatchQuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/delivery/quotes/batch [post]
func (h *DeliveryHandler) PostBatch(c *gin.Context) {
	var req dto.BatchQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	if len(req.Items) > h.maxBatch {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
			dto.ErrorCodeValidation,
			"request validation failed",
			map[string]string{"items": "must contain at most " + strconv.Itoa(h.maxBatch) + " items"},
		).WithTraceID(dto.GetTraceID(c)))
		return
	}

	outcomes := h.quoter.QuoteBatch(c.Request.Context(), req.ToDomain())

	c.JSON(http.StatusOK, dto.NewBatchQuoteResponse(outcomes))
}

// RegisterDeliveryRoutes registers the delivery routes on rg. Extra handlers
// in batchGuards run before the batch endpoint only.
func (h *DeliveryHandler) RegisterDeliveryRoutes(rg *gin.RouterGroup, batchGuards ...gin.HandlerFunc) {
	delivery := rg.Group("/delivery")
	delivery.POST("/quote", h.PostQuote)
	delivery.GET("/quote", h.GetQuote)
	delivery.POST("/quotes/batch", append(batchGuards, h.PostBatch)...)
}

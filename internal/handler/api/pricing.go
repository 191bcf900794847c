package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "github.com/bk376/fuelflow-pos/internal/handler/dto/request"
	resdto "github.com/bk376/fuelflow-pos/internal/handler/dto/response"
	"github.com/bk376/fuelflow-pos/internal/handler/httperr"
	"github.com/bk376/fuelflow-pos/internal/pkg/errs"
	"github.com/bk376/fuelflow-pos/internal/usecase/commands"
	"github.com/bk376/fuelflow-pos/internal/usecase/queries"
)

type PricingHandler struct {
	pricingCommands commands.PricingCommands
	pricingQueries  queries.PricingQueries
}

func NewPricingHandler(pricingCommands commands.PricingCommands, pricingQueries queries.PricingQueries) *PricingHandler {
	return &PricingHandler{
		pricingCommands: pricingCommands,
		pricingQueries:  pricingQueries,
	}
}

func (h *PricingHandler) UpdatePrices(c *gin.Context) {
	var req reqdto.UpdatePricesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	updates := make([]commands.PriceUpdateInput, len(req.Prices))
	for i, p := range req.Prices {
		updates[i] = commands.PriceUpdateInput{
			ProductID: p.ProductID,
			Price:     p.Price,
			Cost:      p.Cost,
		}
	}

	if err := h.pricingCommands.UpdatePrices(c.Request.Context(), updates); err != nil {
		switch {
		case errors.Is(err, errs.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		case errors.Is(err, errs.ErrInvalidPrice):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Price must be positive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PricingHandler) GetPrice(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID format", nil)
		return
	}

	view, err := h.pricingQueries.GetPrice(c.Request.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPriceView(view))
}

func (h *PricingHandler) ListProducts(c *gin.Context) {
	views, err := h.pricingQueries.ListProducts(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp := make([]*resdto.ProductResponse, len(views))
	for i, v := range views {
		resp[i] = resdto.FromProductView(v)
	}
	c.JSON(http.StatusOK, resp)
}

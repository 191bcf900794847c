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

type CartHandler struct {
	cartCommands commands.CartCommands
	cartQueries  queries.CartQueries
}

func NewCartHandler(cartCommands commands.CartCommands, cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		cartQueries:  cartQueries,
	}
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.AddCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	input := commands.AddItemInput{
		ProductID: req.ProductID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Quantity:  req.Quantity,
		IsFuel:    req.IsFuel,
		Metadata:  req.Metadata,
	}
	if req.LineID != nil {
		input.LineID = *req.LineID
	}

	cartView, err := h.cartCommands.AddItem(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidQuantity):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Quantity must be positive", nil)
		case errors.Is(err, errs.ErrInvalidPrice):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unit price must be non-negative", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCartView(cartView))
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	var req reqdto.UpdateQuantityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	cartView, err := h.cartCommands.UpdateQuantity(c.Request.Context(), itemID, *req.Quantity)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(cartView))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	cartView, err := h.cartCommands.RemoveItem(c.Request.Context(), itemID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(cartView))
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartCommands.ClearCart(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) GetCart(c *gin.Context) {
	cartView, err := h.cartQueries.GetCart(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(cartView))
}

package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "github.com/bk376/fuelflow-pos/internal/handler/dto/request"
	resdto "github.com/bk376/fuelflow-pos/internal/handler/dto/response"
	"github.com/bk376/fuelflow-pos/internal/handler/httperr"
	"github.com/bk376/fuelflow-pos/internal/pkg/errs"
	"github.com/bk376/fuelflow-pos/internal/usecase/commands"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{checkoutCommands: checkoutCommands}
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	txnView, err := h.checkoutCommands.Checkout(c.Request.Context(), req.SaleIDs)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSaleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Fuel sale not found", nil)
		case errors.Is(err, errs.ErrSaleNotCompleted):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Fuel sale is not completed", nil)
		case errors.Is(err, errs.ErrEmptyCheckout):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Nothing to check out", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTransactionView(txnView))
}

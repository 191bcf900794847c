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

type FuelHandler struct {
	fuelCommands commands.FuelCommands
	fuelQueries  queries.FuelQueries
}

func NewFuelHandler(fuelCommands commands.FuelCommands, fuelQueries queries.FuelQueries) *FuelHandler {
	return &FuelHandler{
		fuelCommands: fuelCommands,
		fuelQueries:  fuelQueries,
	}
}

func (h *FuelHandler) AuthorizePump(c *gin.Context) {
	dispenserID, err := uuid.Parse(c.Param("dispenserID"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid dispenser ID format", nil)
		return
	}
	nozzleID, err := uuid.Parse(c.Param("nozzleID"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid nozzle ID format", nil)
		return
	}

	var req reqdto.AuthorizePumpRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	saleView, err := h.fuelCommands.AuthorizePump(c.Request.Context(), dispenserID, nozzleID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDispenserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Dispenser not found", nil)
		case errors.Is(err, errs.ErrNozzleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Nozzle not found", nil)
		case errors.Is(err, errs.ErrDispenserUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Dispenser is not available", nil)
		case errors.Is(err, errs.ErrNozzleBusy):
			httperr.AbortWithError(c, http.StatusConflict, err, "Nozzle already has an active sale", nil)
		case errors.Is(err, errs.ErrInvalidAmount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Authorization amount must be positive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSaleView(saleView))
}

func (h *FuelHandler) CompleteFuelSale(c *gin.Context) {
	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sale ID format", nil)
		return
	}

	if err := h.fuelCommands.CompleteFuelSale(c.Request.Context(), saleID); err != nil {
		switch {
		case errors.Is(err, errs.ErrSaleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Fuel sale not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FuelHandler) ListActiveSales(c *gin.Context) {
	views, err := h.fuelQueries.ListActiveSales(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp := make([]*resdto.SaleResponse, len(views))
	for i, v := range views {
		resp[i] = resdto.FromSaleView(v)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FuelHandler) GetFuelSale(c *gin.Context) {
	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sale ID format", nil)
		return
	}

	view, err := h.fuelQueries.GetSale(c.Request.Context(), saleID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSaleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Fuel sale not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSaleView(view))
}

func (h *FuelHandler) ListDispensers(c *gin.Context) {
	views, err := h.fuelQueries.ListDispensers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp := make([]*resdto.DispenserResponse, len(views))
	for i, v := range views {
		resp[i] = resdto.FromDispenserView(v)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FuelHandler) GetDispenser(c *gin.Context) {
	dispenserID, err := uuid.Parse(c.Param("dispenserID"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid dispenser ID format", nil)
		return
	}

	view, err := h.fuelQueries.GetDispenser(c.Request.Context(), dispenserID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDispenserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Dispenser not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDispenserView(view))
}

func (h *FuelHandler) ListTanks(c *gin.Context) {
	views, err := h.fuelQueries.ListTanks(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp := make([]*resdto.TankResponse, len(views))
	for i, v := range views {
		resp[i] = resdto.FromTankView(v)
	}
	c.JSON(http.StatusOK, resp)
}

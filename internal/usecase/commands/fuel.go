package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bk376/fuelflow-pos/internal/usecase/queries"
)

type FuelCommands interface {
	AuthorizePump(ctx context.Context, dispenserID, nozzleID uuid.UUID, amount float64) (*queries.SaleView, error)
	CompleteFuelSale(ctx context.Context, saleID uuid.UUID) error
}

type fuelCommandsImpl struct {
	engine PumpEngine
	logger *slog.Logger
}

func NewFuelCommands(engine PumpEngine, logger *slog.Logger) FuelCommands {
	return &fuelCommandsImpl{engine: engine, logger: logger}
}

// AuthorizePump reserves the nozzle and starts the dispensing task. Failures
// surface synchronously; there is no automatic retry, the terminal re-issues.
func (c *fuelCommandsImpl) AuthorizePump(ctx context.Context, dispenserID, nozzleID uuid.UUID, amount float64) (*queries.SaleView, error) {
	snap, err := c.engine.Authorize(ctx, dispenserID, nozzleID, amount)
	if err != nil {
		c.logger.Warn("pump authorization rejected",
			"dispenser_id", dispenserID, "nozzle_id", nozzleID, "error", err)
		return nil, err
	}
	return queries.NewSaleView(snap), nil
}

func (c *fuelCommandsImpl) CompleteFuelSale(ctx context.Context, saleID uuid.UUID) error {
	return c.engine.Complete(ctx, saleID)
}

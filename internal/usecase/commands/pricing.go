package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bk376/fuelflow-pos/internal/domain/product"
	"github.com/bk376/fuelflow-pos/internal/pkg/clock"
	"github.com/bk376/fuelflow-pos/internal/pkg/errs"
)

type PriceUpdateInput struct {
	ProductID uuid.UUID
	Price     float64
	Cost      float64
}

type PricingCommands interface {
	UpdatePrices(ctx context.Context, updates []PriceUpdateInput) error
}

type pricingCommandsImpl struct {
	catalog PriceCatalog
	nozzles NozzlePriceWriter
	clock   clock.Clock
	logger  *slog.Logger
}

func NewPricingCommands(catalog PriceCatalog, nozzles NozzlePriceWriter, clk clock.Clock, logger *slog.Logger) PricingCommands {
	return &pricingCommandsImpl{catalog: catalog, nozzles: nozzles, clock: clk, logger: logger}
}

// UpdatePrices validates the whole batch before touching any state, then
// replaces the catalog records and pushes fuel prices onto the nozzles.
// Sales already authorized keep their snapshotted pricePerGallon; only new
// authorizations see the update.
func (c *pricingCommandsImpl) UpdatePrices(_ context.Context, updates []PriceUpdateInput) error {
	now := c.clock.Now()

	records := make([]product.PriceRecord, 0, len(updates))
	fuelProducts := make(map[uuid.UUID]float64)
	for _, u := range updates {
		p, err := c.catalog.Product(u.ProductID)
		if err != nil {
			return err
		}

		rec, err := product.NewPriceRecord(u.ProductID, u.Price, u.Cost, now)
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidPrice)
		}
		records = append(records, rec)
		if p.IsFuel {
			fuelProducts[u.ProductID] = u.Price
		}
	}

	c.catalog.Replace(records)
	for productID, price := range fuelProducts {
		updated := c.nozzles.SetNozzlePrice(productID, price)
		c.logger.Info("fuel price updated",
			"product_id", productID, "price", price, "nozzles_updated", updated)
	}
	return nil
}

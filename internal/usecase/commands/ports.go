package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/bk376/fuelflow-pos/internal/domain/fuel"
	"github.com/bk376/fuelflow-pos/internal/domain/product"
	"github.com/bk376/fuelflow-pos/internal/domain/transaction"
)

// Write-side ports, declared beside the commands that consume them.

type PumpEngine interface {
	Authorize(ctx context.Context, dispenserID, nozzleID uuid.UUID, amount float64) (fuel.SaleSnapshot, error)
	Complete(ctx context.Context, saleID uuid.UUID) error
	Sale(id uuid.UUID) (fuel.SaleSnapshot, error)
}

type PriceCatalog interface {
	Product(id uuid.UUID) (product.Product, error)
	Replace(records []product.PriceRecord)
}

// NozzlePriceWriter pushes catalog price changes onto dispenser nozzles.
type NozzlePriceWriter interface {
	SetNozzlePrice(productID uuid.UUID, price float64) int
	Dispenser(id uuid.UUID) (fuel.Dispenser, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, txn *transaction.Transaction) error
}

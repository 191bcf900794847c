package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bk376/fuelflow-pos/internal/domain/cart"
	"github.com/bk376/fuelflow-pos/internal/domain/fuel"
	"github.com/bk376/fuelflow-pos/internal/domain/transaction"
	"github.com/bk376/fuelflow-pos/internal/infra/metrics"
	"github.com/bk376/fuelflow-pos/internal/pkg/clock"
	"github.com/bk376/fuelflow-pos/internal/pkg/errs"
	"github.com/bk376/fuelflow-pos/internal/usecase/queries"
)

type CheckoutCommands interface {
	Checkout(ctx context.Context, saleIDs []uuid.UUID) (*queries.TransactionView, error)
}

type checkoutCommandsImpl struct {
	cart    *cart.Cart
	engine  PumpEngine
	topo    NozzlePriceWriter
	repo    TransactionRepository
	clock   clock.Clock
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewCheckoutCommands(
	c *cart.Cart,
	engine PumpEngine,
	topo NozzlePriceWriter,
	repo TransactionRepository,
	clk clock.Clock,
	logger *slog.Logger,
	m *metrics.Metrics,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		cart:    c,
		engine:  engine,
		topo:    topo,
		repo:    repo,
		clock:   clk,
		logger:  logger,
		metrics: m,
	}
}

// Checkout snapshots the cart, merges the referenced completed fuel sales as
// fuel lines (quantity = gallons, unit price = the sale's snapshotted
// pricePerGallon), persists the immutable transaction, and removes the
// snapshotted lines. Only those lines are removed; items added while the
// transaction was persisting stay in the cart for the next checkout.
func (c *checkoutCommandsImpl) Checkout(ctx context.Context, saleIDs []uuid.UUID) (*queries.TransactionView, error) {
	snapshot := c.cart.Snapshot()

	lines := make([]transaction.Line, 0, len(snapshot.Items)+len(saleIDs))
	soldLineIDs := make([]uuid.UUID, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		productID := item.ProductID
		soldLineIDs = append(soldLineIDs, item.ID)
		lines = append(lines, transaction.Line{
			ProductID: &productID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  float64(item.Quantity),
			IsFuel:    item.IsFuel,
		})
	}

	for _, saleID := range saleIDs {
		snap, err := c.engine.Sale(saleID)
		if err != nil {
			return nil, err
		}
		if snap.Status != fuel.StatusCompleted {
			return nil, errs.ErrSaleNotCompleted
		}

		id := snap.ID
		lines = append(lines, transaction.Line{
			SaleID:    &id,
			Name:      c.fuelLineName(snap),
			UnitPrice: snap.PricePerGallon,
			Quantity:  snap.Gallons,
			IsFuel:    true,
		})
	}

	if len(lines) == 0 {
		return nil, errs.ErrEmptyCheckout
	}

	txn, err := transaction.New(lines, c.cart.TaxRate(), c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrEmptyCheckout)
	}

	if err := c.repo.Create(ctx, txn); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.cart.RemoveLines(soldLineIDs)

	c.metrics.TransactionsFinalized.Add(ctx, 1)
	c.metrics.TransactionRevenue.Add(ctx, txn.TotalAmount())
	c.logger.Info("transaction finalized",
		"transaction_id", txn.ID(),
		"lines", len(lines),
		"total", txn.TotalAmount(),
	)
	return newTransactionView(txn), nil
}

// fuelLineName resolves the dispensed grade label; falls back to a generic
// label when the nozzle is no longer in the topology.
func (c *checkoutCommandsImpl) fuelLineName(snap fuel.SaleSnapshot) string {
	d, err := c.topo.Dispenser(snap.DispenserID)
	if err == nil {
		if nozzle, ok := d.Nozzle(snap.NozzleID); ok {
			return nozzle.FuelGrade
		}
	}
	return "Fuel"
}

func newTransactionView(txn *transaction.Transaction) *queries.TransactionView {
	domainLines := txn.Lines()
	lines := make([]queries.TransactionLineView, len(domainLines))
	for i, l := range domainLines {
		lines[i] = queries.TransactionLineView{
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			IsFuel:    l.IsFuel,
			LineTotal: l.LineTotal,
		}
	}
	return &queries.TransactionView{
		ID:          txn.ID(),
		Lines:       lines,
		Subtotal:    txn.Subtotal(),
		TaxAmount:   txn.TaxAmount(),
		TotalAmount: txn.TotalAmount(),
		CreatedAt:   txn.CreatedAt(),
	}
}

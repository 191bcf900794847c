//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bk376/fuelflow-pos/internal/domain/cart"
	"github.com/bk376/fuelflow-pos/internal/domain/fuel"
	"github.com/bk376/fuelflow-pos/internal/domain/transaction"
	"github.com/bk376/fuelflow-pos/internal/infra/metrics"
	"github.com/bk376/fuelflow-pos/internal/pkg/clock"
	"github.com/bk376/fuelflow-pos/internal/pkg/errs"
	"github.com/bk376/fuelflow-pos/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const taxRate = 0.0875

type fakeEngine struct {
	sales map[uuid.UUID]fuel.SaleSnapshot
}

func (f *fakeEngine) Authorize(context.Context, uuid.UUID, uuid.UUID, float64) (fuel.SaleSnapshot, error) {
	panic("not used")
}

func (f *fakeEngine) Complete(context.Context, uuid.UUID) error {
	panic("not used")
}

func (f *fakeEngine) Sale(id uuid.UUID) (fuel.SaleSnapshot, error) {
	snap, ok := f.sales[id]
	if !ok {
		return fuel.SaleSnapshot{}, errs.ErrSaleNotFound
	}
	return snap, nil
}

type fakeTopology struct {
	dispenser fuel.Dispenser
	err       error
}

func (f *fakeTopology) SetNozzlePrice(uuid.UUID, float64) int { return 0 }

func (f *fakeTopology) Dispenser(uuid.UUID) (fuel.Dispenser, error) {
	if f.err != nil {
		return fuel.Dispenser{}, f.err
	}
	return f.dispenser, nil
}

type fakeTransactionRepo struct {
	created  []*transaction.Transaction
	err      error
	onCreate func()
}

func (f *fakeTransactionRepo) Create(_ context.Context, txn *transaction.Transaction) error {
	if f.onCreate != nil {
		f.onCreate()
	}
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, txn)
	return nil
}

func completedSale(dispenserID, nozzleID uuid.UUID, amount, price float64) fuel.SaleSnapshot {
	completedAt := time.Date(2025, 6, 1, 9, 10, 0, 0, time.UTC)
	return fuel.SaleSnapshot{
		ID:               uuid.New(),
		DispenserID:      dispenserID,
		NozzleID:         nozzleID,
		TankID:           uuid.New(),
		AuthorizedAmount: amount,
		CurrentAmount:    amount,
		Gallons:          amount / price,
		PricePerGallon:   price,
		Status:           fuel.StatusCompleted,
		StartedAt:        completedAt.Add(-time.Minute),
		CompletedAt:      &completedAt,
	}
}

type checkoutFixture struct {
	cart     *cart.Cart
	engine   *fakeEngine
	topo     *fakeTopology
	repo     *fakeTransactionRepo
	commands commands.CheckoutCommands
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	f := &checkoutFixture{
		cart:   cart.New(taxRate),
		engine: &fakeEngine{sales: make(map[uuid.UUID]fuel.SaleSnapshot)},
		topo:   &fakeTopology{err: errs.ErrDispenserNotFound},
		repo:   &fakeTransactionRepo{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockClock := clock.NewMockClock(time.Date(2025, 6, 1, 9, 15, 0, 0, time.UTC))
	f.commands = commands.NewCheckoutCommands(f.cart, f.engine, f.topo, f.repo, mockClock, logger, metrics.NewNoop())
	return f
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("cart items only", func(t *testing.T) {
		f := newCheckoutFixture(t)
		require.NoError(t, f.cart.AddItem(cart.Item{
			ID: uuid.New(), ProductID: uuid.New(), Name: "Cola 20oz", UnitPrice: 2.49, Quantity: 2,
		}))

		view, err := f.commands.Checkout(ctx, nil)
		require.NoError(t, err)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, "Cola 20oz", view.Lines[0].Name)
		assert.InDelta(t, 4.98, view.Lines[0].LineTotal, 1e-9)
		assert.InDelta(t, 4.98, view.Subtotal, 1e-9)
		assert.InDelta(t, 4.98*taxRate, view.TaxAmount, 1e-9)
		assert.InDelta(t, 4.98*(1+taxRate), view.TotalAmount, 1e-9)

		require.Len(t, f.repo.created, 1)
		assert.Empty(t, f.cart.Snapshot().Items, "cart must be cleared after checkout")
	})

	t.Run("merges completed fuel sales as fuel lines", func(t *testing.T) {
		f := newCheckoutFixture(t)
		snap := completedSale(uuid.New(), uuid.New(), 50, 3.459)
		f.engine.sales[snap.ID] = snap

		require.NoError(t, f.cart.AddItem(cart.Item{
			ID: uuid.New(), ProductID: uuid.New(), Name: "Cola 20oz", UnitPrice: 2.49, Quantity: 1,
		}))

		view, err := f.commands.Checkout(ctx, []uuid.UUID{snap.ID})
		require.NoError(t, err)
		require.Len(t, view.Lines, 2)

		fuelLine := view.Lines[1]
		assert.True(t, fuelLine.IsFuel)
		assert.Equal(t, "Fuel", fuelLine.Name, "falls back when the topology lookup fails")
		assert.InDelta(t, 3.459, fuelLine.UnitPrice, 1e-9)
		assert.InDelta(t, snap.Gallons, fuelLine.Quantity, 1e-9)
		assert.InDelta(t, 50.0, fuelLine.LineTotal, 1e-6)
		assert.InDelta(t, 52.49, view.Subtotal, 1e-6)
	})

	t.Run("uses the nozzle grade as the fuel line name", func(t *testing.T) {
		f := newCheckoutFixture(t)

		nozzleID := uuid.New()
		dispenserID := uuid.New()
		f.topo.err = nil
		f.topo.dispenser = fuel.Dispenser{
			ID:     dispenserID,
			Status: fuel.DispenserActive,
			Nozzles: []fuel.Nozzle{
				{ID: nozzleID, DispenserID: dispenserID, FuelGrade: "Premium 91", PricePerUnit: 3.859},
			},
		}
		snap := completedSale(dispenserID, nozzleID, 40, 3.859)
		f.engine.sales[snap.ID] = snap

		view, err := f.commands.Checkout(ctx, []uuid.UUID{snap.ID})
		require.NoError(t, err)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, "Premium 91", view.Lines[0].Name)
	})

	t.Run("unknown sale", func(t *testing.T) {
		f := newCheckoutFixture(t)
		_, err := f.commands.Checkout(ctx, []uuid.UUID{uuid.New()})
		assert.ErrorIs(t, err, errs.ErrSaleNotFound)
		assert.Empty(t, f.repo.created)
	})

	t.Run("sale still dispensing", func(t *testing.T) {
		f := newCheckoutFixture(t)
		snap := completedSale(uuid.New(), uuid.New(), 50, 3.459)
		snap.Status = fuel.StatusDispensing
		f.engine.sales[snap.ID] = snap

		_, err := f.commands.Checkout(ctx, []uuid.UUID{snap.ID})
		assert.ErrorIs(t, err, errs.ErrSaleNotCompleted)
		assert.Empty(t, f.repo.created)
	})

	t.Run("nothing to check out", func(t *testing.T) {
		f := newCheckoutFixture(t)
		_, err := f.commands.Checkout(ctx, nil)
		assert.ErrorIs(t, err, errs.ErrEmptyCheckout)
	})

	t.Run("items added during persistence survive the checkout", func(t *testing.T) {
		f := newCheckoutFixture(t)
		require.NoError(t, f.cart.AddItem(cart.Item{
			ID: uuid.New(), ProductID: uuid.New(), Name: "Cola 20oz", UnitPrice: 2.49, Quantity: 1,
		}))

		late := cart.Item{
			ID: uuid.New(), ProductID: uuid.New(), Name: "Chips", UnitPrice: 1.79, Quantity: 1,
		}
		f.repo.onCreate = func() {
			require.NoError(t, f.cart.AddItem(late))
		}

		view, err := f.commands.Checkout(ctx, nil)
		require.NoError(t, err)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, "Cola 20oz", view.Lines[0].Name)

		remaining := f.cart.Snapshot().Items
		require.Len(t, remaining, 1, "only the snapshotted lines are removed")
		assert.Equal(t, late.ID, remaining[0].ID)
	})

	t.Run("persistence failure keeps the cart", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.repo.err = errors.New("connection refused")
		require.NoError(t, f.cart.AddItem(cart.Item{
			ID: uuid.New(), ProductID: uuid.New(), Name: "Cola 20oz", UnitPrice: 2.49, Quantity: 1,
		}))

		_, err := f.commands.Checkout(ctx, nil)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
		assert.Len(t, f.cart.Snapshot().Items, 1, "cart must survive a failed checkout")
	})
}

package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/bk376/fuelflow-pos/internal/domain/cart"
	"github.com/bk376/fuelflow-pos/internal/pkg/errs"
	"github.com/bk376/fuelflow-pos/internal/usecase/queries"
)

type AddItemInput struct {
	LineID    uuid.UUID
	ProductID uuid.UUID
	Name      string
	UnitPrice float64
	Quantity  int
	IsFuel    bool
	Metadata  map[string]string
}

type CartCommands interface {
	AddItem(ctx context.Context, input AddItemInput) (*queries.CartView, error)
	UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (*queries.CartView, error)
	RemoveItem(ctx context.Context, itemID uuid.UUID) (*queries.CartView, error)
	ClearCart(ctx context.Context) error
}

type cartCommandsImpl struct {
	cart *cart.Cart
}

func NewCartCommands(c *cart.Cart) CartCommands {
	return &cartCommandsImpl{cart: c}
}

func (c *cartCommandsImpl) AddItem(_ context.Context, input AddItemInput) (*queries.CartView, error) {
	lineID := input.LineID
	if lineID == uuid.Nil {
		lineID = uuid.New()
	}

	err := c.cart.AddItem(cart.Item{
		ID:        lineID,
		ProductID: input.ProductID,
		Name:      input.Name,
		UnitPrice: input.UnitPrice,
		Quantity:  input.Quantity,
		IsFuel:    input.IsFuel,
		Metadata:  input.Metadata,
	})
	switch {
	case err == nil:
	case errors.Is(err, cart.ErrInvalidQuantity):
		return nil, errs.Mark(err, errs.ErrInvalidQuantity)
	case errors.Is(err, cart.ErrInvalidPrice):
		return nil, errs.Mark(err, errs.ErrInvalidPrice)
	default:
		return nil, err
	}
	return queries.NewCartView(c.cart.Snapshot()), nil
}

func (c *cartCommandsImpl) UpdateQuantity(_ context.Context, itemID uuid.UUID, quantity int) (*queries.CartView, error) {
	c.cart.UpdateQuantity(itemID, quantity)
	return queries.NewCartView(c.cart.Snapshot()), nil
}

func (c *cartCommandsImpl) RemoveItem(_ context.Context, itemID uuid.UUID) (*queries.CartView, error) {
	c.cart.RemoveItem(itemID)
	return queries.NewCartView(c.cart.Snapshot()), nil
}

func (c *cartCommandsImpl) ClearCart(_ context.Context) error {
	c.cart.Clear()
	return nil
}

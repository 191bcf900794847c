package queries

import (
	"context"

	"github.com/bk376/fuelflow-pos/internal/domain/cart"
)

type CartQueries interface {
	GetCart(ctx context.Context) (*CartView, error)
}

type cartQueriesImpl struct {
	cart *cart.Cart
}

func NewCartQueries(c *cart.Cart) CartQueries {
	return &cartQueriesImpl{cart: c}
}

func (q *cartQueriesImpl) GetCart(_ context.Context) (*CartView, error) {
	return NewCartView(q.cart.Snapshot()), nil
}

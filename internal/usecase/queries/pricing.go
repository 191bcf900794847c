package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/bk376/fuelflow-pos/internal/domain/product"
)

// CatalogReadStore is the read surface of the pricing catalog.
type CatalogReadStore interface {
	Price(productID uuid.UUID) (product.PriceRecord, error)
	Products() []product.Product
}

type PricingQueries interface {
	GetPrice(ctx context.Context, productID uuid.UUID) (*PriceView, error)
	ListProducts(ctx context.Context) ([]*ProductView, error)
}

type pricingQueriesImpl struct {
	catalog CatalogReadStore
}

func NewPricingQueries(catalog CatalogReadStore) PricingQueries {
	return &pricingQueriesImpl{catalog: catalog}
}

func (q *pricingQueriesImpl) GetPrice(_ context.Context, productID uuid.UUID) (*PriceView, error) {
	rec, err := q.catalog.Price(productID)
	if err != nil {
		return nil, err
	}
	return NewPriceView(rec), nil
}

func (q *pricingQueriesImpl) ListProducts(_ context.Context) ([]*ProductView, error) {
	products := q.catalog.Products()
	views := make([]*ProductView, len(products))
	for i, p := range products {
		views[i] = NewProductView(p)
	}
	return views, nil
}

// Package catalog holds the in-memory pricing catalog: the current
// price-per-unit for every sellable product. Updates replace the current
// records atomically; sales already in flight keep their authorization-time
// snapshot untouched.
package catalog

import (
	"sync"

	"github.com/google/uuid"

	"github.com/bk376/fuelflow-pos/internal/domain/product"
	"github.com/bk376/fuelflow-pos/internal/pkg/errs"
)

type Catalog struct {
	mu       sync.RWMutex
	products map[uuid.UUID]product.Product
	prices   map[uuid.UUID]product.PriceRecord
}

func New(products []product.Product, prices []product.PriceRecord) *Catalog {
	c := &Catalog{
		products: make(map[uuid.UUID]product.Product, len(products)),
		prices:   make(map[uuid.UUID]product.PriceRecord, len(prices)),
	}
	for _, p := range products {
		c.products[p.ID] = p
	}
	for _, r := range prices {
		c.prices[r.ProductID] = r
	}
	return c
}

func (c *Catalog) Price(productID uuid.UUID) (product.PriceRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.prices[productID]
	if !ok {
		return product.PriceRecord{}, errs.ErrProductNotFound
	}
	return rec, nil
}

// Replace swaps in the given records as the current prices. Products not
// mentioned keep their existing record. New authorizations see the new
// prices immediately.
func (c *Catalog) Replace(records []product.PriceRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range records {
		c.prices[r.ProductID] = r
	}
}

func (c *Catalog) Product(id uuid.UUID) (product.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[id]
	if !ok {
		return product.Product{}, errs.ErrProductNotFound
	}
	return p, nil
}

func (c *Catalog) Products() []product.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]product.Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p)
	}
	return out
}

//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"github.com/bk376/fuelflow-pos/internal/domain/product"
	"github.com/bk376/fuelflow-pos/internal/infra/catalog"
	"github.com/bk376/fuelflow-pos/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T) (*catalog.Catalog, product.Product, product.Product) {
	t.Helper()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	regular := product.Product{
		ID:          uuid.New(),
		SKU:         "FUEL-REG-87",
		Name:        "Regular Gasoline 87",
		UnitType:    product.UnitGallon,
		IsFuel:      true,
		CostPrice:   3.20,
		RetailPrice: 3.459,
	}
	soda := product.Product{
		ID:          uuid.New(),
		SKU:         "DRINK-COLA",
		Name:        "Cola 20oz",
		UnitType:    product.UnitEach,
		CostPrice:   0.80,
		RetailPrice: 2.49,
	}

	c := catalog.New(
		[]product.Product{regular, soda},
		[]product.PriceRecord{
			{ProductID: regular.ID, Price: 3.459, Cost: 3.20, EffectiveFrom: now},
			{ProductID: soda.ID, Price: 2.49, Cost: 0.80, EffectiveFrom: now},
		},
	)
	return c, regular, soda
}

func TestCatalog_Price(t *testing.T) {
	c, regular, _ := seedCatalog(t)

	rec, err := c.Price(regular.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.459, rec.Price, 1e-9)

	_, err = c.Price(uuid.New())
	assert.ErrorIs(t, err, errs.ErrProductNotFound)
}

func TestCatalog_Product(t *testing.T) {
	c, _, soda := seedCatalog(t)

	p, err := c.Product(soda.ID)
	require.NoError(t, err)
	assert.Equal(t, "DRINK-COLA", p.SKU)

	_, err = c.Product(uuid.New())
	assert.ErrorIs(t, err, errs.ErrProductNotFound)

	assert.Len(t, c.Products(), 2)
}

func TestCatalog_Replace(t *testing.T) {
	c, regular, soda := seedCatalog(t)
	now := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	c.Replace([]product.PriceRecord{
		{ProductID: regular.ID, Price: 3.599, Cost: 3.30, EffectiveFrom: now},
	})

	rec, err := c.Price(regular.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.599, rec.Price, 1e-9)
	assert.Equal(t, now, rec.EffectiveFrom)

	// Products not mentioned keep their current record.
	rec, err = c.Price(soda.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2.49, rec.Price, 1e-9)
}

package product

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPrice = errors.New("price must be positive")
	ErrInvalidCost  = errors.New("cost must be non-negative")
)

type UnitType string

const (
	UnitGallon UnitType = "gallon"
	UnitEach   UnitType = "each"
	UnitBottle UnitType = "bottle"
)

// Product is immutable once created; a fuel product's retail price is
// superseded by the current PriceRecord.
type Product struct {
	ID              uuid.UUID
	SKU             string
	Name            string
	UnitType        UnitType
	IsFuel          bool
	IsAgeRestricted bool
	MinAge          int
	CostPrice       float64
	RetailPrice     float64
}

// PriceRecord is the catalog's current price for a product.
type PriceRecord struct {
	ProductID     uuid.UUID
	Price         float64
	Cost          float64
	EffectiveFrom time.Time
}

func NewPriceRecord(productID uuid.UUID, price, cost float64, effectiveFrom time.Time) (PriceRecord, error) {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return PriceRecord{}, ErrInvalidPrice
	}
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return PriceRecord{}, ErrInvalidCost
	}
	return PriceRecord{
		ProductID:     productID,
		Price:         price,
		Cost:          cost,
		EffectiveFrom: effectiveFrom,
	}, nil
}

func (r PriceRecord) Margin() float64 {
	return r.Price - r.Cost
}

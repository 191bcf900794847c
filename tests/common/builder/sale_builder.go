//go:build unit

package builder

import (
	"time"

	domfuel "github.com/bk376/fuelflow-pos/internal/domain/fuel"

	"github.com/google/uuid"
)

type SaleBuilder struct {
	DispenserID      uuid.UUID
	NozzleID         uuid.UUID
	TankID           uuid.UUID
	AuthorizedAmount float64
	PricePerGallon   float64
	StartedAt        time.Time
}

func NewSaleBuilder() *SaleBuilder {
	return &SaleBuilder{
		DispenserID:      uuid.New(),
		NozzleID:         uuid.New(),
		TankID:           uuid.New(),
		AuthorizedAmount: 50.0,
		PricePerGallon:   3.459,
		StartedAt:        time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *SaleBuilder) With(mutate func(*SaleBuilder)) *SaleBuilder {
	mutate(b)
	return b
}

func (b *SaleBuilder) BuildDomain() (*domfuel.Sale, error) {
	return domfuel.NewSale(b.DispenserID, b.NozzleID, b.TankID, b.AuthorizedAmount, b.PricePerGallon, b.StartedAt)
}

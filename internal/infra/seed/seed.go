// Package seed builds the demo station topology: four fuel grades across
// two dispensers with two nozzles each, one tank per grade.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/bk376/fuelflow-pos/internal/domain/fuel"
	"github.com/bk376/fuelflow-pos/internal/domain/product"
)

type Station struct {
	Products   []product.Product
	Prices     []product.PriceRecord
	Dispensers []fuel.Dispenser
	Tanks      []fuel.Tank
}

type grade struct {
	sku        string
	name       string
	label      string
	cost       float64
	retail     float64
	tankNumber int
	capacity   float64
	level      float64
}

var grades = []grade{
	{"FUEL-REG-87", "Regular Gasoline 87", "Regular 87", 3.20, 3.459, 1, 10000, 7500},
	{"FUEL-MID-89", "Mid-Grade Gasoline 89", "Mid 89", 3.40, 3.659, 2, 8000, 6200},
	{"FUEL-PREM-91", "Premium Gasoline 91", "Premium 91", 3.60, 3.859, 3, 8000, 5800},
	{"FUEL-DIESEL", "Diesel Fuel", "Diesel", 3.70, 3.999, 4, 12000, 9500},
}

// DefaultStation assigns nozzles grade-by-grade: dispenser 1 carries Regular
// and Mid, dispenser 2 carries Premium and Diesel.
func DefaultStation(now time.Time) Station {
	var st Station

	type binding struct {
		productID uuid.UUID
		tankID    uuid.UUID
		label     string
		retail    float64
	}
	bindings := make([]binding, 0, len(grades))

	for _, g := range grades {
		productID := uuid.New()
		tankID := uuid.New()

		st.Products = append(st.Products, product.Product{
			ID:          productID,
			SKU:         g.sku,
			Name:        g.name,
			UnitType:    product.UnitGallon,
			IsFuel:      true,
			CostPrice:   g.cost,
			RetailPrice: g.retail,
		})
		st.Prices = append(st.Prices, product.PriceRecord{
			ProductID:     productID,
			Price:         g.retail,
			Cost:          g.cost,
			EffectiveFrom: now,
		})
		st.Tanks = append(st.Tanks, fuel.Tank{
			ID:           tankID,
			TankNumber:   g.tankNumber,
			ProductID:    productID,
			Capacity:     g.capacity,
			CurrentLevel: g.level,
		})
		bindings = append(bindings, binding{productID, tankID, g.label, g.retail})
	}

	for dispNum := 1; dispNum <= 2; dispNum++ {
		dispenserID := uuid.New()
		d := fuel.Dispenser{
			ID:              dispenserID,
			DispenserNumber: dispNum,
			Status:          fuel.DispenserActive,
		}
		for nozNum := 1; nozNum <= 2; nozNum++ {
			b := bindings[(dispNum-1)*2+(nozNum-1)]
			d.Nozzles = append(d.Nozzles, fuel.Nozzle{
				ID:           uuid.New(),
				DispenserID:  dispenserID,
				TankID:       b.tankID,
				ProductID:    b.productID,
				NozzleNumber: nozNum,
				FuelGrade:    b.label,
				PricePerUnit: b.retail,
			})
		}
		st.Dispensers = append(st.Dispensers, d)
	}

	return st
}

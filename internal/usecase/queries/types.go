package queries

import (
	"time"

	"github.com/google/uuid"

	"github.com/bk376/fuelflow-pos/internal/domain/cart"
	"github.com/bk376/fuelflow-pos/internal/domain/fuel"
	"github.com/bk376/fuelflow-pos/internal/domain/product"
)

type SaleView struct {
	ID               uuid.UUID
	DispenserID      uuid.UUID
	NozzleID         uuid.UUID
	AuthorizedAmount float64
	CurrentAmount    float64
	Gallons          float64
	PricePerGallon   float64
	Status           string
	StartedAt        time.Time
	CompletedAt      *time.Time
}

func NewSaleView(s fuel.SaleSnapshot) *SaleView {
	return &SaleView{
		ID:               s.ID,
		DispenserID:      s.DispenserID,
		NozzleID:         s.NozzleID,
		AuthorizedAmount: s.AuthorizedAmount,
		CurrentAmount:    s.CurrentAmount,
		Gallons:          s.Gallons,
		PricePerGallon:   s.PricePerGallon,
		Status:           string(s.Status),
		StartedAt:        s.StartedAt,
		CompletedAt:      s.CompletedAt,
	}
}

type NozzleView struct {
	ID           uuid.UUID
	TankID       uuid.UUID
	ProductID    uuid.UUID
	NozzleNumber int
	FuelGrade    string
	PricePerUnit float64
}

type DispenserView struct {
	ID              uuid.UUID
	DispenserNumber int
	Status          string
	Nozzles         []NozzleView
}

func NewDispenserView(d fuel.Dispenser) *DispenserView {
	v := &DispenserView{
		ID:              d.ID,
		DispenserNumber: d.DispenserNumber,
		Status:          string(d.Status),
		Nozzles:         make([]NozzleView, len(d.Nozzles)),
	}
	for i, n := range d.Nozzles {
		v.Nozzles[i] = NozzleView{
			ID:           n.ID,
			TankID:       n.TankID,
			ProductID:    n.ProductID,
			NozzleNumber: n.NozzleNumber,
			FuelGrade:    n.FuelGrade,
			PricePerUnit: n.PricePerUnit,
		}
	}
	return v
}

type TankView struct {
	ID           uuid.UUID
	TankNumber   int
	ProductID    uuid.UUID
	Capacity     float64
	CurrentLevel float64
}

func NewTankView(t fuel.Tank) *TankView {
	return &TankView{
		ID:           t.ID,
		TankNumber:   t.TankNumber,
		ProductID:    t.ProductID,
		Capacity:     t.Capacity,
		CurrentLevel: t.CurrentLevel,
	}
}

type CartItemView struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Name      string
	UnitPrice float64
	Quantity  int
	IsFuel    bool
}

type CartView struct {
	Items       []CartItemView
	Subtotal    float64
	TaxAmount   float64
	TotalAmount float64
}

func NewCartView(s cart.Snapshot) *CartView {
	v := &CartView{
		Items:       make([]CartItemView, len(s.Items)),
		Subtotal:    s.Totals.Subtotal,
		TaxAmount:   s.Totals.TaxAmount,
		TotalAmount: s.Totals.TotalAmount,
	}
	for i, item := range s.Items {
		v.Items[i] = CartItemView{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			IsFuel:    item.IsFuel,
		}
	}
	return v
}

type PriceView struct {
	ProductID     uuid.UUID
	Price         float64
	Cost          float64
	Margin        float64
	EffectiveFrom time.Time
}

func NewPriceView(r product.PriceRecord) *PriceView {
	return &PriceView{
		ProductID:     r.ProductID,
		Price:         r.Price,
		Cost:          r.Cost,
		Margin:        r.Margin(),
		EffectiveFrom: r.EffectiveFrom,
	}
}

type ProductView struct {
	ID              uuid.UUID
	SKU             string
	Name            string
	UnitType        string
	IsFuel          bool
	IsAgeRestricted bool
	MinAge          int
	RetailPrice     float64
}

func NewProductView(p product.Product) *ProductView {
	return &ProductView{
		ID:              p.ID,
		SKU:             p.SKU,
		Name:            p.Name,
		UnitType:        string(p.UnitType),
		IsFuel:          p.IsFuel,
		IsAgeRestricted: p.IsAgeRestricted,
		MinAge:          p.MinAge,
		RetailPrice:     p.RetailPrice,
	}
}

type TransactionLineView struct {
	Name      string
	UnitPrice float64
	Quantity  float64
	IsFuel    bool
	LineTotal float64
}

type TransactionView struct {
	ID          uuid.UUID
	Lines       []TransactionLineView
	Subtotal    float64
	TaxAmount   float64
	TotalAmount float64
	CreatedAt   time.Time
}

package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/bk376/fuelflow-pos/internal/usecase/queries"
)

type SaleResponse struct {
	ID               uuid.UUID  `json:"id"`
	DispenserID      uuid.UUID  `json:"dispenser_id"`
	NozzleID         uuid.UUID  `json:"nozzle_id"`
	AuthorizedAmount float64    `json:"authorized_amount"`
	CurrentAmount    float64    `json:"current_amount"`
	Gallons          float64    `json:"gallons"`
	PricePerGallon   float64    `json:"price_per_gallon"`
	Status           string     `json:"status"`
	StartedAt        time.Time  `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

func FromSaleView(v *queries.SaleView) *SaleResponse {
	return &SaleResponse{
		ID:               v.ID,
		DispenserID:      v.DispenserID,
		NozzleID:         v.NozzleID,
		AuthorizedAmount: v.AuthorizedAmount,
		CurrentAmount:    v.CurrentAmount,
		Gallons:          v.Gallons,
		PricePerGallon:   v.PricePerGallon,
		Status:           v.Status,
		StartedAt:        v.StartedAt,
		CompletedAt:      v.CompletedAt,
	}
}

type NozzleResponse struct {
	ID           uuid.UUID `json:"id"`
	TankID       uuid.UUID `json:"tank_id"`
	ProductID    uuid.UUID `json:"product_id"`
	NozzleNumber int       `json:"nozzle_number"`
	FuelGrade    string    `json:"fuel_grade"`
	PricePerUnit float64   `json:"price_per_unit"`
}

type DispenserResponse struct {
	ID              uuid.UUID        `json:"id"`
	DispenserNumber int              `json:"dispenser_number"`
	Status          string           `json:"status"`
	Nozzles         []NozzleResponse `json:"nozzles"`
}

func FromDispenserView(v *queries.DispenserView) *DispenserResponse {
	resp := &DispenserResponse{
		ID:              v.ID,
		DispenserNumber: v.DispenserNumber,
		Status:          v.Status,
		Nozzles:         make([]NozzleResponse, len(v.Nozzles)),
	}
	for i, n := range v.Nozzles {
		resp.Nozzles[i] = NozzleResponse{
			ID:           n.ID,
			TankID:       n.TankID,
			ProductID:    n.ProductID,
			NozzleNumber: n.NozzleNumber,
			FuelGrade:    n.FuelGrade,
			PricePerUnit: n.PricePerUnit,
		}
	}
	return resp
}

type TankResponse struct {
	ID           uuid.UUID `json:"id"`
	TankNumber   int       `json:"tank_number"`
	ProductID    uuid.UUID `json:"product_id"`
	Capacity     float64   `json:"capacity"`
	CurrentLevel float64   `json:"current_level"`
}

func FromTankView(v *queries.TankView) *TankResponse {
	return &TankResponse{
		ID:           v.ID,
		TankNumber:   v.TankNumber,
		ProductID:    v.ProductID,
		Capacity:     v.Capacity,
		CurrentLevel: v.CurrentLevel,
	}
}

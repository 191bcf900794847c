package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/bk376/fuelflow-pos/internal/usecase/queries"
)

type PriceResponse struct {
	ProductID     uuid.UUID `json:"product_id"`
	Price         float64   `json:"price"`
	Cost          float64   `json:"cost"`
	Margin        float64   `json:"margin"`
	EffectiveFrom time.Time `json:"effective_from"`
}

func FromPriceView(v *queries.PriceView) *PriceResponse {
	return &PriceResponse{
		ProductID:     v.ProductID,
		Price:         v.Price,
		Cost:          v.Cost,
		Margin:        v.Margin,
		EffectiveFrom: v.EffectiveFrom,
	}
}

type ProductResponse struct {
	ID              uuid.UUID `json:"id"`
	SKU             string    `json:"sku"`
	Name            string    `json:"name"`
	UnitType        string    `json:"unit_type"`
	IsFuel          bool      `json:"is_fuel"`
	IsAgeRestricted bool      `json:"is_age_restricted"`
	MinAge          int       `json:"min_age"`
	RetailPrice     float64   `json:"retail_price"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:              v.ID,
		SKU:             v.SKU,
		Name:            v.Name,
		UnitType:        v.UnitType,
		IsFuel:          v.IsFuel,
		IsAgeRestricted: v.IsAgeRestricted,
		MinAge:          v.MinAge,
		RetailPrice:     v.RetailPrice,
	}
}

package request

import "github.com/google/uuid"

type PriceUpdate struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Price     float64   `json:"price" binding:"required"`
	Cost      float64   `json:"cost"`
}

type UpdatePricesRequest struct {
	Prices []PriceUpdate `json:"prices" binding:"required,min=1,dive"`
}

package response

import (
	"github.com/google/uuid"

	"github.com/bk376/fuelflow-pos/internal/usecase/queries"
)

type CartItemResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	IsFuel    bool      `json:"is_fuel"`
}

type CartResponse struct {
	Items       []CartItemResponse `json:"items"`
	Subtotal    float64            `json:"subtotal"`
	TaxAmount   float64            `json:"tax_amount"`
	TotalAmount float64            `json:"total_amount"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	resp := &CartResponse{
		Items:       make([]CartItemResponse, len(v.Items)),
		Subtotal:    v.Subtotal,
		TaxAmount:   v.TaxAmount,
		TotalAmount: v.TotalAmount,
	}
	for i, item := range v.Items {
		resp.Items[i] = CartItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			IsFuel:    item.IsFuel,
		}
	}
	return resp
}

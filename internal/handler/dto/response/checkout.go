package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/bk376/fuelflow-pos/internal/usecase/queries"
)

type TransactionLineResponse struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  float64 `json:"quantity"`
	IsFuel    bool    `json:"is_fuel"`
	LineTotal float64 `json:"line_total"`
}

type TransactionResponse struct {
	ID          uuid.UUID                 `json:"id"`
	Lines       []TransactionLineResponse `json:"lines"`
	Subtotal    float64                   `json:"subtotal"`
	TaxAmount   float64                   `json:"tax_amount"`
	TotalAmount float64                   `json:"total_amount"`
	CreatedAt   time.Time                 `json:"created_at"`
}

func FromTransactionView(v *queries.TransactionView) *TransactionResponse {
	resp := &TransactionResponse{
		ID:          v.ID,
		Lines:       make([]TransactionLineResponse, len(v.Lines)),
		Subtotal:    v.Subtotal,
		TaxAmount:   v.TaxAmount,
		TotalAmount: v.TotalAmount,
		CreatedAt:   v.CreatedAt,
	}
	for i, l := range v.Lines {
		resp.Lines[i] = TransactionLineResponse{
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			IsFuel:    l.IsFuel,
			LineTotal: l.LineTotal,
		}
	}
	return resp
}

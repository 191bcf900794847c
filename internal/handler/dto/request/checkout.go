package request

import "github.com/google/uuid"

type CheckoutRequest struct {
	// Completed fuel sales to merge into the transaction as fuel lines.
	SaleIDs []uuid.UUID `json:"sale_ids"`
}

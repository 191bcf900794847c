package request

import "github.com/google/uuid"

type AddCartItemRequest struct {
	// LineID is optional: omitted means a fresh line, a repeated LineID
	// merges quantities into the existing line.
	LineID    *uuid.UUID        `json:"line_id"`
	ProductID uuid.UUID         `json:"product_id" binding:"required"`
	Name      string            `json:"name" binding:"required"`
	UnitPrice float64           `json:"unit_price"`
	Quantity  int               `json:"quantity" binding:"required"`
	IsFuel    bool              `json:"is_fuel"`
	Metadata  map[string]string `json:"metadata"`
}

type UpdateQuantityRequest struct {
	// Zero or negative removes the line.
	Quantity *int `json:"quantity" binding:"required"`
}

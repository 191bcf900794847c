package request

type AuthorizePumpRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

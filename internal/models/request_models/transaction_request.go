package request_models

// CreateTransactionRequest records a manual (off-provider) donation, e.g.
// cash handed over at an event. Status defaults to confirmed.
type CreateTransactionRequest struct {
	ProjectID      string  `json:"project_id" binding:"required"`
	Amount         float64 `json:"amount" binding:"required,gt=0"`
	Currency       string  `json:"currency" binding:"omitempty,oneof=UAH USD EUR"`
	DonatorName    string  `json:"donator_name"`
	DonatorSurname string  `json:"donator_surname"`
	DonatorEmail   string  `json:"donator_email" binding:"omitempty,email"`
	DonatorPhone   string  `json:"donator_phone"`
	Subscription   bool    `json:"subscription"`
}

type ToggleTransactionRequest struct {
	ID string `json:"id" binding:"required"`
}

// CallbackRequest is the provider's server-to-server payment notification.
// Both fields are structurally required; anything else about the payload is
// the reconciler's problem.
type CallbackRequest struct {
	Data      string `form:"data" json:"data" binding:"required"`
	Signature string `form:"signature" json:"signature" binding:"required"`
}

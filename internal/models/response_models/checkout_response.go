package response_models

import "kosht/pkg/liqpay"

type CheckoutResponse struct {
	OrderID  string          `json:"order_id"`
	Checkout liqpay.Checkout `json:"checkout"`
}

type SubscriptionStatsResponse struct {
	MoneyAmount    float64 `json:"money_amount"`
	DonatorsAmount int     `json:"donators_amount"`
}

type TransactionResponse struct {
	ID             string  `json:"id"`
	ProjectID      string  `json:"project_id"`
	OrderID        string  `json:"order_id,omitempty"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	DonatorName    string  `json:"donator_name,omitempty"`
	DonatorSurname string  `json:"donator_surname,omitempty"`
	DonatorEmail   string  `json:"donator_email,omitempty"`
	DonatorPhone   string  `json:"donator_phone,omitempty"`
	PaymentID      string  `json:"payment_id,omitempty"`
	Status         string  `json:"status"`
	Type           string  `json:"type"`
	Subscription   bool    `json:"subscription"`
	CreatedAt      int64   `json:"created_at"`
}

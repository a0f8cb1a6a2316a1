package request_models

// DonationRequest starts the donation flow: it creates a step-1 order and
// returns the provider checkout payload.
type DonationRequest struct {
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Currency   string  `json:"currency" binding:"omitempty,oneof=UAH USD EUR"`
	Subscribe  *bool   `json:"subscribe" binding:"required"`
	Language   string  `json:"language" binding:"omitempty,oneof=uk en"`
	Name       string  `json:"name"`
	Surname    string  `json:"surname"`
	Email      string  `json:"email" binding:"omitempty,email"`
	Phone      string  `json:"phone"`
	Newsletter bool    `json:"newsletter"`
}

// DonorDetailsRequest carries the details a donor entered on the provider
// page (step-2). Only non-empty fields are merged onto the order.
type DonorDetailsRequest struct {
	OrderID    string  `json:"order_id" binding:"required"`
	Name       string  `json:"name"`
	Surname    string  `json:"surname"`
	Email      string  `json:"email" binding:"omitempty,email"`
	Phone      string  `json:"phone"`
	Newsletter *bool   `json:"newsletter"`
	UAHAmount  float64 `json:"UAH_amount"`
}

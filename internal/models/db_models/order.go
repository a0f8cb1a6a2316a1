package db_models

import "github.com/google/uuid"

type OrderStatus string

const (
	// OrderStatusCreated marks an order awaiting the provider callback.
	OrderStatusCreated    OrderStatus = "step-1"
	OrderStatusSuccess    OrderStatus = "success"
	OrderStatusSubscribed OrderStatus = "subscribed"
)

// Order is a donor's declared intent to pay, created before the redirect to
// the payment provider. Its status leaves step-1 exactly once, when a
// matching transaction is reconciled; orders are never deleted.
type Order struct {
	BaseModel
	ProjectID uuid.UUID `gorm:"type:uuid;index"`

	DonatorName       string
	DonatorSurname    string
	DonatorEmail      string
	DonatorPhone      string
	DonatorNewsletter bool

	Amount    float64
	Currency  string `gorm:"size:3"`
	Subscribe bool
	Language  string `gorm:"size:2"`

	Status        OrderStatus `gorm:"index"`
	TransactionID *uuid.UUID  `gorm:"type:uuid"`
}

package db_models

import "github.com/google/uuid"

type TransactionStatus string

const (
	TxnStatusConfirmed  TransactionStatus = "confirmed"
	TxnStatusSubscribed TransactionStatus = "subscribed"
	TxnStatusWaitAccept TransactionStatus = "wait_accept"
	TxnStatusRevoked    TransactionStatus = "revoked"
	TxnStatusFailed     TransactionStatus = "failed"
)

// providerStatuses maps the provider's status vocabulary onto the internal
// enum. This table and liqpay.Outcome are the only two places provider
// statuses are interpreted.
var providerStatuses = map[string]TransactionStatus{
	"success":     TxnStatusConfirmed,
	"subscribed":  TxnStatusSubscribed,
	"wait_accept": TxnStatusWaitAccept,
}

// StatusFromProvider normalizes a provider status string. Unknown values map
// to failed; callers are expected to filter those out before creating a
// transaction.
func StatusFromProvider(status string) TransactionStatus {
	if s, ok := providerStatuses[status]; ok {
		return s
	}
	return TxnStatusFailed
}

// CountsTowardFunding reports whether a transaction in this status is
// included in a project's funded amount. Pending (wait_accept), revoked and
// failed transactions are excluded.
func (s TransactionStatus) CountsTowardFunding() bool {
	return s == TxnStatusConfirmed || s == TxnStatusSubscribed
}

type TransactionType string

const (
	TxnTypeManual TransactionType = "manual"
	TxnTypeLiqpay TransactionType = "liqpay"
)

// Transaction is an append-only record of a single payment event. Amount,
// payment id and creation time are never mutated after create; only Status
// may be toggled between revoked and confirmed by an administrator.
//
// PaymentID carries the provider transaction id and is the idempotency key
// for callback redelivery: the unique index rejects a second insert for the
// same provider payment even when two callbacks race. It is nil for manual
// transactions, which have no provider counterpart.
type Transaction struct {
	BaseModel
	ProjectID uuid.UUID  `gorm:"type:uuid;index"`
	OrderID   *uuid.UUID `gorm:"type:uuid;index"`

	Amount   float64
	Currency string `gorm:"size:3"`

	// Donor snapshot, copied at creation time rather than joined live.
	DonatorName    string
	DonatorSurname string
	DonatorEmail   string
	DonatorPhone   string

	PaymentID    *string           `gorm:"uniqueIndex"`
	Status       TransactionStatus `gorm:"index"`
	Type         TransactionType   `gorm:"index"`
	Subscription bool
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kosht/internal/models/db_models"
	"kosht/pkg/utils"
)

var orderCurrencies = map[string]bool{"UAH": true, "USD": true, "EUR": true}

// OrderUpdate is the set of reconciliation fields that may be merged onto an
// existing order. Nil fields keep their previous values; there is no way to
// null a field out through an update.
type OrderUpdate struct {
	ID             string
	DonatorName    *string
	DonatorSurname *string
	DonatorEmail   *string
	DonatorPhone   *string
	Newsletter     *bool
	Status         *db_models.OrderStatus
	TransactionID  *uuid.UUID
}

type OrderRepositoryInterface interface {
	Create(ctx context.Context, order *db_models.Order) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.Order, error)
	Update(ctx context.Context, update OrderUpdate) (*db_models.Order, error)
	ListSubscriptions(ctx context.Context) ([]db_models.Order, error)
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryInterface {
	return &OrderRepository{db: db}
}

type OrderRepository struct {
	db *gorm.DB
}

// Create persists a donation intent. The order always starts at step-1; the
// status only changes later, when the reconciler matches a transaction.
func (o *OrderRepository) Create(ctx context.Context, order *db_models.Order) (uuid.UUID, error) {
	if order.Amount <= 0 {
		return uuid.Nil, fmt.Errorf("%w: amount must be greater than zero", utils.ErrValidation)
	}
	if !orderCurrencies[order.Currency] {
		return uuid.Nil, fmt.Errorf("%w: unsupported currency %q", utils.ErrValidation, order.Currency)
	}

	order.Status = db_models.OrderStatusCreated
	if err := o.db.WithContext(ctx).Create(order).Error; err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return order.ID, nil
}

// GetByID returns ErrOrderNotFound for unknown and malformed ids alike; a
// missing order is an expected case during reconciliation, not a failure.
func (o *OrderRepository) GetByID(ctx context.Context, id string) (*db_models.Order, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrOrderNotFound
	}

	var order db_models.Order
	err = o.db.WithContext(ctx).Where("id = ?", orderID).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrOrderNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	return &order, nil
}

// Update merges the provided fields onto an existing order and returns the
// updated record.
func (o *OrderRepository) Update(ctx context.Context, update OrderUpdate) (*db_models.Order, error) {
	order, err := o.GetByID(ctx, update.ID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if update.DonatorName != nil {
		fields["donator_name"] = *update.DonatorName
	}
	if update.DonatorSurname != nil {
		fields["donator_surname"] = *update.DonatorSurname
	}
	if update.DonatorEmail != nil {
		fields["donator_email"] = *update.DonatorEmail
	}
	if update.DonatorPhone != nil {
		fields["donator_phone"] = *update.DonatorPhone
	}
	if update.Newsletter != nil {
		fields["donator_newsletter"] = *update.Newsletter
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}
	if update.TransactionID != nil {
		fields["transaction_id"] = *update.TransactionID
	}
	if len(fields) == 0 {
		return order, nil
	}

	err = o.db.WithContext(ctx).Model(order).Updates(fields).Error
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return order, nil
}

func (o *OrderRepository) ListSubscriptions(ctx context.Context) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := o.db.WithContext(ctx).
		Where("status = ?", db_models.OrderStatusSubscribed).
		Find(&orders).Error
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return orders, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"regexp"

	"kosht/internal/models/db_models"
	"kosht/pkg/utils"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,12}$`)

var transactionStatuses = map[db_models.TransactionStatus]bool{
	db_models.TxnStatusConfirmed:  true,
	db_models.TxnStatusSubscribed: true,
	db_models.TxnStatusWaitAccept: true,
}

type TransactionRepositoryInterface interface {
	Create(ctx context.Context, txn *db_models.Transaction) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.Transaction, error)
	GetByPaymentID(ctx context.Context, paymentID string) (*db_models.Transaction, error)
	Revoke(ctx context.Context, id string) (bool, error)
	Reaffirm(ctx context.Context, id string) (bool, error)
	ListByProjectID(ctx context.Context, projectID string) ([]db_models.Transaction, error)
	List(ctx context.Context) ([]db_models.Transaction, error)
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &TransactionRepository{db: db}
}

type TransactionRepository struct {
	db *gorm.DB
}

// Create validates and persists a transaction. Nothing is written on a
// validation failure. A payment id already present in the store fails with
// ErrDuplicateTransaction; the unique index catches the race where two
// callbacks for the same payment pass the pre-check simultaneously.
func (t *TransactionRepository) Create(ctx context.Context, txn *db_models.Transaction) (uuid.UUID, error) {
	if txn.Amount <= 0 {
		return uuid.Nil, fmt.Errorf("%w: amount must be greater than zero", utils.ErrValidation)
	}
	if txn.Type != db_models.TxnTypeManual && txn.Type != db_models.TxnTypeLiqpay {
		return uuid.Nil, fmt.Errorf("%w: unsupported transaction type %q", utils.ErrValidation, txn.Type)
	}
	if !transactionStatuses[txn.Status] {
		return uuid.Nil, fmt.Errorf("%w: unsupported transaction status %q", utils.ErrValidation, txn.Status)
	}
	if txn.DonatorPhone != "" && !phonePattern.MatchString(txn.DonatorPhone) {
		return uuid.Nil, fmt.Errorf("%w: malformed donator phone", utils.ErrValidation)
	}

	// The project reference must resolve; transactions against deleted or
	// never-existing projects are rejected outright.
	var count int64
	err := t.db.WithContext(ctx).
		Model(&db_models.Project{}).
		Where("id = ?", txn.ProjectID).
		Count(&count).Error
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if count == 0 {
		return uuid.Nil, utils.ErrProjectNotFound
	}

	if txn.PaymentID != nil {
		var existing int64
		err = t.db.WithContext(ctx).
			Model(&db_models.Transaction{}).
			Where("payment_id = ?", *txn.PaymentID).
			Count(&existing).Error
		if err != nil {
			return uuid.Nil, utils.ErrDatabaseError
		}
		if existing > 0 {
			return uuid.Nil, utils.ErrDuplicateTransaction
		}
	}

	if err := t.db.WithContext(ctx).Create(txn).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return uuid.Nil, utils.ErrDuplicateTransaction
		}
		return uuid.Nil, utils.ErrDatabaseError
	}
	return txn.ID, nil
}

func (t *TransactionRepository) GetByID(ctx context.Context, id string) (*db_models.Transaction, error) {
	txnID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrTransactionNotFound
	}

	var txn db_models.Transaction
	err = t.db.WithContext(ctx).Where("id = ?", txnID).First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrTransactionNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	return &txn, nil
}

func (t *TransactionRepository) GetByPaymentID(ctx context.Context, paymentID string) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := t.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrTransactionNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	return &txn, nil
}

// Revoke excludes a transaction from funding. The toggle is idempotent: the
// returned bool is false when the transaction was already revoked, while an
// unknown id is an ErrTransactionNotFound.
func (t *TransactionRepository) Revoke(ctx context.Context, id string) (bool, error) {
	return t.toggleStatus(ctx, id, db_models.TxnStatusRevoked)
}

// Reaffirm returns a revoked transaction to confirmed.
func (t *TransactionRepository) Reaffirm(ctx context.Context, id string) (bool, error) {
	return t.toggleStatus(ctx, id, db_models.TxnStatusConfirmed)
}

// toggleStatus flips a transaction to the target status in one conditional
// update, so two concurrent toggles cannot both observe the old status and
// both report a change.
func (t *TransactionRepository) toggleStatus(ctx context.Context, id string, status db_models.TransactionStatus) (bool, error) {
	txnID, err := uuid.Parse(id)
	if err != nil {
		return false, utils.ErrTransactionNotFound
	}

	result := t.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("id = ? AND status <> ?", txnID, status).
		Update("status", status)
	if result.Error != nil {
		return false, utils.ErrDatabaseError
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	// Nothing changed: either the status already matched or the id is
	// unknown. Only the former is a no-op.
	var count int64
	err = t.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("id = ?", txnID).
		Count(&count).Error
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if count == 0 {
		return false, utils.ErrTransactionNotFound
	}
	return false, nil
}

func (t *TransactionRepository) ListByProjectID(ctx context.Context, projectID string) ([]db_models.Transaction, error) {
	var txns []db_models.Transaction
	err := t.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at").
		Find(&txns).Error
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return txns, nil
}

func (t *TransactionRepository) List(ctx context.Context) ([]db_models.Transaction, error) {
	var txns []db_models.Transaction
	if err := t.db.WithContext(ctx).Order("created_at").Find(&txns).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	return txns, nil
}

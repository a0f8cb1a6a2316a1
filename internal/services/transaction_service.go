package services

import (
	"context"

	"github.com/google/uuid"

	"kosht/internal/models/db_models"
	"kosht/internal/models/request_models"
	"kosht/internal/models/response_models"
	"kosht/internal/repositories"
	"kosht/pkg/utils"
)

func parseProjectID(id string) (uuid.UUID, error) {
	projectID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, utils.ErrProjectNotFound
	}
	return projectID, nil
}

type TransactionServiceInterface interface {
	CreateManual(ctx context.Context, req request_models.CreateTransactionRequest) (string, error)
	Revoke(ctx context.Context, id string) (bool, error)
	Reaffirm(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, projectID string) ([]response_models.TransactionResponse, error)
}

type TransactionService struct {
	txnRepo repositories.TransactionRepositoryInterface
}

func NewTransactionService(txnRepo repositories.TransactionRepositoryInterface) TransactionServiceInterface {
	return &TransactionService{txnRepo: txnRepo}
}

// CreateManual records an off-provider donation, e.g. cash. Manual
// transactions have no provider payment id and count as confirmed
// immediately.
func (t *TransactionService) CreateManual(ctx context.Context, req request_models.CreateTransactionRequest) (string, error) {
	projectID, err := parseProjectID(req.ProjectID)
	if err != nil {
		return "", err
	}

	currency := req.Currency
	if currency == "" {
		currency = "UAH"
	}

	txn := &db_models.Transaction{
		ProjectID:      projectID,
		Amount:         req.Amount,
		Currency:       currency,
		DonatorName:    req.DonatorName,
		DonatorSurname: req.DonatorSurname,
		DonatorEmail:   req.DonatorEmail,
		DonatorPhone:   req.DonatorPhone,
		Status:         db_models.TxnStatusConfirmed,
		Type:           db_models.TxnTypeManual,
		Subscription:   req.Subscription,
	}

	id, err := t.txnRepo.Create(ctx, txn)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (t *TransactionService) Revoke(ctx context.Context, id string) (bool, error) {
	return t.txnRepo.Revoke(ctx, id)
}

func (t *TransactionService) Reaffirm(ctx context.Context, id string) (bool, error) {
	return t.txnRepo.Reaffirm(ctx, id)
}

// List returns all transactions, every status included; public views filter
// on the caller side.
func (t *TransactionService) List(ctx context.Context, projectID string) ([]response_models.TransactionResponse, error) {
	var (
		txns []db_models.Transaction
		err  error
	)
	if projectID != "" {
		txns, err = t.txnRepo.ListByProjectID(ctx, projectID)
	} else {
		txns, err = t.txnRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]response_models.TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		resp := response_models.TransactionResponse{
			ID:             txn.ID.String(),
			ProjectID:      txn.ProjectID.String(),
			Amount:         txn.Amount,
			Currency:       txn.Currency,
			DonatorName:    txn.DonatorName,
			DonatorSurname: txn.DonatorSurname,
			DonatorEmail:   txn.DonatorEmail,
			DonatorPhone:   txn.DonatorPhone,
			Status:         string(txn.Status),
			Type:           string(txn.Type),
			Subscription:   txn.Subscription,
			CreatedAt:      txn.CreatedAt,
		}
		if txn.OrderID != nil {
			resp.OrderID = txn.OrderID.String()
		}
		if txn.PaymentID != nil {
			resp.PaymentID = *txn.PaymentID
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"kosht/internal/models/db_models"
	"kosht/internal/repositories"
	"kosht/pkg/liqpay"
	"kosht/pkg/utils"
)

// PaymentConfig carries the provider-integration settings shared by the
// donation and reconciliation services.
type PaymentConfig struct {
	// DefaultProjectSlug names the project that order-less callbacks are
	// attributed to (legacy donation buttons carry no project component).
	DefaultProjectSlug string
	FrontendURL        string
	ServerURL          string
}

func (c PaymentConfig) CallbackURL() string {
	return strings.TrimRight(c.ServerURL, "/") + "/api/v1/transactions/liqpay-confirmation"
}

// CallbackResult is the reconciler's verdict on one provider callback. Ok
// false means the callback was rejected without any state change; the
// provider is still acknowledged with HTTP 200 to stop redelivery.
type CallbackResult struct {
	Ok      bool
	Message string

	TransactionID string
}

var actionDescriptions = map[string]string{
	liqpay.ActionSubscribe: "monthly subscription",
	liqpay.ActionPay:       "one-off payment",
	liqpay.ActionRegular:   "recurring monthly charge",
	liqpay.ActionPayDonate: "direct donation",
}

type PaymentServiceInterface interface {
	HandleCallback(ctx context.Context, data, signature string) (*CallbackResult, error)
}

type PaymentService struct {
	orderRepo   repositories.OrderRepositoryInterface
	txnRepo     repositories.TransactionRepositoryInterface
	projectRepo repositories.ProjectRepositoryInterface
	liqpay      *liqpay.Client
	mail        IMailService
	cfg         PaymentConfig
}

func NewPaymentService(
	orderRepo repositories.OrderRepositoryInterface,
	txnRepo repositories.TransactionRepositoryInterface,
	projectRepo repositories.ProjectRepositoryInterface,
	client *liqpay.Client,
	mail IMailService,
	cfg PaymentConfig,
) PaymentServiceInterface {
	return &PaymentService{
		orderRepo:   orderRepo,
		txnRepo:     txnRepo,
		projectRepo: projectRepo,
		liqpay:      client,
		mail:        mail,
		cfg:         cfg,
	}
}

// HandleCallback reconciles one provider callback against the order and
// transaction stores. A non-nil error means the transaction could not be
// durably recorded and the provider should see a 5xx; every other branch is
// acknowledged. The method is safe to invoke repeatedly with the same
// payload: the transaction store's payment-id key makes redelivery a no-op.
func (p *PaymentService) HandleCallback(ctx context.Context, data, signature string) (*CallbackResult, error) {
	// Trust boundary: a payload that does not verify must not touch any
	// store. The rejection is logged because the provider still gets a 200.
	if !p.liqpay.Verify(data, signature) {
		log.Printf("Callback rejected: wrong signature")
		return &CallbackResult{Ok: false, Message: "Wrong signature."}, nil
	}

	cb, err := liqpay.DecodeCallback(data)
	if err != nil {
		log.Printf("Callback rejected: %v", err)
		return &CallbackResult{Ok: false, Message: "Malformed payload."}, nil
	}

	log.Printf("Verified callback: order_id=%s payment_id=%s action=%s status=%s amount=%g %s",
		cb.OrderID, cb.PaymentID, cb.Action, cb.Status, cb.Amount, cb.Currency)

	// Only accepted statuses may produce a transaction; a transaction always
	// represents money that moved or is expected to move.
	if liqpay.Outcome(cb.Status) != liqpay.OutcomeAccepted {
		p.notifyAdmin(
			"Error! Payment confirmation failed on "+p.cfg.FrontendURL,
			fmt.Sprintf("Provider reported status %q for order %q (payment %s).", cb.Status, cb.OrderID, cb.PaymentID),
		)
		return &CallbackResult{Ok: false, Message: "wrong status: " + cb.Status}, nil
	}

	order, project, err := p.correlate(ctx, cb)
	if err != nil {
		return nil, err
	}

	txn := p.buildTransaction(cb, order, project)
	txnID, err := p.txnRepo.Create(ctx, txn)
	if err != nil {
		if errors.Is(err, utils.ErrDuplicateTransaction) {
			// Redelivered callback: already recorded, nothing to repeat.
			log.Printf("Callback replay for payment %s ignored", cb.PaymentID)
			return &CallbackResult{Ok: true, Message: "Transaction already recorded."}, nil
		}
		if errors.Is(err, utils.ErrValidation) {
			// A verified payload that cannot form a valid transaction, e.g.
			// a zero amount. Retrying will not change the payload, so the
			// provider must be acknowledged; the admin mail is the audit
			// trail for what was dropped.
			log.Printf("Callback for payment %s rejected: %v", cb.PaymentID, err)
			p.notifyAdmin(
				"Error! Payment confirmation failed on "+p.cfg.FrontendURL,
				fmt.Sprintf("Transaction for order %q (payment %s) was rejected: %v.", cb.OrderID, cb.PaymentID, err),
			)
			return &CallbackResult{Ok: false, Message: "wrong transaction: " + err.Error()}, nil
		}
		return nil, err
	}

	if order != nil {
		status := db_models.OrderStatusSuccess
		if cb.Action != liqpay.ActionPay {
			status = db_models.OrderStatusSubscribed
		}
		// Transaction creation is the atomicity boundary; re-applying the
		// same terminal status on a replay is harmless, so a failure here is
		// logged rather than surfaced to the provider.
		_, err = p.orderRepo.Update(ctx, repositories.OrderUpdate{
			ID:            order.ID.String(),
			Status:        &status,
			TransactionID: &txnID,
		})
		if err != nil {
			log.Printf("Error updating order %s after transaction %s: %v", order.ID, txnID, err)
		}
	}

	p.notify(cb, order, txn)

	return &CallbackResult{Ok: true, Message: "Transaction successfully added.", TransactionID: txnID.String()}, nil
}

// correlate resolves the callback's order reference to an order (may be nil,
// an expected case for direct and legacy donations) and the project the
// transaction belongs to, falling back to the configured default project.
func (p *PaymentService) correlate(ctx context.Context, cb *liqpay.Callback) (*db_models.Order, *db_models.Project, error) {
	ref, err := utils.ParseOrderRef(cb.OrderID)
	if err != nil {
		ref = utils.OrderRef{}
	}

	var order *db_models.Order
	if ref.OrderID != "" {
		order, err = p.orderRepo.GetByID(ctx, ref.OrderID)
		if err != nil && !errors.Is(err, utils.ErrOrderNotFound) {
			return nil, nil, err
		}
	}

	if ref.ProjectID != "" {
		project, err := p.projectRepo.GetByID(ctx, ref.ProjectID)
		if err == nil {
			return order, project, nil
		}
		if !errors.Is(err, utils.ErrProjectNotFound) {
			return nil, nil, err
		}
	}
	if order != nil {
		project, err := p.projectRepo.GetByID(ctx, order.ProjectID.String())
		if err == nil {
			return order, project, nil
		}
		if !errors.Is(err, utils.ErrProjectNotFound) {
			return nil, nil, err
		}
	}

	project, err := p.projectRepo.GetBySlug(ctx, p.cfg.DefaultProjectSlug)
	if err != nil {
		return nil, nil, err
	}
	return order, project, nil
}

// buildTransaction snapshots the donor fields, preferring the matched order
// over the provider's sender fields, falling back to a placeholder.
func (p *PaymentService) buildTransaction(cb *liqpay.Callback, order *db_models.Order, project *db_models.Project) *db_models.Transaction {
	amount := cb.AmountDebit
	if amount == 0 {
		amount = cb.Amount
	}

	name := cb.SenderFirstName
	surname := cb.SenderLastName
	email := ""
	phone := cb.SenderPhone
	if order != nil {
		if order.DonatorName != "" {
			name = order.DonatorName
		}
		if order.DonatorSurname != "" {
			surname = order.DonatorSurname
		}
		email = order.DonatorEmail
		if phone == "" {
			phone = order.DonatorPhone
		}
	}
	if name == "" {
		name = "unknown"
	}
	if surname == "" {
		surname = "unknown"
	}

	paymentID := cb.PaymentID.String()
	txn := &db_models.Transaction{
		ProjectID:      project.ID,
		Amount:         amount,
		Currency:       cb.Currency,
		DonatorName:    name,
		DonatorSurname: surname,
		DonatorEmail:   email,
		DonatorPhone:   phone,
		PaymentID:      &paymentID,
		Status:         db_models.StatusFromProvider(cb.Status),
		Type:           db_models.TxnTypeLiqpay,
		Subscription:   cb.Action == liqpay.ActionSubscribe,
	}
	if order != nil {
		orderID := order.ID
		txn.OrderID = &orderID
	}
	return txn
}

// notify dispatches the admin notification and, for matched orders with a
// donor email, the donor-facing confirmation. Failures never propagate; the
// money movement is already durably recorded at this point.
func (p *PaymentService) notify(cb *liqpay.Callback, order *db_models.Order, txn *db_models.Transaction) {
	action := actionDescriptions[cb.Action]
	if action == "" {
		action = cb.Action
	}
	details := fmt.Sprintf("%s %s: %g %s (%s), payment %s.",
		txn.DonatorName, txn.DonatorSurname, txn.Amount, txn.Currency, action, cb.PaymentID)

	if order != nil {
		p.notifyAdmin("Step 3: a payment has arrived on "+p.cfg.FrontendURL, details)
	} else {
		p.notifyAdmin("A project has been supported on "+p.cfg.FrontendURL, details)
	}

	if order == nil || order.DonatorEmail == "" {
		return
	}
	if cb.Action != liqpay.ActionPay && cb.Action != liqpay.ActionSubscribe {
		return
	}

	lang := order.Language
	if _, ok := donorConfirmationSubjects[lang]; !ok {
		lang = "uk"
	}
	body := fmt.Sprintf("%s: %g %s", donationDescriptions[lang], txn.Amount, txn.Currency)
	if err := p.mail.SendDonorConfirmation(order.DonatorEmail, donorConfirmationSubjects[lang], body); err != nil {
		log.Printf("Error sending donor confirmation for order %s: %v", order.ID, err)
	}
}

func (p *PaymentService) notifyAdmin(subject, body string) {
	if err := p.mail.SendAdminNotification(subject, body); err != nil {
		log.Printf("Error sending admin notification %q: %v", subject, err)
	}
}

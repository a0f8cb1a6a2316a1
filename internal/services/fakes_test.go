package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kosht/internal/models/db_models"
	"kosht/internal/repositories"
	"kosht/pkg/utils"
)

// In-memory stand-ins for the gorm repositories, mirroring their validation
// and not-found semantics.

type fakeProjectRepo struct {
	projects map[string]*db_models.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[string]*db_models.Project{}}
}

func (f *fakeProjectRepo) add(project *db_models.Project) *db_models.Project {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.CreatedAt == 0 {
		project.CreatedAt = time.Now().Unix()
	}
	f.projects[project.ID.String()] = project
	return project
}

func (f *fakeProjectRepo) Create(_ context.Context, project *db_models.Project) error {
	f.add(project)
	return nil
}

func (f *fakeProjectRepo) Update(_ context.Context, project *db_models.Project) error {
	if _, ok := f.projects[project.ID.String()]; !ok {
		return utils.ErrProjectNotFound
	}
	f.projects[project.ID.String()] = project
	return nil
}

func (f *fakeProjectRepo) GetByID(_ context.Context, id string) (*db_models.Project, error) {
	project, ok := f.projects[id]
	if !ok {
		return nil, utils.ErrProjectNotFound
	}
	return project, nil
}

func (f *fakeProjectRepo) GetBySlug(_ context.Context, slug string) (*db_models.Project, error) {
	for _, project := range f.projects {
		if project.Slug == slug {
			return project, nil
		}
	}
	return nil, utils.ErrProjectNotFound
}

func (f *fakeProjectRepo) List(_ context.Context) ([]db_models.Project, error) {
	var projects []db_models.Project
	for _, project := range f.projects {
		projects = append(projects, *project)
	}
	return projects, nil
}

type fakeOrderRepo struct {
	orders  map[string]*db_models.Order
	updates []repositories.OrderUpdate
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*db_models.Order{}}
}

func (f *fakeOrderRepo) add(order *db_models.Order) *db_models.Order {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.Status == "" {
		order.Status = db_models.OrderStatusCreated
	}
	f.orders[order.ID.String()] = order
	return order
}

func (f *fakeOrderRepo) Create(_ context.Context, order *db_models.Order) (uuid.UUID, error) {
	if order.Amount <= 0 {
		return uuid.Nil, fmt.Errorf("%w: amount must be greater than zero", utils.ErrValidation)
	}
	order.Status = db_models.OrderStatusCreated
	f.add(order)
	return order.ID, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*db_models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, utils.ErrOrderNotFound
	}
	return order, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, update repositories.OrderUpdate) (*db_models.Order, error) {
	order, ok := f.orders[update.ID]
	if !ok {
		return nil, utils.ErrOrderNotFound
	}
	f.updates = append(f.updates, update)

	if update.DonatorName != nil {
		order.DonatorName = *update.DonatorName
	}
	if update.DonatorSurname != nil {
		order.DonatorSurname = *update.DonatorSurname
	}
	if update.DonatorEmail != nil {
		order.DonatorEmail = *update.DonatorEmail
	}
	if update.DonatorPhone != nil {
		order.DonatorPhone = *update.DonatorPhone
	}
	if update.Newsletter != nil {
		order.DonatorNewsletter = *update.Newsletter
	}
	if update.Status != nil {
		order.Status = *update.Status
	}
	if update.TransactionID != nil {
		order.TransactionID = update.TransactionID
	}
	return order, nil
}

func (f *fakeOrderRepo) ListSubscriptions(_ context.Context) ([]db_models.Order, error) {
	var orders []db_models.Order
	for _, order := range f.orders {
		if order.Status == db_models.OrderStatusSubscribed {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

type fakeTransactionRepo struct {
	txns      []*db_models.Transaction
	createErr error
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{}
}

func (f *fakeTransactionRepo) Create(_ context.Context, txn *db_models.Transaction) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	if txn.Amount <= 0 {
		return uuid.Nil, fmt.Errorf("%w: amount must be greater than zero", utils.ErrValidation)
	}
	if txn.PaymentID != nil {
		for _, existing := range f.txns {
			if existing.PaymentID != nil && *existing.PaymentID == *txn.PaymentID {
				return uuid.Nil, utils.ErrDuplicateTransaction
			}
		}
	}

	txn.ID = uuid.New()
	if txn.CreatedAt == 0 {
		txn.CreatedAt = time.Now().Unix()
	}
	f.txns = append(f.txns, txn)
	return txn.ID, nil
}

func (f *fakeTransactionRepo) GetByID(_ context.Context, id string) (*db_models.Transaction, error) {
	for _, txn := range f.txns {
		if txn.ID.String() == id {
			return txn, nil
		}
	}
	return nil, utils.ErrTransactionNotFound
}

func (f *fakeTransactionRepo) GetByPaymentID(_ context.Context, paymentID string) (*db_models.Transaction, error) {
	for _, txn := range f.txns {
		if txn.PaymentID != nil && *txn.PaymentID == paymentID {
			return txn, nil
		}
	}
	return nil, utils.ErrTransactionNotFound
}

func (f *fakeTransactionRepo) Revoke(ctx context.Context, id string) (bool, error) {
	return f.toggle(ctx, id, db_models.TxnStatusRevoked)
}

func (f *fakeTransactionRepo) Reaffirm(ctx context.Context, id string) (bool, error) {
	return f.toggle(ctx, id, db_models.TxnStatusConfirmed)
}

func (f *fakeTransactionRepo) toggle(ctx context.Context, id string, status db_models.TransactionStatus) (bool, error) {
	txn, err := f.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if txn.Status == status {
		return false, nil
	}
	txn.Status = status
	return true, nil
}

func (f *fakeTransactionRepo) ListByProjectID(_ context.Context, projectID string) ([]db_models.Transaction, error) {
	var txns []db_models.Transaction
	for _, txn := range f.txns {
		if txn.ProjectID.String() == projectID {
			txns = append(txns, *txn)
		}
	}
	return txns, nil
}

func (f *fakeTransactionRepo) List(_ context.Context) ([]db_models.Transaction, error) {
	var txns []db_models.Transaction
	for _, txn := range f.txns {
		txns = append(txns, *txn)
	}
	return txns, nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailService struct {
	admin   []sentMail
	donor   []sentMail
	failAll bool
}

func (f *fakeMailService) SendAdminNotification(subject, body string) error {
	if f.failAll {
		return fmt.Errorf("smtp unavailable")
	}
	f.admin = append(f.admin, sentMail{Subject: subject, Body: body})
	return nil
}

func (f *fakeMailService) SendDonorConfirmation(to, subject, body string) error {
	if f.failAll {
		return fmt.Errorf("smtp unavailable")
	}
	f.donor = append(f.donor, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

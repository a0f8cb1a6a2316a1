package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"kosht/internal/models/db_models"
	"kosht/internal/models/request_models"
	"kosht/internal/models/response_models"
	"kosht/internal/repositories"
	"kosht/pkg/liqpay"
	"kosht/pkg/utils"
)

var donorConfirmationSubjects = map[string]string{
	"uk": "Підтвердження вашого внеску",
	"en": "Confirmation of your donation",
}

type OrderServiceInterface interface {
	CreateDonation(ctx context.Context, projectID string, req request_models.DonationRequest) (*response_models.CheckoutResponse, error)
	DonorDetails(ctx context.Context, req request_models.DonorDetailsRequest) error
	SubscriptionStats(ctx context.Context) (*response_models.SubscriptionStatsResponse, error)
}

type OrderService struct {
	orderRepo   repositories.OrderRepositoryInterface
	projectRepo repositories.ProjectRepositoryInterface
	liqpay      *liqpay.Client
	mail        IMailService
	cfg         PaymentConfig
}

func NewOrderService(
	orderRepo repositories.OrderRepositoryInterface,
	projectRepo repositories.ProjectRepositoryInterface,
	client *liqpay.Client,
	mail IMailService,
	cfg PaymentConfig,
) OrderServiceInterface {
	return &OrderService{
		orderRepo:   orderRepo,
		projectRepo: projectRepo,
		liqpay:      client,
		mail:        mail,
		cfg:         cfg,
	}
}

// CreateDonation records a donor's intent as a step-1 order and returns the
// signed checkout payload the client redirects with.
func (o *OrderService) CreateDonation(ctx context.Context, projectID string, req request_models.DonationRequest) (*response_models.CheckoutResponse, error) {
	project, err := o.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.State == db_models.ProjectArchived {
		return nil, utils.ErrProjectArchived
	}

	currency := req.Currency
	if currency == "" {
		currency = "UAH"
	}
	language := req.Language
	if language == "" {
		language = "uk"
	}
	subscribe := req.Subscribe != nil && *req.Subscribe

	order := &db_models.Order{
		ProjectID:         project.ID,
		DonatorName:       req.Name,
		DonatorSurname:    req.Surname,
		DonatorEmail:      req.Email,
		DonatorPhone:      req.Phone,
		DonatorNewsletter: req.Newsletter,
		Amount:            req.Amount,
		Currency:          currency,
		Subscribe:         subscribe,
		Language:          language,
	}
	orderID, err := o.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	params := liqpay.CheckoutParams{
		Action:      liqpay.ActionPay,
		Amount:      req.Amount,
		Currency:    currency,
		Description: donationDescriptions[language],
		OrderID:     utils.OrderRef{OrderID: orderID.String(), ProjectID: project.ID.String()}.Format(),
		Language:    language,
		ResultURL:   o.cfg.FrontendURL,
		ServerURL:   o.cfg.CallbackURL(),
	}
	if subscribe {
		params.Action = liqpay.ActionSubscribe
		params.SubscribeDateStart = time.Now().UTC().Format("2006-01-02 15:04:05")
		params.SubscribePeriodicity = "month"
	}

	checkout, err := o.liqpay.Checkout(params)
	if err != nil {
		return nil, err
	}

	o.notifyAdmin(
		"Step 1: a donation has been initiated on "+o.cfg.FrontendURL,
		fmt.Sprintf("Order %s: %g %s, subscribe=%t.\nDonor: %s %s <%s>.",
			orderID, req.Amount, currency, subscribe, req.Name, req.Surname, req.Email),
	)

	return &response_models.CheckoutResponse{
		OrderID:  orderID.String(),
		Checkout: checkout,
	}, nil
}

// DonorDetails merges the details the donor entered on the provider page
// onto the order (step-2) and sends the confirmation mails.
func (o *OrderService) DonorDetails(ctx context.Context, req request_models.DonorDetailsRequest) error {
	update := repositories.OrderUpdate{ID: req.OrderID, Newsletter: req.Newsletter}
	if req.Name != "" {
		update.DonatorName = &req.Name
	}
	if req.Surname != "" {
		update.DonatorSurname = &req.Surname
	}
	if req.Email != "" {
		update.DonatorEmail = &req.Email
	}
	if req.Phone != "" {
		update.DonatorPhone = &req.Phone
	}

	order, err := o.orderRepo.Update(ctx, update)
	if err != nil {
		return err
	}

	o.notifyAdmin(
		"Step 2: a donor entered their details on "+o.cfg.FrontendURL,
		fmt.Sprintf("Order %s: %g %s.\nDonor: %s %s <%s>.",
			order.ID, order.Amount, order.Currency, order.DonatorName, order.DonatorSurname, order.DonatorEmail),
	)

	if order.DonatorEmail != "" {
		lang := order.Language
		if _, ok := donorConfirmationSubjects[lang]; !ok {
			lang = "uk"
		}
		body := fmt.Sprintf("%s, %g %s", donationDescriptions[lang], order.Amount, order.Currency)
		if err := o.mail.SendDonorConfirmation(order.DonatorEmail, donorConfirmationSubjects[lang], body); err != nil {
			log.Printf("Error sending donor confirmation for order %s: %v", order.ID, err)
		}
	}
	return nil
}

func (o *OrderService) SubscriptionStats(ctx context.Context) (*response_models.SubscriptionStatsResponse, error) {
	orders, err := o.orderRepo.ListSubscriptions(ctx)
	if err != nil {
		return nil, err
	}

	stats := &response_models.SubscriptionStatsResponse{DonatorsAmount: len(orders)}
	for _, order := range orders {
		stats.MoneyAmount += order.Amount
	}
	return stats, nil
}

func (o *OrderService) notifyAdmin(subject, body string) {
	if err := o.mail.SendAdminNotification(subject, body); err != nil {
		log.Printf("Error sending admin notification %q: %v", subject, err)
	}
}

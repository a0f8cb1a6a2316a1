package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"kosht/internal/models/db_models"
	"kosht/internal/models/request_models"
	"kosht/internal/models/response_models"
	"kosht/internal/repositories"
	"kosht/pkg/liqpay"
	"kosht/pkg/utils"
)

var donationDescriptions = map[string]string{
	"uk": "Благодійний внесок на діяльність організації",
	"en": "Donation for the organisation's livelihood",
}

type ProjectServiceInterface interface {
	Create(ctx context.Context, req request_models.CreateProjectRequest) (string, error)
	Update(ctx context.Context, req request_models.UpdateProjectRequest) error
	AdminList(ctx context.Context) ([]response_models.ProjectResponse, error)
	PublicList(ctx context.Context) ([]response_models.ProjectResponse, error)
	Button(ctx context.Context, projectID, language, currency string) (*liqpay.Checkout, error)
}

type ProjectService struct {
	projectRepo repositories.ProjectRepositoryInterface
	txnRepo     repositories.TransactionRepositoryInterface
	liqpay      *liqpay.Client
	cfg         PaymentConfig
	now         func() time.Time
}

func NewProjectService(
	projectRepo repositories.ProjectRepositoryInterface,
	txnRepo repositories.TransactionRepositoryInterface,
	client *liqpay.Client,
	cfg PaymentConfig,
) ProjectServiceInterface {
	return &ProjectService{
		projectRepo: projectRepo,
		txnRepo:     txnRepo,
		liqpay:      client,
		cfg:         cfg,
		now:         time.Now,
	}
}

func (p *ProjectService) Create(ctx context.Context, req request_models.CreateProjectRequest) (string, error) {
	project := &db_models.Project{
		Slug:     req.Slug,
		NameUK:   req.Name,
		NameEN:   req.Name,
		Currency: "UAH",
		State:    db_models.ProjectUnpublished,
	}
	if err := p.projectRepo.Create(ctx, project); err != nil {
		return "", err
	}
	return project.ID.String(), nil
}

func (p *ProjectService) Update(ctx context.Context, req request_models.UpdateProjectRequest) error {
	existing, err := p.projectRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	existing.Amount = req.Amount
	existing.Currency = req.Currency
	existing.State = db_models.ProjectState(req.State)
	existing.Image = req.Image
	existing.NameEN = req.NameEN
	existing.DescriptionEN = req.DescriptionEN
	existing.ShortDescriptionEN = req.ShortDescriptionEN
	existing.PlannedSpendingsEN = req.PlannedSpendingsEN
	existing.ActualSpendingsEN = req.ActualSpendingsEN
	existing.NameUK = req.NameUK
	existing.DescriptionUK = req.DescriptionUK
	existing.ShortDescriptionUK = req.ShortDescriptionUK
	existing.PlannedSpendingsUK = req.PlannedSpendingsUK
	existing.ActualSpendingsUK = req.ActualSpendingsUK

	return p.projectRepo.Update(ctx, existing)
}

// AdminList returns every project regardless of state, with funding figures.
func (p *ProjectService) AdminList(ctx context.Context) ([]response_models.ProjectResponse, error) {
	projects, err := p.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return p.withFunding(ctx, projects)
}

// PublicList returns published projects only.
func (p *ProjectService) PublicList(ctx context.Context) ([]response_models.ProjectResponse, error) {
	projects, err := p.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	published := make([]db_models.Project, 0, len(projects))
	for _, project := range projects {
		if project.State == db_models.ProjectPublished {
			published = append(published, project)
		}
	}
	return p.withFunding(ctx, published)
}

func (p *ProjectService) withFunding(ctx context.Context, projects []db_models.Project) ([]response_models.ProjectResponse, error) {
	responses := make([]response_models.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		txns, err := p.txnRepo.ListByProjectID(ctx, project.ID.String())
		if err != nil {
			return nil, err
		}
		responses = append(responses, p.summarize(project, txns))
	}
	return responses, nil
}

// summarize derives the funding figures for one project. Each amount is
// floored individually before summing; fractional cents are dropped
// per-transaction to match the provider's settlement granularity. Nothing
// here is persisted, so the figures cannot go stale.
func (p *ProjectService) summarize(project db_models.Project, txns []db_models.Transaction) response_models.ProjectResponse {
	now := p.now()
	var funded, monthFunded float64
	var bakers int

	for _, txn := range txns {
		if !txn.Status.CountsTowardFunding() {
			continue
		}
		amount := math.Floor(txn.Amount)
		funded += amount
		bakers++

		created := time.Unix(txn.CreatedAt, 0)
		if created.Year() == now.Year() && created.Month() == now.Month() {
			monthFunded += amount
		}
	}

	return response_models.ProjectResponse{
		ID:                 project.ID.String(),
		Slug:               project.Slug,
		Amount:             project.Amount,
		Currency:           project.Currency,
		State:              string(project.State),
		Image:              project.Image,
		NameEN:             project.NameEN,
		DescriptionEN:      project.DescriptionEN,
		ShortDescriptionEN: project.ShortDescriptionEN,
		PlannedSpendingsEN: project.PlannedSpendingsEN,
		ActualSpendingsEN:  project.ActualSpendingsEN,
		NameUK:             project.NameUK,
		DescriptionUK:      project.DescriptionUK,
		ShortDescriptionUK: project.ShortDescriptionUK,
		PlannedSpendingsUK: project.PlannedSpendingsUK,
		ActualSpendingsUK:  project.ActualSpendingsUK,
		CreatedAt:          project.CreatedAt,
		AmountFunded:       funded,
		MonthFunded:        monthFunded,
		Bakers:             bakers,
		Completed:          funded >= project.Amount,
	}
}

// Button generates a fixed-amount donation form for a single published
// project. The order reference carries only the project component; the
// reconciler treats such callbacks as order-less donations.
func (p *ProjectService) Button(ctx context.Context, projectID, language, currency string) (*liqpay.Checkout, error) {
	project, err := p.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.State != db_models.ProjectPublished {
		return nil, utils.ErrProjectNotFound
	}

	if language == "" {
		language = "uk"
	}
	if currency == "" {
		currency = "UAH"
	}

	name := project.NameUK
	if language == "en" {
		name = project.NameEN
	}

	ref := utils.OrderRef{ProjectID: project.ID.String()}
	checkout, err := p.liqpay.Checkout(liqpay.CheckoutParams{
		Action:      liqpay.ActionPayDonate,
		Amount:      300,
		Currency:    currency,
		Description: fmt.Sprintf("%s: %q", donationDescriptions[language], name),
		OrderID:     ref.Format(),
		Language:    language,
		ResultURL:   p.cfg.FrontendURL,
		ServerURL:   p.cfg.CallbackURL(),
	})
	if err != nil {
		log.Printf("Error building donation button for project %s: %v", projectID, err)
		return nil, err
	}
	return &checkout, nil
}

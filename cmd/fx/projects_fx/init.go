package projects_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kosht/internal/api/controllers"
	"kosht/internal/repositories"
	"kosht/internal/services"
	"kosht/pkg/liqpay"
)

var Module = fx.Provide(
	provideProjectRepo, provideProjectService, provideProjectsController,
)

func provideProjectRepo(db *gorm.DB) repositories.ProjectRepositoryInterface {
	return repositories.NewProjectRepository(db)
}

func provideProjectService(
	projectRepo repositories.ProjectRepositoryInterface,
	txnRepo repositories.TransactionRepositoryInterface,
	client *liqpay.Client,
	cfg services.PaymentConfig,
) services.ProjectServiceInterface {
	return services.NewProjectService(projectRepo, txnRepo, client, cfg)
}

func provideProjectsController(projectService services.ProjectServiceInterface) *controllers.ProjectsController {
	return controllers.NewProjectsController(projectService)
}

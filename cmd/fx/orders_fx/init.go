package orders_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kosht/internal/api/controllers"
	"kosht/internal/repositories"
	"kosht/internal/services"
	"kosht/pkg/liqpay"
)

var Module = fx.Provide(
	provideOrderRepo, provideOrderService, provideOrdersController,
)

func provideOrderRepo(db *gorm.DB) repositories.OrderRepositoryInterface {
	return repositories.NewOrderRepository(db)
}

func provideOrderService(
	orderRepo repositories.OrderRepositoryInterface,
	projectRepo repositories.ProjectRepositoryInterface,
	client *liqpay.Client,
	mail services.IMailService,
	cfg services.PaymentConfig,
) services.OrderServiceInterface {
	return services.NewOrderService(orderRepo, projectRepo, client, mail, cfg)
}

func provideOrdersController(orderService services.OrderServiceInterface) *controllers.OrdersController {
	return controllers.NewOrdersController(orderService)
}

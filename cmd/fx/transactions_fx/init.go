package transactions_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kosht/internal/api/controllers"
	"kosht/internal/repositories"
	"kosht/internal/services"
	"kosht/pkg/liqpay"
)

var Module = fx.Provide(
	provideTransactionRepo, provideTransactionService, providePaymentService, provideTransactionsController,
)

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepositoryInterface {
	return repositories.NewTransactionRepository(db)
}

func provideTransactionService(txnRepo repositories.TransactionRepositoryInterface) services.TransactionServiceInterface {
	return services.NewTransactionService(txnRepo)
}

func providePaymentService(
	orderRepo repositories.OrderRepositoryInterface,
	txnRepo repositories.TransactionRepositoryInterface,
	projectRepo repositories.ProjectRepositoryInterface,
	client *liqpay.Client,
	mail services.IMailService,
	cfg services.PaymentConfig,
) services.PaymentServiceInterface {
	return services.NewPaymentService(orderRepo, txnRepo, projectRepo, client, mail, cfg)
}

func provideTransactionsController(
	transactionService services.TransactionServiceInterface,
	paymentService services.PaymentServiceInterface,
) *controllers.TransactionsController {
	return controllers.NewTransactionsController(transactionService, paymentService)
}

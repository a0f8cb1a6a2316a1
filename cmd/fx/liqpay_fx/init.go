package liqpay_fx

import (
	"go.uber.org/fx"
	"log"
	"os"

	"kosht/internal/services"
	"kosht/pkg/liqpay"
)

var Module = fx.Provide(
	provideLiqpayClient, providePaymentConfig,
)

func provideLiqpayClient() *liqpay.Client {
	client, err := liqpay.New(os.Getenv("LIQPAY_PUBLIC_KEY"), os.Getenv("LIQPAY_PRIVATE_KEY"))
	if err != nil {
		log.Fatalf("Error initializing LiqPay client: %v", err)
	}
	return client
}

func providePaymentConfig() services.PaymentConfig {
	slug := os.Getenv("DEFAULT_PROJECT_SLUG")
	if slug == "" {
		slug = "shpp-kowo"
	}

	return services.PaymentConfig{
		DefaultProjectSlug: slug,
		FrontendURL:        os.Getenv("FRONTEND_URL"),
		ServerURL:          os.Getenv("SERVER_URL"),
	}
}

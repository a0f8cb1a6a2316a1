package auth_fx

import (
	"go.uber.org/fx"
	"os"

	"kosht/internal/api/controllers"
	"kosht/internal/services"
)

var Module = fx.Provide(
	provideAuthService, provideAuthController,
)

func provideAuthService() services.AuthServiceInterface {
	cfg := services.AuthConfig{
		AdminUser:         os.Getenv("ADMIN_USER"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
	return services.NewAuthService(cfg)
}

func provideAuthController(authService services.AuthServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(authService)
}

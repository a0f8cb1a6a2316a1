package main

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"log"
	"os"

	"kosht/cmd/fx/auth_fx"
	"kosht/cmd/fx/db_fx"
	"kosht/cmd/fx/liqpay_fx"
	"kosht/cmd/fx/mail_fx"
	"kosht/cmd/fx/orders_fx"
	"kosht/cmd/fx/projects_fx"
	"kosht/cmd/fx/transactions_fx"
	"kosht/internal/api/controllers"
	"kosht/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	app := fx.New(
		db_fx.Module,
		liqpay_fx.Module,
		mail_fx.Module,
		auth_fx.Module,
		projects_fx.Module,
		orders_fx.Module,
		transactions_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at :" + os.Getenv("PORT"))
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	projectsController *controllers.ProjectsController,
	ordersController *controllers.OrdersController,
	transactionsController *controllers.TransactionsController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, authController, projectsController, ordersController, transactionsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	projectsController *controllers.ProjectsController,
	ordersController *controllers.OrdersController,
	transactionsController *controllers.TransactionsController) {

	api := r.Group("/api/v1")
	admin := middleware.JWTAuthMiddleware()

	api.POST("/auth/login", authController.Login)

	projects := api.Group("/projects")
	projects.POST("/create", admin, projectsController.Create)
	projects.POST("/update", admin, projectsController.Update)
	projects.GET("/admin-list", admin, projectsController.AdminList)
	projects.GET("/list", projectsController.List)
	projects.GET("/button", projectsController.Button)

	orders := api.Group("/orders")
	orders.POST("/:project_id/donate", ordersController.Donate)
	orders.POST("/:project_id/donated", ordersController.Donated)
	orders.GET("/list-subscriptions", ordersController.ListSubscriptions)

	transactions := api.Group("/transactions")
	transactions.POST("/create", admin, transactionsController.Create)
	transactions.POST("/revoke", admin, transactionsController.Revoke)
	transactions.POST("/reaffirm", admin, transactionsController.Reaffirm)
	transactions.GET("/list", admin, transactionsController.List)
	transactions.POST("/liqpay-confirmation", transactionsController.Confirmation)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"warehouse-app/config"
	"warehouse-app/controllers"
	"warehouse-app/middleware"
	"warehouse-app/services"
)

func SetupBalanceRoutes(app *fiber.App, db *gorm.DB, log *zap.Logger) {
	controller := controllers.NewBalanceController(services.NewBalanceService(db, log))
	api := app.Group(config.MAIN_ROUTES+"/balances", middleware.AuthMiddleware)

	api.Get("/", controller.GetBalances)
	api.Get("/excel", controller.ExportExcel)
}

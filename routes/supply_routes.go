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

func SetupSupplyRoutes(app *fiber.App, db *gorm.DB, log *zap.Logger) {
	balances := services.NewBalanceService(db, log)
	controller := controllers.NewSupplyController(services.NewSupplyService(db, log, balances))
	api := app.Group(config.MAIN_ROUTES+"/supplies", middleware.AuthMiddleware)

	api.Post("/", controller.CreateSupply)
	api.Get("/", controller.GetAllSupplies)
	api.Get("/:id", controller.GetSupplyByID)
	api.Put("/:id", controller.UpdateSupply)
	api.Delete("/:id", controller.DeleteSupply)
}

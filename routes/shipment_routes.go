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

func SetupShipmentRoutes(app *fiber.App, db *gorm.DB, log *zap.Logger) {
	balances := services.NewBalanceService(db, log)
	controller := controllers.NewShipmentController(services.NewShipmentService(db, log, balances))
	api := app.Group(config.MAIN_ROUTES+"/shipments", middleware.AuthMiddleware)

	api.Post("/", controller.CreateShipment)
	api.Get("/", controller.GetAllShipments)
	api.Get("/:id", controller.GetShipmentByID)
	api.Put("/:id", controller.UpdateShipment)
	api.Delete("/:id", controller.DeleteShipment)
	api.Post("/:id/status", controller.ChangeShipmentStatus)
}

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

func SetupClientRoutes(app *fiber.App, db *gorm.DB, log *zap.Logger) {
	controller := controllers.NewClientController(services.NewClientService(db, log))
	api := app.Group(config.MAIN_ROUTES+"/clients", middleware.AuthMiddleware)

	api.Post("/", controller.CreateClient)
	api.Get("/", controller.GetAllClients)
	api.Get("/:id", controller.GetClientByID)
	api.Put("/:id", controller.UpdateClient)
	api.Delete("/:id", controller.DeleteClient)
	api.Post("/:id/archive", controller.ArchiveClient)
	api.Post("/:id/unarchive", controller.UnarchiveClient)
}

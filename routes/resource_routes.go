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

func SetupResourceRoutes(app *fiber.App, db *gorm.DB, log *zap.Logger) {
	controller := controllers.NewResourceController(services.NewResourceService(db, log))
	api := app.Group(config.MAIN_ROUTES+"/resources", middleware.AuthMiddleware)

	api.Post("/", controller.CreateResource)
	api.Get("/", controller.GetAllResources)
	api.Get("/:id", controller.GetResourceByID)
	api.Put("/:id", controller.UpdateResource)
	api.Delete("/:id", controller.DeleteResource)
	api.Post("/:id/archive", controller.ArchiveResource)
	api.Post("/:id/unarchive", controller.UnarchiveResource)
}

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

func SetupUomRoutes(app *fiber.App, db *gorm.DB, log *zap.Logger) {
	controller := controllers.NewUomController(services.NewUnitService(db, log))
	api := app.Group(config.MAIN_ROUTES+"/units", middleware.AuthMiddleware)

	api.Post("/", controller.CreateUom)
	api.Get("/", controller.GetAllUoms)
	api.Get("/:id", controller.GetUomByID)
	api.Put("/:id", controller.UpdateUom)
	api.Delete("/:id", controller.DeleteUom)
	api.Post("/:id/archive", controller.ArchiveUom)
	api.Post("/:id/unarchive", controller.UnarchiveUom)
}

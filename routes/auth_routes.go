package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"warehouse-app/config"
	"warehouse-app/controllers"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	controller := controllers.NewAuthController(db)
	api := app.Group(config.MAIN_ROUTES + "/auth")

	api.Post("/login", controller.Login)
}

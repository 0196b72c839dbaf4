package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"warehouse-app/config"
	"warehouse-app/database"
	"warehouse-app/idgen"
	"warehouse-app/migration"
	"warehouse-app/routes"
)

func main() {
	config.LoadConfig()

	logger, err := config.NewLogger()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	idgen.Init()

	database.RunSeeders(db)

	app := fiber.New()
	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupResourceRoutes(app, db, logger)
	routes.SetupUomRoutes(app, db, logger)
	routes.SetupClientRoutes(app, db, logger)
	routes.SetupBalanceRoutes(app, db, logger)
	routes.SetupSupplyRoutes(app, db, logger)
	routes.SetupShipmentRoutes(app, db, logger)

	logger.Info("server listening on port " + config.APP_PORT)
	if err := app.Listen(":" + config.APP_PORT); err != nil {
		log.Fatal(err)
	}
}

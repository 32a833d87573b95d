package main

import (
	"dashboard-app/config"
	"dashboard-app/controllers/idgen"
	"dashboard-app/database"
	"dashboard-app/middleware"
	"dashboard-app/routes"
	"dashboard-app/utils/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()

	if err := logger.Init(config.APP_ENV); err != nil {
		panic(err)
	}
	defer logger.Close()

	idgen.Init()

	db, err := database.Open()
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate", zap.Error(err))
	}

	if err := database.SeedAdminUser(db); err != nil {
		logger.Fatal("failed to seed admin user", zap.Error(err))
	}

	app := fiber.New()

	config.SetupCORS(app)
	app.Use(middleware.RequestLogger())

	routes.SetupAuthRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)
	routes.SetupActivityRoutes(app, db)
	routes.SetupLogisticsRoutes(app, db)
	routes.SetupHistoryRoutes(app, db)

	logger.Info("server listening", zap.String("port", config.APP_PORT))

	if err := app.Listen(":" + config.APP_PORT); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

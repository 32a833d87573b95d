package routes

import (
	"dashboard-app/config"
	"dashboard-app/controllers"
	"dashboard-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupHistoryRoutes(app *fiber.App, db *gorm.DB) {
	historyController := controllers.NewHistoryController(db)
	api := app.Group(config.MAIN_ROUTES+"/history", middleware.AuthMiddleware)

	api.Get("/outbound", historyController.SearchOutboundHistory)
	api.Get("/outbound/export", historyController.ExportOutboundHistory)
}

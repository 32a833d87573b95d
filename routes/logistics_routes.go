package routes

import (
	"dashboard-app/config"
	"dashboard-app/controllers"
	"dashboard-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLogisticsRoutes(app *fiber.App, db *gorm.DB) {
	logisticsController := controllers.NewLogisticsController(db)
	api := app.Group(config.MAIN_ROUTES+"/logistics", middleware.AuthMiddleware)

	api.Get("/", logisticsController.GetLogistics)
}

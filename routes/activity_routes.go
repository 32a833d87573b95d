package routes

import (
	"dashboard-app/config"
	"dashboard-app/controllers"
	"dashboard-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupActivityRoutes(app *fiber.App, db *gorm.DB) {
	activityController := controllers.NewActivityController(db)
	api := app.Group(config.MAIN_ROUTES+"/activity", middleware.AuthMiddleware)

	api.Get("/inbound", activityController.GetInboundActivity)
	api.Get("/inbound/detail", activityController.GetInboundActivityDetail)
	api.Get("/outbound", activityController.GetOutboundActivity)
	api.Get("/outbound/detail", activityController.GetOutboundActivityDetail)
}

package routes

import (
	"dashboard-app/config"
	"dashboard-app/controllers"
	"dashboard-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)
	api := app.Group(config.MAIN_ROUTES + "/auth")

	api.Post("/login", authController.Login)
	api.Post("/logout", authController.Logout)
	api.Get("/me", middleware.AuthMiddleware, authController.Me)
	api.Post("/create-user", middleware.AuthMiddleware, authController.CreateUser)
}

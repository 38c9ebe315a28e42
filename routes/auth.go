package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/servimart/vendor-dashboard/controllers"
	"github.com/servimart/vendor-dashboard/middleware"
)

// SetupAuthRoutes configures authentication and profile routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	profile := app.Group("/api/profile", middleware.Protected())
	profile.Get("/", controllers.GetProfile)
	profile.Put("/", controllers.UpdateProfile)
	profile.Post("/logo", controllers.UploadLogo)
}

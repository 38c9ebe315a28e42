package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/servimart/vendor-dashboard/controllers"
	"github.com/servimart/vendor-dashboard/middleware"
)

// SetupNotificationRoutes configures notification management, the
// service-request decision workflow and the dashboard aggregate
func SetupNotificationRoutes(app *fiber.App) {
	notification := app.Group("/api/notifications", middleware.Protected())
	notification.Get("/", controllers.GetNotifications)
	notification.Put("/:id", controllers.UpdateNotification)
	notification.Delete("/:id", controllers.DeleteNotification)

	request := app.Group("/api/service-requests", middleware.Protected())
	request.Get("/", controllers.GetServiceRequests)
	request.Post("/", controllers.DecideServiceRequest)

	app.Get("/api/dashboard-stats", middleware.Protected(), controllers.GetDashboardStats)
}

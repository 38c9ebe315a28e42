package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/servimart/vendor-dashboard/controllers"
	"github.com/servimart/vendor-dashboard/middleware"
)

// SetupOrderRoutes configures service order routes, including the alternate
// historical update route and the XLSX export
func SetupOrderRoutes(app *fiber.App) {
	order := app.Group("/api/service-orders", middleware.Protected())
	order.Get("/", controllers.GetOrders)
	order.Get("/export", controllers.ExportOrders)
	order.Get("/:id", controllers.GetOrder)
	order.Put("/:id", controllers.UpdateOrder)
	order.Delete("/:id", controllers.DeleteOrder)

	// Alternate route kept for old dashboard clients; same validation set
	alt := app.Group("/api/orders", middleware.Protected())
	alt.Put("/:id", controllers.UpdateOrderAlt)
}

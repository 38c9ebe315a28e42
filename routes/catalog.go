package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/servimart/vendor-dashboard/controllers"
	"github.com/servimart/vendor-dashboard/middleware"
)

// SetupCatalogRoutes configures service, category and pincode routes
func SetupCatalogRoutes(app *fiber.App) {
	service := app.Group("/api/services", middleware.Protected())
	service.Get("/", controllers.GetServices)
	service.Get("/:id", controllers.GetService)
	service.Post("/", controllers.CreateService)
	service.Put("/:id", controllers.UpdateService)
	service.Delete("/:id", controllers.DeleteService)

	category := app.Group("/api/service-categories", middleware.Protected())
	category.Get("/", controllers.GetCategories)
	category.Get("/with-counts", controllers.GetCategoriesWithCounts)
	category.Post("/", controllers.CreateCategory)
	category.Put("/:id", controllers.UpdateCategory)
	category.Delete("/:id", controllers.DeleteCategory)

	pincode := app.Group("/api/pincodes", middleware.Protected())
	pincode.Get("/", controllers.GetPincodes)
	pincode.Post("/", controllers.CreatePincode)
	pincode.Put("/:id", controllers.UpdatePincode)
	pincode.Delete("/:id", controllers.DeletePincode)
}

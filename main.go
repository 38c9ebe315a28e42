package main

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/servimart/vendor-dashboard/cron"
	"github.com/servimart/vendor-dashboard/db"
	"github.com/servimart/vendor-dashboard/redis"
	"github.com/servimart/vendor-dashboard/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Vendor Dashboard API")
	})

	routes.SetupAuthRoutes(app)
	routes.SetupCatalogRoutes(app)
	routes.SetupOrderRoutes(app)
	routes.SetupNotificationRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	app.Listen(":" + port)
}

package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/servimart/vendor-dashboard/db"
	"github.com/servimart/vendor-dashboard/models"
	"github.com/servimart/vendor-dashboard/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	err = testDB.AutoMigrate(
		&models.Vendor{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.ServicePincode{},
		&models.ServiceOrder{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	db.DB = testDB
	return testDB
}

// stubAuth plays the role of middleware.Protected in tests
func stubAuth(vendorID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("vendorID", vendorID)
		return c.Next()
	}
}

// setupTestApp wires all vendor routes behind a stub auth for the given vendor
func setupTestApp(vendorID uint) *fiber.App {
	app := fiber.New()
	auth := stubAuth(vendorID)

	app.Post("/api/auth/register", Register)
	app.Post("/api/auth/login", Login)
	app.Post("/api/auth/refresh", RefreshToken)

	app.Get("/api/profile", auth, GetProfile)
	app.Put("/api/profile", auth, UpdateProfile)

	app.Get("/api/services", auth, GetServices)
	app.Get("/api/services/:id", auth, GetService)
	app.Post("/api/services", auth, CreateService)
	app.Put("/api/services/:id", auth, UpdateService)
	app.Delete("/api/services/:id", auth, DeleteService)

	app.Get("/api/service-categories", auth, GetCategories)
	app.Get("/api/service-categories/with-counts", auth, GetCategoriesWithCounts)
	app.Post("/api/service-categories", auth, CreateCategory)
	app.Put("/api/service-categories/:id", auth, UpdateCategory)
	app.Delete("/api/service-categories/:id", auth, DeleteCategory)

	app.Get("/api/pincodes", auth, GetPincodes)
	app.Post("/api/pincodes", auth, CreatePincode)
	app.Put("/api/pincodes/:id", auth, UpdatePincode)
	app.Delete("/api/pincodes/:id", auth, DeletePincode)

	app.Get("/api/service-orders", auth, GetOrders)
	app.Get("/api/service-orders/export", auth, ExportOrders)
	app.Get("/api/service-orders/:id", auth, GetOrder)
	app.Put("/api/service-orders/:id", auth, UpdateOrder)
	app.Delete("/api/service-orders/:id", auth, DeleteOrder)
	app.Put("/api/orders/:id", auth, UpdateOrderAlt)

	app.Get("/api/notifications", auth, GetNotifications)
	app.Put("/api/notifications/:id", auth, UpdateNotification)
	app.Delete("/api/notifications/:id", auth, DeleteNotification)

	app.Get("/api/service-requests", auth, GetServiceRequests)
	app.Post("/api/service-requests", auth, DecideServiceRequest)

	app.Get("/api/dashboard-stats", auth, GetDashboardStats)

	return app
}

// doRequest executes a JSON request against the app and decodes the response
func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	decoded := make(map[string]interface{})
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			// Non-JSON responses (the XLSX export) keep an empty map
			decoded["_raw"] = string(raw)
		}
	}

	return resp.StatusCode, decoded
}

// sentMail captures emails dispatched through the stubbed mailer
type sentMail struct {
	To      string
	Subject string
	Body    string
}

// stubMailer replaces the SMTP transport for the duration of a test. When
// fail is non-nil every send returns it.
func stubMailer(t *testing.T, fail error) *[]sentMail {
	t.Helper()

	var sent []sentMail
	original := utils.SendEmail
	utils.SendEmail = func(to, subject, body string) error {
		if fail != nil {
			return fail
		}
		sent = append(sent, sentMail{To: to, Subject: subject, Body: body})
		return nil
	}
	t.Cleanup(func() { utils.SendEmail = original })
	return &sent
}

func createTestVendor(t *testing.T, email string) *models.Vendor {
	t.Helper()

	vendor := &models.Vendor{
		Name:         "Test Vendor",
		ContactEmail: email,
		Password:     "$2a$10$placeholderplaceholderplaceholderplaceholde",
		IsActive:     true,
	}
	if err := db.DB.Create(vendor).Error; err != nil {
		t.Fatalf("Failed to create test vendor: %v", err)
	}
	return vendor
}

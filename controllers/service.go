package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/servimart/vendor-dashboard/db"
	"github.com/servimart/vendor-dashboard/models"
)

// notFound renders the shared not-found response. Ownership mismatches go
// through here too so foreign rows are indistinguishable from absent ones.
func notFound(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": what + " not found",
	})
}

// GetServices returns all services owned by the vendor
func GetServices(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	var services []models.Service
	if err := db.DB.Where("vendor_id = ?", vendorID).Order("created_at desc").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"services": services,
		"count":    len(services),
	})
}

func GetService(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid service ID",
		})
	}

	var service models.Service
	if err := db.DB.Where("id = ? AND vendor_id = ?", id, vendorID).First(&service).Error; err != nil {
		return notFound(c, "Service")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"service": service,
	})
}

func CreateService(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if service.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required field: name",
		})
	}
	if service.BasePrice < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "base_price must not be negative",
		})
	}
	if service.DurationMinutes <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "duration_minutes must be greater than zero",
		})
	}

	// Ownership comes from the token, never from the body
	service.VendorID = vendorID

	if err := db.DB.Create(service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create service",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"service": service,
	})
}

// UpdateService updates a service owned by the vendor
func UpdateService(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid service ID",
		})
	}

	var existingService models.Service
	if err := db.DB.Where("id = ? AND vendor_id = ?", id, vendorID).First(&existingService).Error; err != nil {
		return notFound(c, "Service")
	}

	var input struct {
		Name            *string  `json:"name"`
		Description     *string  `json:"description"`
		CategoryID      *string  `json:"category_id"`
		BasePrice       *float64 `json:"base_price"`
		DurationMinutes *int     `json:"duration_minutes"`
		IsAvailable     *bool    `json:"is_available"`
		ImageURL        *string  `json:"image_url"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Whitelisted columns only; id and ownership are never writable and
	// unknown keys are dropped
	updates := make(map[string]interface{})
	if input.Name != nil {
		if *input.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Missing required field: name",
			})
		}
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.CategoryID != nil {
		updates["category_id"] = *input.CategoryID
	}
	if input.BasePrice != nil {
		if *input.BasePrice < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "base_price must not be negative",
			})
		}
		updates["base_price"] = *input.BasePrice
	}
	if input.DurationMinutes != nil {
		if *input.DurationMinutes <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "duration_minutes must be greater than zero",
			})
		}
		updates["duration_minutes"] = *input.DurationMinutes
	}
	if input.IsAvailable != nil {
		updates["is_available"] = *input.IsAvailable
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&existingService).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update service",
			})
		}
	}

	if err := db.DB.First(&existingService, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve updated service",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"service": existingService,
	})
}

// DeleteService deletes a service owned by the vendor
func DeleteService(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid service ID",
		})
	}

	var service models.Service
	if db.DB.Where("id = ? AND vendor_id = ?", id, vendorID).First(&service).RowsAffected == 0 {
		return notFound(c, "Service")
	}

	db.DB.Delete(&service)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Service deleted",
	})
}

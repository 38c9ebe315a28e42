package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/servimart/vendor-dashboard/db"
	"github.com/servimart/vendor-dashboard/models"
)

// GetCategories returns the vendor's service categories
func GetCategories(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	var categories []models.ServiceCategory
	if err := db.DB.Where("vendor_id = ?", vendorID).Order("id asc").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"categories": categories,
	})
}

// GetCategoriesWithCounts returns categories with the number of services in each
func GetCategoriesWithCounts(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	type categoryCount struct {
		models.ServiceCategory
		ServiceCount int64 `json:"service_count"`
	}

	var rows []categoryCount
	err := db.DB.Model(&models.ServiceCategory{}).
		Select("service_categories.*, COUNT(services.id) as service_count").
		Joins("LEFT JOIN services ON services.category_id = service_categories.category_id AND services.deleted_at IS NULL").
		Where("service_categories.vendor_id = ?", vendorID).
		Group("service_categories.id").
		Order("service_categories.id asc").
		Scan(&rows).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"categories": rows,
	})
}

func CreateCategory(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	category := new(models.ServiceCategory)
	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if category.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required field: name",
		})
	}

	category.ID = 0
	category.CategoryID = ""
	category.VendorID = vendorID

	// The SCTR<n> code is assigned in the AfterCreate hook from the
	// auto-increment key, so suffixes are strictly increasing.
	if err := db.DB.Create(category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"category": category,
	})
}

func UpdateCategory(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)
	code := c.Params("id")

	var category models.ServiceCategory
	if err := db.DB.Where("category_id = ? AND vendor_id = ?", code, vendorID).First(&category).Error; err != nil {
		return notFound(c, "Category")
	}

	var input struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required field: name",
		})
	}

	if err := db.DB.Model(&category).Update("name", input.Name).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update category",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"category": category,
	})
}

func DeleteCategory(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)
	code := c.Params("id")

	var category models.ServiceCategory
	if db.DB.Where("category_id = ? AND vendor_id = ?", code, vendorID).First(&category).RowsAffected == 0 {
		return notFound(c, "Category")
	}

	db.DB.Delete(&category)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Category deleted",
	})
}

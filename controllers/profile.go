package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/servimart/vendor-dashboard/db"
	"github.com/servimart/vendor-dashboard/models"
	"github.com/servimart/vendor-dashboard/utils"
)

// GetProfile retrieves the vendor's profile information
func GetProfile(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	var vendor models.Vendor
	if err := db.DB.First(&vendor, vendorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Vendor profile not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"profile": vendor,
	})
}

// UpdateProfile updates the vendor's profile information
func UpdateProfile(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	var vendor models.Vendor
	if err := db.DB.First(&vendor, vendorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Vendor not found",
		})
	}

	var input struct {
		Name         *string `json:"name"`
		Phone        *string `json:"phone"`
		BusinessName *string `json:"business_name"`
		Address      *string `json:"address"`
		City         *string `json:"city"`
		State        *string `json:"state"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Only these columns are writable here. Credentials and identity never
	// change through this route; the logo has its own upload endpoint.
	updates := make(map[string]interface{})
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.BusinessName != nil {
		updates["business_name"] = *input.BusinessName
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.City != nil {
		updates["city"] = *input.City
	}
	if input.State != nil {
		updates["state"] = *input.State
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&vendor).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update profile",
			})
		}
	}

	if err := db.DB.First(&vendor, vendorID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve updated profile",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile updated successfully",
		"profile": vendor,
	})
}

// UploadLogo stores the vendor's logo on Cloudinary and saves the URL.
func UploadLogo(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	var vendor models.Vendor
	if err := db.DB.First(&vendor, vendorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Vendor not found",
		})
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required field: logo",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("vendor_%d_logo", vendorID), "vendor_logos")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload logo",
		})
	}

	if err := db.DB.Model(&vendor).Update("logo_url", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save logo URL",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"logo_url": url,
	})
}

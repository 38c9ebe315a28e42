package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/servimart/vendor-dashboard/db"
	"github.com/servimart/vendor-dashboard/models"
	"github.com/servimart/vendor-dashboard/utils"
)

// GetPincodes returns the vendor's coverage pincodes, optionally filtered by service
func GetPincodes(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	query := db.DB.Preload("Service").Where("vendor_id = ?", vendorID)
	if serviceID := c.QueryInt("service_id"); serviceID > 0 {
		query = query.Where("service_id = ?", serviceID)
	}

	var pincodes []models.ServicePincode
	if err := query.Order("created_at desc").Find(&pincodes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"pincodes": pincodes,
		"count":    len(pincodes),
	})
}

// CreatePincode adds a coverage pincode to one of the vendor's services.
// The pincode must be unique across all of the vendor's services.
func CreatePincode(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	var input struct {
		ServiceID uint   `json:"service_id"`
		Pincode   string `json:"pincode"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if input.ServiceID == 0 || input.Pincode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: service_id, pincode",
		})
	}

	pincode := utils.NormalizePincode(input.Pincode)
	if !utils.ValidatePincode(pincode) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Pincode must be exactly 6 digits",
		})
	}

	// The target service must belong to the caller
	var service models.Service
	if err := db.DB.Where("id = ? AND vendor_id = ?", input.ServiceID, vendorID).First(&service).Error; err != nil {
		return notFound(c, "Service")
	}

	// Duplicate anywhere under this vendor is a conflict; naming the other
	// service makes the dashboard error actionable.
	var existing models.ServicePincode
	if db.DB.Preload("Service").
		Where("vendor_id = ? AND pincode = ?", vendorID, pincode).
		First(&existing).RowsAffected > 0 {
		if existing.ServiceID == input.ServiceID {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Pincode already added to this service",
			})
		}
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": fmt.Sprintf("Pincode %s is already covered by service %q", pincode, existing.Service.Name),
		})
	}

	record := models.ServicePincode{
		Pincode:   pincode,
		ServiceID: input.ServiceID,
		VendorID:  vendorID,
	}
	if err := db.DB.Create(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create pincode",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"pincode": record,
	})
}

// UpdatePincode rewrites the pincode value on an existing coverage row
func UpdatePincode(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)
	id := c.Params("id")

	var record models.ServicePincode
	if err := db.DB.Where("id = ? AND vendor_id = ?", id, vendorID).First(&record).Error; err != nil {
		return notFound(c, "Pincode")
	}

	var input struct {
		Pincode string `json:"pincode"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	pincode := utils.NormalizePincode(input.Pincode)
	if !utils.ValidatePincode(pincode) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Pincode must be exactly 6 digits",
		})
	}

	var existing models.ServicePincode
	if db.DB.Preload("Service").
		Where("vendor_id = ? AND pincode = ? AND id != ?", vendorID, pincode, record.ID).
		First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": fmt.Sprintf("Pincode %s is already covered by service %q", pincode, existing.Service.Name),
		})
	}

	if err := db.DB.Model(&record).Update("pincode", pincode).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update pincode",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"pincode": record,
	})
}

func DeletePincode(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)
	id := c.Params("id")

	var record models.ServicePincode
	if db.DB.Where("id = ? AND vendor_id = ?", id, vendorID).First(&record).RowsAffected == 0 {
		return notFound(c, "Pincode")
	}

	db.DB.Delete(&record)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Pincode deleted",
	})
}

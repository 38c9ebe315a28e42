package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/servimart/vendor-dashboard/db"
	"github.com/servimart/vendor-dashboard/models"
)

// GetNotifications returns the vendor's visible notifications with unread count
func GetNotifications(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	page := 1
	limit := 20
	if parsed := c.QueryInt("page"); parsed > 0 {
		page = parsed
	}
	if parsed := c.QueryInt("limit"); parsed > 0 {
		limit = parsed
	}
	offset := (page - 1) * limit

	query := db.DB.Model(&models.Notification{}).
		Where("vendor_id = ? AND for_vendor = ?", vendorID, true)
	if c.Query("unread_only") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	query.Count(&total)

	var unread int64
	db.DB.Model(&models.Notification{}).
		Where("vendor_id = ? AND for_vendor = ? AND is_read = ?", vendorID, true, false).
		Count(&unread)

	var notifications []models.Notification
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&notifications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"notifications": notifications,
		"total":         total,
		"unread_count":  unread,
		"page":          page,
		"limit":         limit,
	})
}

// UpdateNotification marks a notification read or hides it from the vendor
// feed (for_vendor=0, the soft-remove path — the row itself stays).
func UpdateNotification(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid notification ID",
		})
	}

	var notification models.Notification
	if err := db.DB.Where("id = ? AND vendor_id = ?", id, vendorID).First(&notification).Error; err != nil {
		return notFound(c, "Notification")
	}

	var input struct {
		IsRead    *bool `json:"is_read"`
		ForVendor *bool `json:"for_vendor"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	updates := make(map[string]interface{})
	if input.IsRead != nil {
		updates["is_read"] = *input.IsRead
	}
	if input.ForVendor != nil {
		updates["for_vendor"] = *input.ForVendor
	}
	if len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required field: is_read or for_vendor",
		})
	}

	if err := db.DB.Model(&notification).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update notification",
		})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"notification": notification,
	})
}

// DeleteNotification hard-deletes a notification. Only the generic
// management surface deletes rows; the decision workflow never does.
func DeleteNotification(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid notification ID",
		})
	}

	var notification models.Notification
	if db.DB.Where("id = ? AND vendor_id = ?", id, vendorID).First(&notification).RowsAffected == 0 {
		return notFound(c, "Notification")
	}

	db.DB.Unscoped().Delete(&notification)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Notification deleted",
	})
}

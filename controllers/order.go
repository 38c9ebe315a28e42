package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/servimart/vendor-dashboard/db"
	"github.com/servimart/vendor-dashboard/logger"
	"github.com/servimart/vendor-dashboard/models"
	"github.com/servimart/vendor-dashboard/utils"
)

// GetOrders returns the vendor's service orders with optional status filter
// and pagination
func GetOrders(c *fiber.Ctx) error {
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

	query := db.DB.Model(&models.ServiceOrder{}).Where("vendor_id = ?", vendorID)
	if status := c.Query("status"); status != "" {
		if !models.IsValidServiceStatus(models.ServiceStatus(status)) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid status filter",
			})
		}
		query = query.Where("service_status = ?", status)
	}

	var total int64
	query.Count(&total)

	var orders []models.ServiceOrder
	if err := query.Preload("Service").
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
		"total":   total,
		"page":    page,
		"limit":   limit,
		"pages":   (total + int64(limit) - 1) / int64(limit),
	})
}

func GetOrder(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order ID",
		})
	}

	var order models.ServiceOrder
	if err := db.DB.Preload("Service").
		Where("id = ? AND vendor_id = ?", id, vendorID).
		First(&order).Error; err != nil {
		return notFound(c, "Order")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}

// updateOrderStatus is the single mutator behind both historical order-update
// routes. Validation is plain set membership: any valid status may follow any
// other.
func updateOrderStatus(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order ID",
		})
	}

	var input struct {
		ServiceStatus string `json:"service_status"`
		PaymentStatus string `json:"payment_status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if input.ServiceStatus == "" && input.PaymentStatus == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required field: service_status or payment_status",
		})
	}

	updates := make(map[string]interface{})
	if input.ServiceStatus != "" {
		if !models.IsValidServiceStatus(models.ServiceStatus(input.ServiceStatus)) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid service_status",
			})
		}
		updates["service_status"] = input.ServiceStatus
	}
	if input.PaymentStatus != "" {
		if !models.IsValidPaymentStatus(models.PaymentStatus(input.PaymentStatus)) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid payment_status",
			})
		}
		updates["payment_status"] = input.PaymentStatus
	}

	var order models.ServiceOrder
	if err := db.DB.Preload("Service").
		Where("id = ? AND vendor_id = ?", id, vendorID).
		First(&order).Error; err != nil {
		return notFound(c, "Order")
	}

	statusChanged := input.ServiceStatus != "" && models.ServiceStatus(input.ServiceStatus) != order.ServiceStatus

	if err := db.DB.Model(&order).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update order",
		})
	}

	// Customer email is best-effort: log and keep going
	if statusChanged && order.CustomerEmail != "" {
		body := utils.OrderStatusEmailBody(order.CustomerName, &order)
		if err := utils.SendEmail(order.CustomerEmail, "Service Order Update", body); err != nil {
			logger.SideEffectFailure("orders", "status change email", err)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}

// UpdateOrder handles PUT /api/service-orders/:id
func UpdateOrder(c *fiber.Ctx) error {
	return updateOrderStatus(c)
}

// UpdateOrderAlt handles PUT /api/orders/:id, the alternate historical route.
// Both routes validate against the same canonical status set.
func UpdateOrderAlt(c *fiber.Ctx) error {
	return updateOrderStatus(c)
}

func DeleteOrder(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order ID",
		})
	}

	var order models.ServiceOrder
	if db.DB.Where("id = ? AND vendor_id = ?", id, vendorID).First(&order).RowsAffected == 0 {
		return notFound(c, "Order")
	}

	db.DB.Delete(&order)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order deleted",
	})
}

package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/servimart/vendor-dashboard/db"
	"github.com/servimart/vendor-dashboard/logger"
	"github.com/servimart/vendor-dashboard/models"
	"github.com/servimart/vendor-dashboard/utils"
)

// DecisionResult separates the authoritative notification transition from the
// best-effort side effects, so partial applications stay observable instead of
// being silently swallowed.
type DecisionResult struct {
	NotificationType   string   `json:"notificationType"`
	ServiceOrderStatus string   `json:"serviceOrderStatus"`
	SideEffectFailures []string `json:"sideEffectFailures"`
}

// GetServiceRequests lists the vendor's pending approval tickets
func GetServiceRequests(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	var requests []models.Notification
	if err := db.DB.
		Where("vendor_id = ? AND type = ? AND for_vendor = ?", vendorID, models.NotificationTypeOrderCreated, true).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"requests": requests,
		"count":    len(requests),
	})
}

// DecideServiceRequest accepts or rejects a pending service request.
//
// Step order matters: the notification rewrite is authoritative and the whole
// call fails if it does not land. The order-status propagation and both
// emails are best-effort; their failures are logged, collected into the
// response and never roll back step one.
func DecideServiceRequest(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	var input struct {
		NotificationID uint   `json:"notification_id"`
		Action         string `json:"action"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if input.NotificationID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required field: notification_id",
		})
	}
	if input.Action != "accept" && input.Action != "reject" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "action must be 'accept' or 'reject'",
		})
	}
	accepted := input.Action == "accept"

	// Precondition: a pending ticket owned by the caller. An already-decided
	// notification no longer matches the type filter, so a repeat decision
	// lands here — the workflow is deliberately not idempotent.
	var notification models.Notification
	if err := db.DB.
		Where("id = ? AND vendor_id = ? AND type = ?", input.NotificationID, vendorID, models.NotificationTypeOrderCreated).
		First(&notification).Error; err != nil {
		return notFound(c, "Service request")
	}

	meta, err := notification.Meta()
	if err != nil {
		logger.SideEffectFailure("requests", "metadata decode", err)
		// A broken blob still allows the decision; templates render with
		// whatever fields survived.
	}

	newType := models.NotificationTypeOrderAccepted
	orderStatus := models.StatusScheduled
	if !accepted {
		newType = models.NotificationTypeOrderRejected
		orderStatus = models.StatusRejected
	}

	// Step 1: authoritative notification rewrite
	title, message, description := utils.DecisionNotificationText(accepted, meta)
	err = db.DB.Model(&notification).Updates(map[string]interface{}{
		"type":        newType,
		"title":       title,
		"message":     message,
		"description": description,
		"is_read":     true,
	}).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	result := DecisionResult{
		NotificationType:   newType,
		ServiceOrderStatus: string(orderStatus),
		SideEffectFailures: []string{},
	}

	// Step 2: propagate status to the linked order, if any
	if meta.ServiceOrderID != 0 {
		res := db.DB.Model(&models.ServiceOrder{}).
			Where("id = ? AND vendor_id = ?", meta.ServiceOrderID, vendorID).
			Update("service_status", orderStatus)
		if res.Error != nil {
			logger.SideEffectFailure("requests", "order status propagation", res.Error)
			result.SideEffectFailures = append(result.SideEffectFailures, "order_status_update")
		} else if res.RowsAffected == 0 {
			logger.SideEffectFailure("requests", "order status propagation",
				fmt.Errorf("service order %d not found for vendor %d", meta.ServiceOrderID, vendorID))
			result.SideEffectFailures = append(result.SideEffectFailures, "order_status_update")
		}
	}

	// Step 3: decision email to the customer
	recipient := meta.RecipientEmail()
	subject := "Your Service Request Was Accepted"
	if !accepted {
		subject = "Update on Your Service Request"
	}
	if err := utils.SendEmail(recipient, subject, utils.DecisionEmailBody(accepted, meta)); err != nil {
		logger.SideEffectFailure("requests", "decision email", err)
		result.SideEffectFailures = append(result.SideEffectFailures, "decision_email")
	}

	// Step 4: payment email when the booking already carries a settled status
	if meta.PaymentStatus != "" && meta.PaymentStatus != string(models.PaymentPending) {
		if err := utils.SendEmail(recipient, "Payment Update for Your Service Order", utils.PaymentEmailBody(meta)); err != nil {
			logger.SideEffectFailure("requests", "payment email", err)
			result.SideEffectFailures = append(result.SideEffectFailures, "payment_email")
		}
	}

	return c.JSON(fiber.Map{
		"success":            true,
		"notificationType":   result.NotificationType,
		"serviceOrderStatus": result.ServiceOrderStatus,
		"sideEffectFailures": result.SideEffectFailures,
	})
}

package controllers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/servimart/vendor-dashboard/db"
	"github.com/servimart/vendor-dashboard/models"
	"github.com/servimart/vendor-dashboard/redis"
)

const dashboardCacheTTL = 60 * time.Second

type dashboardStats struct {
	TotalServices       int64     `json:"total_services"`
	TotalOrders         int64     `json:"total_orders"`
	PendingCount        int64     `json:"pending_count"`
	ScheduledCount      int64     `json:"scheduled_count"`
	InProgressCount     int64     `json:"in_progress_count"`
	CompletedCount      int64     `json:"completed_count"`
	CancelledCount      int64     `json:"cancelled_count"`
	RejectedCount       int64     `json:"rejected_count"`
	PendingRequests     int64     `json:"pending_requests"`
	UnreadNotifications int64     `json:"unread_notifications"`
	TotalRevenue        float64   `json:"total_revenue"`
	LastUpdated         time.Time `json:"last_updated"`
}

// GetDashboardStats returns the vendor's aggregate counts and revenue.
// Results are cached in redis for a minute per vendor when a client is wired.
func GetDashboardStats(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	cacheKey := fmt.Sprintf("dashboard:stats:%d", vendorID)
	if redis.Client != nil {
		if cached, err := redis.Client.Get(redis.Ctx, cacheKey).Result(); err == nil {
			var stats dashboardStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return c.JSON(fiber.Map{
					"success": true,
					"stats":   stats,
					"cached":  true,
				})
			}
		}
	}

	var stats dashboardStats

	db.DB.Model(&models.Service{}).Where("vendor_id = ?", vendorID).Count(&stats.TotalServices)

	db.DB.Model(&models.ServiceOrder{}).Where("vendor_id = ?", vendorID).Count(&stats.TotalOrders)
	statusCounts := map[models.ServiceStatus]*int64{
		models.StatusPending:    &stats.PendingCount,
		models.StatusScheduled:  &stats.ScheduledCount,
		models.StatusInProgress: &stats.InProgressCount,
		models.StatusCompleted:  &stats.CompletedCount,
		models.StatusCancelled:  &stats.CancelledCount,
		models.StatusRejected:   &stats.RejectedCount,
	}
	for status, dest := range statusCounts {
		db.DB.Model(&models.ServiceOrder{}).
			Where("vendor_id = ? AND service_status = ?", vendorID, status).
			Count(dest)
	}

	db.DB.Model(&models.Notification{}).
		Where("vendor_id = ? AND type = ? AND for_vendor = ?", vendorID, models.NotificationTypeOrderCreated, true).
		Count(&stats.PendingRequests)
	db.DB.Model(&models.Notification{}).
		Where("vendor_id = ? AND for_vendor = ? AND is_read = ?", vendorID, true, false).
		Count(&stats.UnreadNotifications)

	// Revenue from completed orders
	type revenueResult struct {
		TotalRevenue float64
	}
	var revenue revenueResult
	db.DB.Model(&models.ServiceOrder{}).
		Where("vendor_id = ? AND service_status = ?", vendorID, models.StatusCompleted).
		Select("COALESCE(SUM(final_price), 0) as total_revenue").
		Scan(&revenue)
	stats.TotalRevenue = revenue.TotalRevenue

	stats.LastUpdated = time.Now()

	if redis.Client != nil {
		if encoded, err := json.Marshal(stats); err == nil {
			redis.Client.Set(redis.Ctx, cacheKey, encoded, dashboardCacheTTL)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
		"cached":  false,
	})
}

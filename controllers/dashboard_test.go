package controllers

import (
	"net/http"
	"testing"

	"github.com/servimart/vendor-dashboard/db"
	"github.com/servimart/vendor-dashboard/models"
	"github.com/stretchr/testify/assert"
)

func TestGetDashboardStats(t *testing.T) {
	setupTestDB(t)
	vendor := createTestVendor(t, "vendor@example.com")
	other := createTestVendor(t, "other@example.com")
	app := setupTestApp(vendor.ID)

	createTestService(t, vendor.ID, "Deep Cleaning")
	createTestService(t, vendor.ID, "Plumbing")
	createTestService(t, other.ID, "Foreign Service")

	createTestOrder(t, vendor.ID, models.StatusPending)
	createTestOrder(t, vendor.ID, models.StatusScheduled)
	for i := 0; i < 2; i++ {
		order := createTestOrder(t, vendor.ID, models.StatusCompleted)
		db.DB.Model(order).Update("final_price", 250)
	}
	createTestOrder(t, other.ID, models.StatusCompleted)

	createTestNotification(t, vendor.ID, models.NotificationTypeOrderCreated, false)
	createTestNotification(t, vendor.ID, models.NotificationTypeOrderAccepted, false)
	createTestNotification(t, vendor.ID, models.NotificationTypeOrderRejected, true)

	status, resp := doRequest(t, app, http.MethodGet, "/api/dashboard-stats", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.False(t, resp["cached"].(bool))

	stats := resp["stats"].(map[string]interface{})
	assert.Equal(t, float64(2), stats["total_services"])
	assert.Equal(t, float64(4), stats["total_orders"])
	assert.Equal(t, float64(1), stats["pending_count"])
	assert.Equal(t, float64(1), stats["scheduled_count"])
	assert.Equal(t, float64(2), stats["completed_count"])
	assert.Equal(t, float64(0), stats["cancelled_count"])
	assert.Equal(t, float64(1), stats["pending_requests"])
	assert.Equal(t, float64(2), stats["unread_notifications"])
	// Only completed orders count toward revenue
	assert.Equal(t, float64(500), stats["total_revenue"])
}

func TestGetDashboardStats_EmptyVendor(t *testing.T) {
	setupTestDB(t)
	vendor := createTestVendor(t, "vendor@example.com")
	app := setupTestApp(vendor.ID)

	status, resp := doRequest(t, app, http.MethodGet, "/api/dashboard-stats", nil)
	assert.Equal(t, http.StatusOK, status)

	stats := resp["stats"].(map[string]interface{})
	assert.Equal(t, float64(0), stats["total_orders"])
	assert.Equal(t, float64(0), stats["total_revenue"])
}

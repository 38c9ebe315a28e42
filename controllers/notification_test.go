package controllers

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/servimart/vendor-dashboard/db"
	"github.com/servimart/vendor-dashboard/models"
	"github.com/stretchr/testify/assert"
)

func createTestNotification(t *testing.T, vendorID uint, ntype string, read bool) *models.Notification {
	t.Helper()
	n := &models.Notification{
		Type:      ntype,
		Title:     "Test",
		Message:   "Test message",
		VendorID:  vendorID,
		ForVendor: true,
		IsRead:    read,
	}
	if err := db.DB.Create(n).Error; err != nil {
		t.Fatalf("Failed to create test notification: %v", err)
	}
	return n
}

func TestGetNotifications_UnreadCountAndFilter(t *testing.T) {
	setupTestDB(t)
	vendor := createTestVendor(t, "vendor@example.com")
	other := createTestVendor(t, "other@example.com")
	app := setupTestApp(vendor.ID)

	createTestNotification(t, vendor.ID, models.NotificationTypeOrderCreated, false)
	createTestNotification(t, vendor.ID, models.NotificationTypeOrderAccepted, false)
	createTestNotification(t, vendor.ID, models.NotificationTypeOrderRejected, true)
	createTestNotification(t, other.ID, models.NotificationTypeOrderCreated, false)

	status, resp := doRequest(t, app, http.MethodGet, "/api/notifications", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(3), resp["total"])
	assert.Equal(t, float64(2), resp["unread_count"])

	status, resp = doRequest(t, app, http.MethodGet, "/api/notifications?unread_only=true", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, resp["notifications"].([]interface{}), 2)
}

func TestUpdateNotification_SoftHide(t *testing.T) {
	setupTestDB(t)
	vendor := createTestVendor(t, "vendor@example.com")
	app := setupTestApp(vendor.ID)

	n := createTestNotification(t, vendor.ID, models.NotificationTypeOrderAccepted, false)

	status, _ := doRequest(t, app, http.MethodPut, "/api/notifications/"+strconv.Itoa(int(n.ID)), map[string]interface{}{
		"for_vendor": false,
	})
	assert.Equal(t, http.StatusOK, status)

	// Gone from the feed, but the row survives
	status, resp := doRequest(t, app, http.MethodGet, "/api/notifications", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), resp["total"])

	var count int64
	db.DB.Model(&models.Notification{}).Where("id = ?", n.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateNotification_MarkRead(t *testing.T) {
	setupTestDB(t)
	vendor := createTestVendor(t, "vendor@example.com")
	app := setupTestApp(vendor.ID)

	n := createTestNotification(t, vendor.ID, models.NotificationTypeOrderAccepted, false)

	status, _ := doRequest(t, app, http.MethodPut, "/api/notifications/"+strconv.Itoa(int(n.ID)), map[string]interface{}{
		"is_read": true,
	})
	assert.Equal(t, http.StatusOK, status)

	var check models.Notification
	db.DB.First(&check, n.ID)
	assert.True(t, check.IsRead)
}

func TestUpdateNotification_EmptyBody(t *testing.T) {
	setupTestDB(t)
	vendor := createTestVendor(t, "vendor@example.com")
	app := setupTestApp(vendor.ID)

	n := createTestNotification(t, vendor.ID, models.NotificationTypeOrderAccepted, false)

	status, _ := doRequest(t, app, http.MethodPut, "/api/notifications/"+strconv.Itoa(int(n.ID)), map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDeleteNotification_HardDelete(t *testing.T) {
	setupTestDB(t)
	vendor := createTestVendor(t, "vendor@example.com")
	app := setupTestApp(vendor.ID)

	n := createTestNotification(t, vendor.ID, models.NotificationTypeOrderRejected, true)

	status, _ := doRequest(t, app, http.MethodDelete, "/api/notifications/"+strconv.Itoa(int(n.ID)), nil)
	assert.Equal(t, http.StatusOK, status)

	var count int64
	db.DB.Unscoped().Model(&models.Notification{}).Where("id = ?", n.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestNotification_OwnershipRendersAsNotFound(t *testing.T) {
	setupTestDB(t)
	owner := createTestVendor(t, "owner@example.com")
	intruder := createTestVendor(t, "intruder@example.com")

	n := createTestNotification(t, owner.ID, models.NotificationTypeOrderCreated, false)

	app := setupTestApp(intruder.ID)
	path := "/api/notifications/" + strconv.Itoa(int(n.ID))

	status, _ := doRequest(t, app, http.MethodPut, path, map[string]interface{}{"is_read": true})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doRequest(t, app, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, status)

	var check models.Notification
	db.DB.First(&check, n.ID)
	assert.False(t, check.IsRead)
}

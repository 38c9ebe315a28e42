package cron

import (
	"errors"
	"testing"
	"time"

	"github.com/servimart/vendor-dashboard/db"
	"github.com/servimart/vendor-dashboard/models"
	"github.com/servimart/vendor-dashboard/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDigestDB(t *testing.T) {
	t.Helper()

	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := testDB.AutoMigrate(&models.Vendor{}, &models.Notification{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	db.DB = testDB
}

func createDigestVendor(t *testing.T, email string) *models.Vendor {
	t.Helper()
	vendor := &models.Vendor{Name: "Test Vendor", ContactEmail: email, IsActive: true}
	if err := db.DB.Create(vendor).Error; err != nil {
		t.Fatalf("Failed to create test vendor: %v", err)
	}
	return vendor
}

func createPendingRequest(t *testing.T, vendorID uint, age time.Duration) {
	t.Helper()
	n := &models.Notification{
		Type:      models.NotificationTypeOrderCreated,
		Title:     "New Service Request",
		VendorID:  vendorID,
		ForVendor: true,
		CreatedAt: time.Now().Add(-age),
	}
	if err := db.DB.Create(n).Error; err != nil {
		t.Fatalf("Failed to create test notification: %v", err)
	}
}

func TestSendPendingRequestDigests(t *testing.T) {
	setupDigestDB(t)

	type digest struct {
		To      string
		Subject string
	}
	var sent []digest
	original := utils.SendEmail
	utils.SendEmail = func(to, subject, body string) error {
		sent = append(sent, digest{To: to, Subject: subject})
		return nil
	}
	t.Cleanup(func() { utils.SendEmail = original })

	backlog := createDigestVendor(t, "backlog@example.com")
	fresh := createDigestVendor(t, "fresh@example.com")
	idle := createDigestVendor(t, "idle@example.com")

	// Two stale requests, one fresh one: the digest counts only the stale pair
	createPendingRequest(t, backlog.ID, 2*time.Hour)
	createPendingRequest(t, backlog.ID, 90*time.Minute)
	createPendingRequest(t, backlog.ID, 5*time.Minute)

	// Only a fresh request: no digest yet
	createPendingRequest(t, fresh.ID, 10*time.Minute)

	// Already-decided requests never count
	decided := &models.Notification{
		Type:      models.NotificationTypeOrderAccepted,
		VendorID:  idle.ID,
		ForVendor: true,
		CreatedAt: time.Now().Add(-3 * time.Hour),
	}
	db.DB.Create(decided)

	sendPendingRequestDigests()

	assert.Len(t, sent, 1)
	assert.Equal(t, "backlog@example.com", sent[0].To)
	assert.Contains(t, sent[0].Subject, "2 pending")
}

func TestSendPendingRequestDigests_FailureDoesNotStopLoop(t *testing.T) {
	setupDigestDB(t)

	var delivered []string
	original := utils.SendEmail
	utils.SendEmail = func(to, subject, body string) error {
		if to == "broken@example.com" {
			return errors.New("smtp: connection refused")
		}
		delivered = append(delivered, to)
		return nil
	}
	t.Cleanup(func() { utils.SendEmail = original })

	broken := createDigestVendor(t, "broken@example.com")
	working := createDigestVendor(t, "working@example.com")
	createPendingRequest(t, broken.ID, 2*time.Hour)
	createPendingRequest(t, working.ID, 2*time.Hour)

	sendPendingRequestDigests()

	// One vendor's mailer failure must not swallow the other's digest
	assert.Equal(t, []string{"working@example.com"}, delivered)
}

package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/servimart/vendor-dashboard/db"
	"github.com/servimart/vendor-dashboard/models"
	"github.com/servimart/vendor-dashboard/utils"
)

// StartCronJobs initializes the scheduler for pending-request digests
func StartCronJobs() {
	c := cron.New()
	// Hourly: nudge vendors who are sitting on unanswered service requests
	_, err := c.AddFunc("0 * * * *", sendPendingRequestDigests)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for pending request digests")
}

// sendPendingRequestDigests emails each vendor a summary of service requests
// that have waited for more than an hour
func sendPendingRequestDigests() {
	cutoff := time.Now().Add(-1 * time.Hour)

	type pendingRow struct {
		VendorID uint
		Count    int64
	}
	var rows []pendingRow
	err := db.DB.Model(&models.Notification{}).
		Select("vendor_id, COUNT(*) as count").
		Where("type = ? AND for_vendor = ? AND created_at < ?", models.NotificationTypeOrderCreated, true, cutoff).
		Group("vendor_id").
		Scan(&rows).Error
	if err != nil {
		log.Printf("Error fetching pending requests for digest: %v", err)
		return
	}

	for _, row := range rows {
		var vendor models.Vendor
		if err := db.DB.First(&vendor, row.VendorID).Error; err != nil {
			log.Printf("Vendor %d not found for digest: %v", row.VendorID, err)
			continue
		}

		if err := sendDigestEmail(&vendor, row.Count); err != nil {
			log.Printf("Failed to send digest to vendor %d: %v", vendor.ID, err)
			continue
		}
		log.Printf("Sent pending request digest to %s (%d pending)", vendor.ContactEmail, row.Count)
	}
}

func sendDigestEmail(vendor *models.Vendor, pending int64) error {
	subject := fmt.Sprintf("You have %d pending service requests", pending)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have <strong>%d</strong> service requests waiting for more than an hour.</p>
		<p>Customers are more likely to cancel when requests sit unanswered.
		Please open your dashboard and accept or reject them.</p>
		<p>Best regards,</p>
		<p>Your Services Team</p>
	`, vendor.Name, pending)

	return utils.SendEmail(vendor.ContactEmail, subject, body)
}

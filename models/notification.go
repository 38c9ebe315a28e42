package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	NotificationTypeOrderCreated  = "service_order_created"
	NotificationTypeOrderAccepted = "service_order_accepted"
	NotificationTypeOrderRejected = "service_order_rejected"
)

// Notification is a polymorphic event record. While its type is
// service_order_created it doubles as the pending approval ticket for the
// linked service order.
type Notification struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Type        string         `json:"type" gorm:"index;not null"`
	Title       string         `json:"title"`
	Message     string         `json:"message"`
	Description string         `json:"description"`
	VendorID    uint           `json:"vendor_id" gorm:"index;not null"`
	ForVendor   bool           `json:"for_vendor" gorm:"default:true"`
	IsRead      bool           `json:"is_read" gorm:"default:false"`
	Metadata    datatypes.JSON `json:"metadata"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// OrderMetadata is the shape of the metadata blob attached to
// service_order_created notifications. Rows are created by the customer app,
// so every field is optional here.
type OrderMetadata struct {
	ServiceOrderID uint    `json:"service_order_id,omitempty"`
	ServiceName    string  `json:"service_name,omitempty"`
	ScheduledDate  string  `json:"scheduled_date,omitempty"`
	ScheduledTime  string  `json:"scheduled_time,omitempty"`
	Price          float64 `json:"price,omitempty"`
	Address        string  `json:"address,omitempty"`
	CustomerName   string  `json:"customer_name,omitempty"`
	CustomerEmail  string  `json:"customer_email,omitempty"`
	UserEmail      string  `json:"user_email,omitempty"`
	PaymentStatus  string  `json:"payment_status,omitempty"`
}

// Meta decodes the metadata blob. An empty blob decodes to the zero value.
func (n *Notification) Meta() (OrderMetadata, error) {
	var m OrderMetadata
	if len(n.Metadata) == 0 {
		return m, nil
	}
	err := json.Unmarshal(n.Metadata, &m)
	return m, err
}

// RecipientEmail resolves the customer address for decision emails, falling
// back to a placeholder when the booking carried no address.
func (m OrderMetadata) RecipientEmail() string {
	if m.CustomerEmail != "" {
		return m.CustomerEmail
	}
	if m.UserEmail != "" {
		return m.UserEmail
	}
	return "customer@example.com"
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type ServiceStatus string
type PaymentStatus string

const (
	StatusPending    ServiceStatus = "pending"
	StatusScheduled  ServiceStatus = "scheduled"
	StatusInProgress ServiceStatus = "in_progress"
	StatusCompleted  ServiceStatus = "completed"
	StatusCancelled  ServiceStatus = "cancelled"
	StatusRejected   ServiceStatus = "rejected"
	StatusRefunded   ServiceStatus = "refunded"

	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// ServiceStatuses is the single canonical status set. Historically the two
// order-update routes validated against diverging sets; both now use this one.
var ServiceStatuses = []ServiceStatus{
	StatusPending, StatusScheduled, StatusInProgress, StatusCompleted,
	StatusCancelled, StatusRejected, StatusRefunded,
}

var PaymentStatuses = []PaymentStatus{
	PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded,
}

func IsValidServiceStatus(s ServiceStatus) bool {
	for _, v := range ServiceStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func IsValidPaymentStatus(s PaymentStatus) bool {
	for _, v := range PaymentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ServiceOrder is a customer's booking of a vendor's service.
type ServiceOrder struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	VendorID      uint           `json:"vendor_id" gorm:"index;not null"`
	Vendor        Vendor         `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	ServiceID     uint           `json:"service_id" gorm:"index"`
	Service       Service        `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	UserID        uint           `json:"user_id" gorm:"index"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	ServiceStatus ServiceStatus  `json:"service_status" gorm:"default:'pending'"`
	PaymentStatus PaymentStatus  `json:"payment_status" gorm:"default:'pending'"`
	FinalPrice    float64        `json:"final_price"`
	ScheduledDate string         `json:"scheduled_date"`
	ScheduledTime string         `json:"scheduled_time"`
	Address       string         `json:"address"`
	Notes         string         `json:"notes"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

func (o *ServiceOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ServiceStatus == "" {
		o.ServiceStatus = StatusPending
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = PaymentPending
	}
	return nil
}

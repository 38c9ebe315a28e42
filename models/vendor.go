package models

import (
	"time"

	"gorm.io/gorm"
)

// Vendor is a service-provider account, the owning tenant of all catalog
// and order data.
type Vendor struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name"`
	ContactEmail string         `json:"contact_email" gorm:"uniqueIndex;not null"`
	Password     string         `json:"-"`
	Phone        string         `json:"phone"`
	BusinessName string         `json:"business_name"`
	Address      string         `json:"address"`
	City         string         `json:"city"`
	State        string         `json:"state"`
	LogoURL      string         `json:"logo_url"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	Services []Service      `json:"services,omitempty" gorm:"foreignKey:VendorID"`
	Orders   []ServiceOrder `json:"orders,omitempty" gorm:"foreignKey:VendorID"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServicePincode marks a postal code as part of a service's coverage area.
// A pincode must be unique across all of a vendor's services.
type ServicePincode struct {
	ID        string         `json:"id" gorm:"primaryKey;size:36"`
	Pincode   string         `json:"pincode" gorm:"size:6;index;not null"`
	ServiceID uint           `json:"service_id" gorm:"index;not null"`
	Service   Service        `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	VendorID  uint           `json:"vendor_id" gorm:"index;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (p *ServicePincode) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

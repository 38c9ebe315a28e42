package models

import (
	"time"

	"gorm.io/gorm"
)

type Service struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	CategoryID      string         `json:"category_id"`
	BasePrice       float64        `json:"base_price"`
	DurationMinutes int            `json:"duration_minutes"`
	IsAvailable     bool           `json:"is_available" gorm:"default:true"`
	ImageURL        string         `json:"image_url"`
	VendorID        uint           `json:"vendor_id" gorm:"index;not null"`
	Vendor          Vendor         `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

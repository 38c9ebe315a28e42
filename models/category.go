package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ServiceCategory groups a vendor's services. The public code keeps the
// historical SCTR<n> format but is derived from the auto-increment primary
// key, so concurrent creators can never collide on a suffix.
type ServiceCategory struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	CategoryID string         `json:"service_category_id" gorm:"uniqueIndex"`
	Name       string         `json:"name"`
	VendorID   uint           `json:"vendor_id" gorm:"index;not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

func (c *ServiceCategory) AfterCreate(tx *gorm.DB) error {
	code := fmt.Sprintf("SCTR%d", c.ID)
	if err := tx.Model(c).Update("category_id", code).Error; err != nil {
		return err
	}
	c.CategoryID = code
	return nil
}

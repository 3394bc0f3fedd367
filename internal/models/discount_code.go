package models

import (
	"time"

	"gorm.io/gorm"
)

// DiscountCode is a promotional code row.
type DiscountCode struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                 // primary key
	Code           string         `gorm:"uniqueIndex;not null" json:"code"`                     // uppercase code
	Description    string         `gorm:"type:varchar(255)" json:"description"`                 // operator description
	DiscountType   string         `gorm:"type:varchar(20);not null" json:"discount_type"`       // percentage / fixed
	DiscountValue  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_value"` // percent or amount
	MinOrderAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"min_order_amount"` // minimum subtotal
	UsageLimit     int            `gorm:"not null;default:0" json:"usage_limit"`                // 0 means unlimited
	UsageCount     int            `gorm:"not null;default:0" json:"usage_count"`                // times used
	IsActive       bool           `gorm:"index;default:true" json:"is_active"`                  // active flag
	ExpiresAt      *time.Time     `gorm:"index" json:"expires_at"`                              // expiry time
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                              // creation time
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                       // soft delete
}

// TableName sets the table name.
func (DiscountCode) TableName() string {
	return "discount_codes"
}

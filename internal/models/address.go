package models

import (
	"time"

	"gorm.io/gorm"
)

// Address is a denormalized shipping/billing address. A fresh row is
// inserted on every checkout; addresses are never deduplicated or reused.
type Address struct {
	ID           uint           `gorm:"primarykey" json:"id"`                       // primary key
	CustomerID   uint           `gorm:"index;not null" json:"customer_id"`          // owning customer
	AddressType  string         `gorm:"type:varchar(20);default:'shipping'" json:"address_type"` // shipping / billing
	FirstName    string         `gorm:"type:varchar(120)" json:"first_name"`        // recipient first name
	LastName     string         `gorm:"type:varchar(120)" json:"last_name"`         // recipient last name
	AddressLine1 string         `gorm:"type:varchar(255);not null" json:"address_line1"` // street and number
	AddressLine2 string         `gorm:"type:varchar(255)" json:"address_line2"`     // apartment / unit
	City         string         `gorm:"type:varchar(120);not null" json:"city"`     // city
	PostalCode   string         `gorm:"type:varchar(20);not null" json:"postal_code"` // postal code
	CountryCode  string         `gorm:"type:varchar(4);default:'NL'" json:"country_code"` // ISO country code
	IsDefault    bool           `gorm:"default:false" json:"is_default"`            // default flag
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                    // creation time
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                             // soft delete
}

// TableName sets the table name.
func (Address) TableName() string {
	return "addresses"
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer is a storefront customer row. Created on first checkout with a
// given email, updated in place on repeat checkouts.
type Customer struct {
	ID                uint           `gorm:"primarykey" json:"id"`                              // primary key
	Email             string         `gorm:"uniqueIndex;not null" json:"email"`                 // unique customer key
	FirstName         string         `gorm:"type:varchar(120)" json:"first_name"`               // first name
	LastName          string         `gorm:"type:varchar(120)" json:"last_name"`                // last name
	Phone             string         `gorm:"type:varchar(40)" json:"phone"`                     // phone number
	PreferredLanguage string         `gorm:"type:varchar(8);default:'NL'" json:"preferred_language"` // NL / EN / PL
	AcceptsMarketing  bool           `gorm:"default:false" json:"accepts_marketing"`            // marketing opt-in
	TotalOrders       int            `gorm:"not null;default:0" json:"total_orders"`            // aggregate order count
	TotalSpent        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_spent"` // aggregate spend
	LastOrderAt       *time.Time     `gorm:"index" json:"last_order_at"`                        // most recent order time
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`                           // creation time
	UpdatedAt         time.Time      `json:"updated_at"`                                        // update time
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                                    // soft delete

	Addresses []Address `gorm:"foreignKey:CustomerID" json:"addresses,omitempty"` // shipping addresses
	Orders    []Order   `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`    // order history
}

// TableName sets the table name.
func (Customer) TableName() string {
	return "customers"
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment is one row per attempted charge.
type Payment struct {
	ID            uint           `gorm:"primarykey" json:"id"`                            // primary key
	OrderID       uint           `gorm:"index;not null" json:"order_id"`                  // owning order
	Provider      string         `gorm:"type:varchar(40);not null" json:"provider"`       // gateway name
	ExternalID    string         `gorm:"index;type:varchar(120)" json:"external_id"`      // gateway transaction id
	Amount        Money          `gorm:"type:decimal(20,2);not null" json:"amount"`       // charged amount
	Currency      string         `gorm:"type:varchar(8);not null;default:'EUR'" json:"currency"` // currency
	Status        string         `gorm:"index;not null" json:"status"`                    // charge status
	PaymentMethod string         `gorm:"type:varchar(40)" json:"payment_method"`          // card / wallet / ...
	CardBrand     string         `gorm:"type:varchar(20)" json:"card_brand"`              // visa / mastercard / amex / unknown
	CardLast4     string         `gorm:"type:varchar(4)" json:"card_last4"`               // masked card suffix
	Metadata      JSON           `gorm:"type:json" json:"metadata"`                       // gateway metadata snapshot
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                         // creation time
	PaidAt        *time.Time     `gorm:"index" json:"paid_at"`                            // settlement time
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                  // soft delete
}

// TableName sets the table name.
func (Payment) TableName() string {
	return "payments"
}

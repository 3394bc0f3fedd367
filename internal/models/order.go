package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is an order header. Customer contact fields are snapshotted at
// order time; status, payment_status and fulfillment_status are independent
// enumerations. grand_total = subtotal + shipping_total (tax and discount
// are always zero in the checkout path).
type Order struct {
	ID                uint           `gorm:"primarykey" json:"id"`                                     // primary key
	OrderNumber       string         `gorm:"uniqueIndex;not null" json:"order_number"`                 // human-readable order number
	CustomerID        uint           `gorm:"index;not null" json:"customer_id"`                        // customer linkage
	CustomerEmail     string         `gorm:"index;not null" json:"customer_email"`                     // contact snapshot
	CustomerFirstName string         `gorm:"type:varchar(120)" json:"customer_first_name"`             // contact snapshot
	CustomerLastName  string         `gorm:"type:varchar(120)" json:"customer_last_name"`              // contact snapshot
	CustomerPhone     string         `gorm:"type:varchar(40)" json:"customer_phone"`                   // contact snapshot
	ShippingAddressID uint           `gorm:"index" json:"shipping_address_id"`                         // shipping address row
	BillingAddressID  uint           `gorm:"index" json:"billing_address_id"`                          // billing address row
	Status            string         `gorm:"index;not null;default:'pending'" json:"status"`           // order status
	PaymentStatus     string         `gorm:"index;not null;default:'pending'" json:"payment_status"`   // payment status
	FulfillmentStatus string         `gorm:"index;not null;default:'unfulfilled'" json:"fulfillment_status"` // shipment progress
	Subtotal          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`    // item sum
	DiscountTotal     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_total"` // always 0 at checkout
	ShippingTotal     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_total"` // shipping cost
	TaxTotal          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"tax_total"`   // always 0 at checkout
	GrandTotal        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"grand_total"` // charged amount
	Currency          string         `gorm:"type:varchar(8);not null;default:'EUR'" json:"currency"`   // currency
	ShippingMethod    string         `gorm:"type:varchar(40)" json:"shipping_method"`                  // standard / free_shipping
	TrackingNumber    string         `gorm:"type:varchar(120)" json:"tracking_number"`                 // carrier tracking number
	TrackingURL       string         `gorm:"type:varchar(500)" json:"tracking_url"`                    // carrier tracking link
	CustomerNotes     string         `gorm:"type:text" json:"customer_notes"`                          // buyer notes
	InternalNotes     string         `gorm:"type:text" json:"internal_notes,omitempty"`                // operator notes
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`                                  // creation time
	UpdatedAt         time.Time      `gorm:"index" json:"updated_at"`                                  // update time
	PaidAt            *time.Time     `gorm:"index" json:"paid_at"`                                     // payment time
	ShippedAt         *time.Time     `gorm:"index" json:"shipped_at"`                                  // shipment time
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                                           // soft delete

	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`    // line snapshots
	Payments []Payment   `gorm:"foreignKey:OrderID" json:"payments,omitempty"` // charge attempts
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is a cart line frozen at order-creation time. It snapshots the
// product name, price and variant info rather than referencing the live
// product row.
type OrderItem struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                   // primary key
	OrderID      uint           `gorm:"index;not null" json:"order_id"`                         // owning order
	ProductID    *uint          `gorm:"index" json:"product_id,omitempty"`                      // optional live product reference
	ProductName  string         `gorm:"type:varchar(255);not null" json:"product_name"`         // name snapshot
	ProductSKU   string         `gorm:"type:varchar(120)" json:"product_sku"`                   // sku snapshot
	ProductImage string         `gorm:"type:varchar(500)" json:"product_image"`                 // image snapshot
	Size         string         `gorm:"type:varchar(40)" json:"size"`                           // selected size
	Color        string         `gorm:"type:varchar(60)" json:"color"`                          // selected color
	Quantity     int            `gorm:"not null" json:"quantity"`                               // quantity
	UnitPrice    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // unit price snapshot
	TotalPrice   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // line total
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                // creation time
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                         // soft delete
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}

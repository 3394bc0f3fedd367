package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalog entry. Names and descriptions are multilingual
// (NL / EN / PL keys).
type Product struct {
	ID                uint           `gorm:"primarykey" json:"id"`                                 // primary key
	Slug              string         `gorm:"uniqueIndex;not null" json:"slug"`                     // unique url key
	SKU               string         `gorm:"type:varchar(120)" json:"sku"`                         // stock keeping unit
	NameJSON          JSON           `gorm:"type:json;not null" json:"name"`                       // multilingual name
	DescriptionJSON   JSON           `gorm:"type:json" json:"description"`                         // multilingual description
	Price             Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`   // list price
	CompareAtPrice    *Money         `gorm:"type:decimal(20,2)" json:"compare_at_price,omitempty"` // strike-through price
	CategoryID        *uint          `gorm:"index" json:"category_id,omitempty"`                   // owning category
	ImageURL          string         `gorm:"type:varchar(500)" json:"image_url"`                   // primary image
	Images            StringArray    `gorm:"type:json" json:"images"`                              // gallery
	Sizes             StringArray    `gorm:"type:json" json:"sizes"`                               // available sizes
	Colors            StringArray    `gorm:"type:json" json:"colors"`                              // available colors
	StockQuantity     int            `gorm:"not null;default:0" json:"stock_quantity"`             // units on hand
	LowStockThreshold int            `gorm:"not null;default:5" json:"low_stock_threshold"`        // low-stock alert level
	IsActive          bool           `gorm:"index;default:true" json:"is_active"`                  // visible in storefront
	IsFeatured        bool           `gorm:"default:false" json:"is_featured"`                     // featured flag
	IsNew             bool           `gorm:"default:false" json:"is_new"`                          // new-drop flag
	IsOnSale          bool           `gorm:"default:false" json:"is_on_sale"`                      // sale flag
	ViewCount         int            `gorm:"not null;default:0" json:"view_count"`                 // page views
	SalesCount        int            `gorm:"not null;default:0" json:"sales_count"`                // units sold
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`                              // creation time
	UpdatedAt         time.Time      `json:"updated_at"`                                           // update time
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                                       // soft delete

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // joined category
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}

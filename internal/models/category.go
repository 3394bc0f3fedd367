package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups catalog products.
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`              // primary key
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"`  // unique url key
	NameJSON  JSON           `gorm:"type:json;not null" json:"name"`    // multilingual name
	ImageURL  string         `gorm:"type:varchar(500)" json:"image_url"` // category image
	ParentID  *uint          `gorm:"index" json:"parent_id,omitempty"`  // optional parent
	SortOrder int            `gorm:"default:0;index" json:"sort_order"` // display order
	IsActive  bool           `gorm:"index;default:true" json:"is_active"` // visible flag
	CreatedAt time.Time      `gorm:"index" json:"created_at"`           // creation time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                    // soft delete
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}

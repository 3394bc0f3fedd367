package models

import (
	"time"

	"gorm.io/gorm"
)

// NewsletterSubscriber is a mailing-list signup.
type NewsletterSubscriber struct {
	ID        uint           `gorm:"primarykey" json:"id"`              // primary key
	Email     string         `gorm:"uniqueIndex;not null" json:"email"` // subscriber email
	Language  string         `gorm:"type:varchar(8);default:'NL'" json:"language"` // NL / EN / PL
	IsActive  bool           `gorm:"default:true" json:"is_active"`     // unsubscribed flag
	CreatedAt time.Time      `gorm:"index" json:"created_at"`           // signup time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                    // soft delete
}

// TableName sets the table name.
func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}

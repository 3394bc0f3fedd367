package models

// Setting is a typed key/value configuration row. Value holds a single
// polymorphic JSON value; Type declares the expected kind
// (boolean/number/string/array) and is enforced when decoding.
type Setting struct {
	ID          uint      `gorm:"primarykey" json:"id"`                       // primary key
	Key         string    `gorm:"uniqueIndex;not null" json:"key"`            // setting key
	Value       JSONValue `gorm:"type:json" json:"value"`                     // polymorphic value
	Type        string    `gorm:"type:varchar(20);not null" json:"type"`      // boolean / number / string / array
	Category    string    `gorm:"index;type:varchar(60)" json:"category"`     // settings group
	Description string    `gorm:"type:varchar(255)" json:"description"`       // operator-facing description
	IsPublic    bool      `gorm:"default:false" json:"is_public"`             // exposed to storefront
}

// TableName sets the table name.
func (Setting) TableName() string {
	return "settings"
}

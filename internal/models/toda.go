// internal/models/toda.go
package models

import "time"

// Toda is an accredited Tricycle Operators and Drivers Association,
// keyed by its accredited name.
type Toda struct {
	AccreditedToda string    `json:"accredited_toda" gorm:"primaryKey;column:accredited_toda"`
	President      string    `json:"president"`
	Area           string    `json:"area"`
	ContactNum     string    `json:"contact_num"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName keeps the singular table of the legacy schema.
func (Toda) TableName() string {
	return "toda"
}

// internal/models/operator.go
package models

import "time"

// Operator represents a franchise holder who operates one or more tricycles.
type Operator struct {
	OperatorID   uint      `json:"operator_id" gorm:"primaryKey;column:operator_id"`
	OperatorName string    `json:"operator_name" gorm:"unique"`
	Address      string    `json:"address"`
	ContactNum   string    `json:"contact_num"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

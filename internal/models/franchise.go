// internal/models/franchise.go
package models

import "time"

// Franchise is a 4-digit tricycle operating permit ("0001"–"9999").
// The ID format is validated in the controller before any write.
type Franchise struct {
	FranchiseID string    `json:"franchise_id" gorm:"primaryKey;column:franchise_id"`
	OperatorID  uint      `json:"operator_id"`
	Toda        string    `json:"toda"`
	DateIssued  string    `json:"date_issued"`
	DateExpired string    `json:"date_expired"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// internal/models/driver.go
package models

import "time"

// Driver is a registered tricycle driver. The password column always holds a
// bcrypt hash once persisted; it is excluded from JSON marshaling and every
// client-facing response additionally goes through an allow-list projection
// in the controller.
type Driver struct {
	DriverID           uint      `json:"driver_id" gorm:"primaryKey;column:driver_id"`
	FirstName          string    `json:"first_name"`
	MiddleName         string    `json:"middle_name"`
	LastName           string    `json:"last_name"`
	Suffix             *string   `json:"suffix"` // nil when the driver has none
	DriverNameClean    string    `json:"driver_name_clean"`
	Address            string    `json:"address"`
	ContactNum         string    `json:"contact_num"`
	LicenseNum         string    `json:"license_num"`
	LicenseExpiration  string    `json:"license_expiration"`
	LicenseRestriction string    `json:"license_restriction"`
	FranchiseID        string    `json:"franchise_id"`
	OperatorID         uint      `json:"operator_id"`
	Toda               string    `json:"toda"`
	Password           string    `json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

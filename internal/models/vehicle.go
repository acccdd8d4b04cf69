// internal/models/vehicle.go
package models

import "time"

// Vehicle is a registered tricycle unit, keyed by plate number.
type Vehicle struct {
	VehiclePlate string    `json:"vehicle_plate" gorm:"primaryKey;column:vehicle_plate"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	YearModel    string    `json:"year_model"`
	Color        string    `json:"color"`
	FranchiseID  string    `json:"franchise_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

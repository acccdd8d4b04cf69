// internal/models/assignment.go
package models

import "time"

// Assignment links a driver, an operator's franchise and a vehicle under a TODA.
type Assignment struct {
	AssignmentID uint      `json:"assignment_id" gorm:"primaryKey;column:assignment_id"`
	DriverID     uint      `json:"driver_id" gorm:"index"`
	OperatorID   uint      `json:"operator_id"`
	FranchiseID  string    `json:"franchise_id"`
	VehiclePlate string    `json:"vehicle_plate"`
	Toda         string    `json:"toda"`
	DateAssigned string    `json:"date_assigned"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

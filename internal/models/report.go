// internal/models/report.go
package models

import "time"

// Report is a submitted violation report against a driver. ReportRef is a
// generated public reference code handed back to the reporter.
type Report struct {
	ReportID  uint   `json:"report_id" gorm:"primaryKey;column:report_id"`
	ReportRef string `json:"report_ref" gorm:"uniqueIndex"`
	UserID    string `json:"user_id"`
	DriverID  uint   `json:"driver_id" gorm:"index"`

	OperatorName string `json:"operator_name"`
	PlateNumber  string `json:"plate_number"`

	ParkingObstructionViolations     string `json:"parking_obstruction_violations"`
	TrafficMovementViolations        string `json:"traffic_movement_violations"`
	DriverBehaviorViolations         string `json:"driver_behavior_violations"`
	LicensingDocumentationViolations string `json:"licensing_documentation_violations"`
	AttireFareViolations             string `json:"attire_fare_violations"`

	ImageDescription string    `json:"image_description"`
	ImageURL         *string   `json:"image_url"` // nullable, reports without a photo are fine
	CreatedAt        time.Time `json:"created_at"`
}

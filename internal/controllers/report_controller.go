package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"

	"tricypay/internal/config"
	"tricypay/internal/httperr"
	"tricypay/internal/models"
)

type submitReportInput struct {
	UserID       string `json:"user_id"`
	DriverID     uint   `json:"driver_id"`
	OperatorName string `json:"operator_name"`
	PlateNumber  string `json:"plate_number"`

	ParkingObstructionViolations     string `json:"parking_obstruction_violations"`
	TrafficMovementViolations        string `json:"traffic_movement_violations"`
	DriverBehaviorViolations         string `json:"driver_behavior_violations"`
	LicensingDocumentationViolations string `json:"licensing_documentation_violations"`
	AttireFareViolations             string `json:"attire_fare_violations"`

	ImageDescription string  `json:"image_description"`
	ImageURL         *string `json:"image_url"`
}

// SubmitReport ingests a violation report from the public-facing app. It
// checks the required fields, generates a reference code the reporter can
// quote later, and returns the stored row.
func SubmitReport(c *gin.Context) {
	var input submitReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch {
	case input.UserID == "":
		httperr.Respond(c, httperr.Validation("User ID is required."))
		return
	case input.DriverID == 0:
		httperr.Respond(c, httperr.Validation("Driver ID is required."))
		return
	case input.PlateNumber == "":
		httperr.Respond(c, httperr.Validation("Plate number is required."))
		return
	}

	report := models.Report{
		ReportRef:    uuid.NewString(),
		UserID:       input.UserID,
		DriverID:     input.DriverID,
		OperatorName: input.OperatorName,
		PlateNumber:  input.PlateNumber,

		ParkingObstructionViolations:     input.ParkingObstructionViolations,
		TrafficMovementViolations:        input.TrafficMovementViolations,
		DriverBehaviorViolations:         input.DriverBehaviorViolations,
		LicensingDocumentationViolations: input.LicensingDocumentationViolations,
		AttireFareViolations:             input.AttireFareViolations,

		ImageDescription: input.ImageDescription,
		ImageURL:         input.ImageURL,
	}

	if err := config.DB.Create(&report).Error; err != nil {
		httperr.Respond(c, httperr.Storage("Failed to save report to database.", err))
		return
	}

	logrus.WithFields(logrus.Fields{
		"report_ref": report.ReportRef,
		"driver_id":  report.DriverID,
	}).Info("violation report submitted")

	c.JSON(http.StatusCreated, gin.H{
		"message": "Report submitted successfully!",
		"report":  report,
	})
}

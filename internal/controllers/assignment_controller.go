package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tricypay/internal/config"
	"tricypay/internal/httperr"
	"tricypay/internal/models"
)

// ListAssignments returns all assignments ordered by ID.
func ListAssignments(c *gin.Context) {
	var assignments []models.Assignment
	if err := config.DB.Order("assignment_id ASC").Find(&assignments).Error; err != nil {
		httperr.Respond(c, httperr.Storage("Could not fetch assignments", err))
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// CreateAssignment links a driver, franchise and vehicle. The assignment ID
// is assigned by the database.
func CreateAssignment(c *gin.Context) {
	var input struct {
		DriverID     uint   `json:"driver_id" binding:"required"`
		OperatorID   uint   `json:"operator_id"`
		FranchiseID  string `json:"franchise_id"`
		VehiclePlate string `json:"vehicle_plate"`
		Toda         string `json:"toda"`
		DateAssigned string `json:"date_assigned"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment := models.Assignment{
		DriverID:     input.DriverID,
		OperatorID:   input.OperatorID,
		FranchiseID:  input.FranchiseID,
		VehiclePlate: input.VehiclePlate,
		Toda:         input.Toda,
		DateAssigned: input.DateAssigned,
	}
	if err := config.DB.Create(&assignment).Error; err != nil {
		if httperr.IsDuplicate(err) {
			httperr.Respond(c, httperr.Conflict("Assignment already exists, try a new one."))
			return
		}
		httperr.Respond(c, httperr.Storage("Failed to insert assignment.", err))
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// UpdateAssignment modifies an existing assignment.
func UpdateAssignment(c *gin.Context) {
	assignmentID, err := strconv.ParseUint(c.Param("assignment_id"), 10, 32)
	if err != nil {
		httperr.Respond(c, httperr.Validation("Invalid assignment ID format"))
		return
	}

	var assignment models.Assignment
	if err := config.DB.Where("assignment_id = ?", uint(assignmentID)).First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.NotFound("Assignment not found"))
		} else {
			httperr.Respond(c, httperr.Storage("Could not fetch assignment", err))
		}
		return
	}

	var input struct {
		DriverID     *uint   `json:"driver_id"`
		OperatorID   *uint   `json:"operator_id"`
		FranchiseID  *string `json:"franchise_id"`
		VehiclePlate *string `json:"vehicle_plate"`
		Toda         *string `json:"toda"`
		DateAssigned *string `json:"date_assigned"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.DriverID != nil {
		assignment.DriverID = *input.DriverID
	}
	if input.OperatorID != nil {
		assignment.OperatorID = *input.OperatorID
	}
	if input.FranchiseID != nil {
		assignment.FranchiseID = *input.FranchiseID
	}
	if input.VehiclePlate != nil {
		assignment.VehiclePlate = *input.VehiclePlate
	}
	if input.Toda != nil {
		assignment.Toda = *input.Toda
	}
	if input.DateAssigned != nil {
		assignment.DateAssigned = *input.DateAssigned
	}

	if err := config.DB.Save(&assignment).Error; err != nil {
		httperr.Respond(c, httperr.Storage("Failed to update assignment", err))
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// DeleteAssignment removes an assignment by ID.
func DeleteAssignment(c *gin.Context) {
	assignmentID, err := strconv.ParseUint(c.Param("assignment_id"), 10, 32)
	if err != nil {
		httperr.Respond(c, httperr.Validation("Invalid assignment ID format"))
		return
	}

	if err := config.DB.Delete(&models.Assignment{}, "assignment_id = ?", uint(assignmentID)).Error; err != nil {
		httperr.Respond(c, httperr.Storage("Failed to delete assignment", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

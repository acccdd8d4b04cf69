package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tricypay/internal/config"
	"tricypay/internal/httperr"
	"tricypay/internal/models"
)

// ListVehicles returns all vehicles ordered by plate number.
func ListVehicles(c *gin.Context) {
	var vehicles []models.Vehicle
	if err := config.DB.Order("vehicle_plate ASC").Find(&vehicles).Error; err != nil {
		httperr.Respond(c, httperr.Storage("Could not fetch vehicles", err))
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// CreateVehicle registers a new tricycle unit keyed by plate number.
func CreateVehicle(c *gin.Context) {
	var input models.Vehicle
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.VehiclePlate == "" {
		httperr.Respond(c, httperr.Validation("Vehicle plate is required"))
		return
	}

	if err := config.DB.Create(&input).Error; err != nil {
		if httperr.IsDuplicate(err) {
			httperr.Respond(c, httperr.Conflict("Vehicle already exists, try a new one."))
			return
		}
		httperr.Respond(c, httperr.Storage("Failed to insert vehicle.", err))
		return
	}

	c.JSON(http.StatusCreated, input)
}

// UpdateVehicle modifies a vehicle addressed by plate number.
func UpdateVehicle(c *gin.Context) {
	plate := c.Param("plate")

	var vehicle models.Vehicle
	if err := config.DB.Where("vehicle_plate = ?", plate).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.NotFound("Vehicle not found"))
		} else {
			httperr.Respond(c, httperr.Storage("Could not fetch vehicle", err))
		}
		return
	}

	var input struct {
		Make        *string `json:"make"`
		Model       *string `json:"model"`
		YearModel   *string `json:"year_model"`
		Color       *string `json:"color"`
		FranchiseID *string `json:"franchise_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Make != nil {
		vehicle.Make = *input.Make
	}
	if input.Model != nil {
		vehicle.Model = *input.Model
	}
	if input.YearModel != nil {
		vehicle.YearModel = *input.YearModel
	}
	if input.Color != nil {
		vehicle.Color = *input.Color
	}
	if input.FranchiseID != nil {
		vehicle.FranchiseID = *input.FranchiseID
	}

	if err := config.DB.Save(&vehicle).Error; err != nil {
		httperr.Respond(c, httperr.Storage("Failed to update vehicle", err))
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle removes a vehicle by plate number.
func DeleteVehicle(c *gin.Context) {
	plate := c.Param("plate")

	if err := config.DB.Delete(&models.Vehicle{}, "vehicle_plate = ?", plate).Error; err != nil {
		httperr.Respond(c, httperr.Storage("Failed to delete vehicle", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

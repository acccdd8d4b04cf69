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

// ListTodas returns all accredited TODAs ordered by name.
func ListTodas(c *gin.Context) {
	var todas []models.Toda
	if err := config.DB.Order("accredited_toda ASC").Find(&todas).Error; err != nil {
		httperr.Respond(c, httperr.Storage("Could not fetch TODAs", err))
		return
	}
	c.JSON(http.StatusOK, todas)
}

// CreateToda registers a new TODA, keyed by its accredited name.
func CreateToda(c *gin.Context) {
	var input models.Toda
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.AccreditedToda == "" {
		httperr.Respond(c, httperr.Validation("Accredited TODA name is required"))
		return
	}

	if err := config.DB.Create(&input).Error; err != nil {
		if httperr.IsDuplicate(err) {
			httperr.Respond(c, httperr.Conflict("TODA already exists, try a new one."))
			return
		}
		httperr.Respond(c, httperr.Storage("Failed to insert TODA.", err))
		return
	}

	c.JSON(http.StatusCreated, input)
}

// UpdateToda modifies a TODA record addressed by its accredited name.
func UpdateToda(c *gin.Context) {
	name := c.Param("id")

	var toda models.Toda
	if err := config.DB.Where("accredited_toda = ?", name).First(&toda).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.NotFound("TODA not found"))
		} else {
			httperr.Respond(c, httperr.Storage("Could not fetch TODA", err))
		}
		return
	}

	var input struct {
		President  *string `json:"president"`
		Area       *string `json:"area"`
		ContactNum *string `json:"contact_num"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.President != nil {
		toda.President = *input.President
	}
	if input.Area != nil {
		toda.Area = *input.Area
	}
	if input.ContactNum != nil {
		toda.ContactNum = *input.ContactNum
	}

	if err := config.DB.Save(&toda).Error; err != nil {
		httperr.Respond(c, httperr.Storage("Failed to update TODA", err))
		return
	}

	c.JSON(http.StatusOK, toda)
}

// DeleteToda removes a TODA by its accredited name.
func DeleteToda(c *gin.Context) {
	name := c.Param("id")

	if err := config.DB.Delete(&models.Toda{}, "accredited_toda = ?", name).Error; err != nil {
		httperr.Respond(c, httperr.Storage("Failed to delete TODA", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

package controllers

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tricypay/internal/config"
	"tricypay/internal/httperr"
	"tricypay/internal/models"
)

// Franchise numbers are exactly four digits, "0001" through "9999".
var franchiseIDPattern = regexp.MustCompile(`^\d{4}$`)

const franchiseIDError = "Franchise No. must be exactly 4 digits (0001–9999)."

// ListFranchises returns all franchises ordered by ID.
func ListFranchises(c *gin.Context) {
	var franchises []models.Franchise
	if err := config.DB.Order("franchise_id ASC").Find(&franchises).Error; err != nil {
		httperr.Respond(c, httperr.Storage("Could not fetch franchises", err))
		return
	}
	c.JSON(http.StatusOK, franchises)
}

// CreateFranchise validates the 4-digit ID and checks for an existing record
// before inserting. The pre-check is best effort; the primary-key constraint
// is the backstop against a concurrent insert of the same ID.
func CreateFranchise(c *gin.Context) {
	var input models.Franchise
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !franchiseIDPattern.MatchString(input.FranchiseID) {
		httperr.Respond(c, httperr.Validation(franchiseIDError))
		return
	}

	var existing models.Franchise
	err := config.DB.Where("franchise_id = ?", input.FranchiseID).First(&existing).Error
	if err == nil {
		httperr.Respond(c, httperr.Conflict("Franchise already exists, try a new one."))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Respond(c, httperr.Storage("Could not check for existing franchise", err))
		return
	}

	if err := config.DB.Create(&input).Error; err != nil {
		if httperr.IsDuplicate(err) {
			httperr.Respond(c, httperr.Conflict("Franchise already exists, try a new one."))
			return
		}
		httperr.Respond(c, httperr.Storage("Failed to insert franchise.", err))
		return
	}

	c.JSON(http.StatusCreated, input)
}

// UpdateFranchise modifies a franchise; an attempt to change the ID itself
// must satisfy the 4-digit format.
func UpdateFranchise(c *gin.Context) {
	franchiseID := c.Param("franchise_id")

	var franchise models.Franchise
	if err := config.DB.Where("franchise_id = ?", franchiseID).First(&franchise).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.NotFound("Franchise not found"))
		} else {
			httperr.Respond(c, httperr.Storage("Could not fetch franchise", err))
		}
		return
	}

	var input struct {
		FranchiseID *string `json:"franchise_id"`
		OperatorID  *uint   `json:"operator_id"`
		Toda        *string `json:"toda"`
		DateIssued  *string `json:"date_issued"`
		DateExpired *string `json:"date_expired"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.FranchiseID != nil && !franchiseIDPattern.MatchString(*input.FranchiseID) {
		httperr.Respond(c, httperr.Validation(franchiseIDError))
		return
	}

	// Updates by map so a changed franchise_id rewrites the key column too,
	// which Save on a loaded struct cannot do.
	updates := map[string]interface{}{}
	if input.FranchiseID != nil {
		updates["franchise_id"] = *input.FranchiseID
	}
	if input.OperatorID != nil {
		updates["operator_id"] = *input.OperatorID
	}
	if input.Toda != nil {
		updates["toda"] = *input.Toda
	}
	if input.DateIssued != nil {
		updates["date_issued"] = *input.DateIssued
	}
	if input.DateExpired != nil {
		updates["date_expired"] = *input.DateExpired
	}

	if len(updates) > 0 {
		err := config.DB.Model(&models.Franchise{}).
			Where("franchise_id = ?", franchiseID).
			Updates(updates).Error
		if err != nil {
			if httperr.IsDuplicate(err) {
				httperr.Respond(c, httperr.Conflict("Franchise already exists, try a new one."))
				return
			}
			httperr.Respond(c, httperr.Storage("Failed to update franchise", err))
			return
		}
	}

	finalID := franchiseID
	if input.FranchiseID != nil {
		finalID = *input.FranchiseID
	}
	if err := config.DB.Where("franchise_id = ?", finalID).First(&franchise).Error; err != nil {
		httperr.Respond(c, httperr.Storage("Could not reload franchise", err))
		return
	}

	c.JSON(http.StatusOK, franchise)
}

// DeleteFranchise removes a franchise by ID.
func DeleteFranchise(c *gin.Context) {
	franchiseID := c.Param("franchise_id")

	if err := config.DB.Delete(&models.Franchise{}, "franchise_id = ?", franchiseID).Error; err != nil {
		httperr.Respond(c, httperr.Storage("Failed to delete franchise", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

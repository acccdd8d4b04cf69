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

// ListOperators returns all operators ordered by ID.
func ListOperators(c *gin.Context) {
	var operators []models.Operator
	if err := config.DB.Order("operator_id ASC").Find(&operators).Error; err != nil {
		httperr.Respond(c, httperr.Storage("Could not fetch operators", err))
		return
	}
	c.JSON(http.StatusOK, operators)
}

// CreateOperator registers a new operator. The operator ID is assigned by
// the database; the unique name constraint is translated to a domain error.
func CreateOperator(c *gin.Context) {
	var input struct {
		OperatorName string `json:"operator_name" binding:"required"`
		Address      string `json:"address"`
		ContactNum   string `json:"contact_num"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	operator := models.Operator{
		OperatorName: input.OperatorName,
		Address:      input.Address,
		ContactNum:   input.ContactNum,
	}
	if err := config.DB.Create(&operator).Error; err != nil {
		if httperr.IsDuplicate(err) {
			httperr.Respond(c, httperr.Conflict("Operator already exists, try a new one."))
			return
		}
		httperr.Respond(c, httperr.Storage("Failed to insert operator.", err))
		return
	}

	c.JSON(http.StatusCreated, operator)
}

// UpdateOperator modifies an existing operator.
func UpdateOperator(c *gin.Context) {
	operatorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.Respond(c, httperr.Validation("Invalid operator ID format"))
		return
	}

	var operator models.Operator
	if err := config.DB.Where("operator_id = ?", uint(operatorID)).First(&operator).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.NotFound("Operator not found"))
		} else {
			httperr.Respond(c, httperr.Storage("Could not fetch operator", err))
		}
		return
	}

	var input struct {
		OperatorName *string `json:"operator_name"`
		Address      *string `json:"address"`
		ContactNum   *string `json:"contact_num"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.OperatorName != nil {
		operator.OperatorName = *input.OperatorName
	}
	if input.Address != nil {
		operator.Address = *input.Address
	}
	if input.ContactNum != nil {
		operator.ContactNum = *input.ContactNum
	}

	if err := config.DB.Save(&operator).Error; err != nil {
		if httperr.IsDuplicate(err) {
			httperr.Respond(c, httperr.Conflict("Operator already exists, try a new one."))
			return
		}
		httperr.Respond(c, httperr.Storage("Failed to update operator", err))
		return
	}

	c.JSON(http.StatusOK, operator)
}

// DeleteOperator removes an operator by ID.
func DeleteOperator(c *gin.Context) {
	operatorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.Respond(c, httperr.Validation("Invalid operator ID format"))
		return
	}

	if err := config.DB.Delete(&models.Operator{}, "operator_id = ?", uint(operatorID)).Error; err != nil {
		httperr.Respond(c, httperr.Storage("Failed to delete operator", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

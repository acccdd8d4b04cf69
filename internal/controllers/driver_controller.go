package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"tricypay/internal/auth"
	"tricypay/internal/config"
	"tricypay/internal/httperr"
	"tricypay/internal/models"
)

// createDriverInput carries everything a new driver record accepts. The
// password arrives in plaintext here and is hashed before the insert.
type createDriverInput struct {
	FirstName          string  `json:"first_name"`
	MiddleName         string  `json:"middle_name"`
	LastName           string  `json:"last_name"`
	Suffix             *string `json:"suffix"`
	DriverNameClean    string  `json:"driver_name_clean"`
	Address            string  `json:"address"`
	ContactNum         string  `json:"contact_num"`
	LicenseNum         string  `json:"license_num"`
	LicenseExpiration  string  `json:"license_expiration"`
	LicenseRestriction string  `json:"license_restriction"`
	FranchiseID        string  `json:"franchise_id"`
	OperatorID         uint    `json:"operator_id"`
	Toda               string  `json:"toda"`
	Password           string  `json:"password"`
}

// updateDriverInput uses pointer fields so absent keys leave columns alone.
// AllowPasswordChange is a control flag only; it has no model column and is
// consumed by resolveCredential, never persisted.
type updateDriverInput struct {
	FirstName          *string `json:"first_name"`
	MiddleName         *string `json:"middle_name"`
	LastName           *string `json:"last_name"`
	Suffix             *string `json:"suffix"`
	DriverNameClean    *string `json:"driver_name_clean"`
	Address            *string `json:"address"`
	ContactNum         *string `json:"contact_num"`
	LicenseNum         *string `json:"license_num"`
	LicenseExpiration  *string `json:"license_expiration"`
	LicenseRestriction *string `json:"license_restriction"`
	FranchiseID        *string `json:"franchise_id"`
	OperatorID         *uint   `json:"operator_id"`
	Toda               *string `json:"toda"`

	Password            *string `json:"password"`
	AllowPasswordChange bool    `json:"allowPasswordChange"`
}

// driverResponse is the strict output projection for drivers. The password
// column already carries json:"-", but building the body from an allow-list
// means a future model field cannot leak by omission.
func driverResponse(d models.Driver) gin.H {
	return gin.H{
		"driver_id":           d.DriverID,
		"first_name":          d.FirstName,
		"middle_name":         d.MiddleName,
		"last_name":           d.LastName,
		"suffix":              d.Suffix,
		"driver_name_clean":   d.DriverNameClean,
		"address":             d.Address,
		"contact_num":         d.ContactNum,
		"license_num":         d.LicenseNum,
		"license_expiration":  d.LicenseExpiration,
		"license_restriction": d.LicenseRestriction,
		"franchise_id":        d.FranchiseID,
		"operator_id":         d.OperatorID,
		"toda":                d.Toda,
	}
}

// ListDrivers returns all drivers ordered by ID, passwords excluded.
func ListDrivers(c *gin.Context) {
	var drivers []models.Driver
	if err := config.DB.Order("driver_id ASC").Find(&drivers).Error; err != nil {
		httperr.Respond(c, httperr.Storage("Could not fetch drivers", err))
		return
	}

	out := make([]gin.H, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, driverResponse(d))
	}
	c.JSON(http.StatusOK, out)
}

// CreateDriver registers a new driver. A password is mandatory, and a soft
// duplicate-person check on (first name, last name, suffix) blocks obvious
// re-registrations; it is a heuristic, not a unique constraint.
func CreateDriver(c *gin.Context) {
	var input createDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(input.Password) == "" {
		httperr.Respond(c, httperr.Validation("Password is required"))
		return
	}

	dup, err := driverExists(input.FirstName, input.LastName, input.Suffix)
	if err != nil {
		httperr.Respond(c, httperr.Storage("Could not check for existing driver", err))
		return
	}
	if dup {
		httperr.Respond(c, httperr.Validation("Driver already exists."))
		return
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		httperr.Respond(c, httperr.Storage("Could not hash password", err))
		return
	}

	driver := models.Driver{
		FirstName:          input.FirstName,
		MiddleName:         input.MiddleName,
		LastName:           input.LastName,
		Suffix:             input.Suffix,
		DriverNameClean:    input.DriverNameClean,
		Address:            input.Address,
		ContactNum:         input.ContactNum,
		LicenseNum:         input.LicenseNum,
		LicenseExpiration:  input.LicenseExpiration,
		LicenseRestriction: input.LicenseRestriction,
		FranchiseID:        input.FranchiseID,
		OperatorID:         input.OperatorID,
		Toda:               input.Toda,
		Password:           hashed,
	}

	if err := config.DB.Create(&driver).Error; err != nil {
		if httperr.IsDuplicate(err) {
			httperr.Respond(c, httperr.Conflict("Driver already exists."))
			return
		}
		httperr.Respond(c, httperr.Storage("Failed to insert driver.", err))
		return
	}

	c.JSON(http.StatusCreated, driverResponse(driver))
}

// UpdateDriver modifies a driver record. The credential follows the gating
// rules: a stored password is only overwritten when allowPasswordChange is
// explicitly true; otherwise the submitted password is silently dropped and
// the rest of the update proceeds.
func UpdateDriver(c *gin.Context) {
	driverID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.Respond(c, httperr.Validation("Invalid driver ID format"))
		return
	}

	var driver models.Driver
	if err := config.DB.Where("driver_id = ?", uint(driverID)).First(&driver).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.NotFound("Driver not found."))
		} else {
			httperr.Respond(c, httperr.Storage("Could not fetch driver", err))
		}
		return
	}

	var input updateDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newHash, overwrite, err := resolveCredential(driver.Password, input.Password, input.AllowPasswordChange)
	if err != nil {
		httperr.Respond(c, httperr.Storage("Could not hash password", err))
		return
	}
	if overwrite {
		driver.Password = newHash
	}

	applyDriverUpdates(&driver, input)

	if err := config.DB.Save(&driver).Error; err != nil {
		httperr.Respond(c, httperr.Storage("Failed to update driver", err))
		return
	}

	c.JSON(http.StatusOK, driverResponse(driver))
}

// DeleteDriver removes a driver by ID.
func DeleteDriver(c *gin.Context) {
	driverID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.Respond(c, httperr.Validation("Invalid driver ID format"))
		return
	}

	if err := config.DB.Delete(&models.Driver{}, "driver_id = ?", uint(driverID)).Error; err != nil {
		httperr.Respond(c, httperr.Storage("Failed to delete driver", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// driverExists runs the duplicate-person heuristic. A driver with no suffix
// only matches another record whose suffix is also absent.
func driverExists(first, last string, suffix *string) (bool, error) {
	q := config.DB.Model(&models.Driver{}).
		Where("first_name = ? AND last_name = ?", first, last)
	if suffix == nil {
		q = q.Where("suffix IS NULL")
	} else {
		q = q.Where("suffix = ?", *suffix)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// resolveCredential decides what happens to the stored hash for one update:
//  1. no password submitted            -> keep the credential untouched
//  2. no credential stored yet         -> hash and store
//  3. credential exists, flag not true -> drop the password silently
//  4. credential exists, flag true     -> hash and overwrite
func resolveCredential(current string, requested *string, allow bool) (string, bool, error) {
	if requested == nil || strings.TrimSpace(*requested) == "" {
		return "", false, nil
	}
	if current != "" && !allow {
		logrus.Debug("password change requested without allowPasswordChange, ignoring")
		return "", false, nil
	}
	hash, err := auth.HashPassword(*requested)
	if err != nil {
		return "", false, err
	}
	return hash, true, nil
}

func applyDriverUpdates(driver *models.Driver, input updateDriverInput) {
	if input.FirstName != nil {
		driver.FirstName = *input.FirstName
	}
	if input.MiddleName != nil {
		driver.MiddleName = *input.MiddleName
	}
	if input.LastName != nil {
		driver.LastName = *input.LastName
	}
	if input.Suffix != nil {
		driver.Suffix = input.Suffix
	}
	if input.DriverNameClean != nil {
		driver.DriverNameClean = *input.DriverNameClean
	}
	if input.Address != nil {
		driver.Address = *input.Address
	}
	if input.ContactNum != nil {
		driver.ContactNum = *input.ContactNum
	}
	if input.LicenseNum != nil {
		driver.LicenseNum = *input.LicenseNum
	}
	if input.LicenseExpiration != nil {
		driver.LicenseExpiration = *input.LicenseExpiration
	}
	if input.LicenseRestriction != nil {
		driver.LicenseRestriction = *input.LicenseRestriction
	}
	if input.FranchiseID != nil {
		driver.FranchiseID = *input.FranchiseID
	}
	if input.OperatorID != nil {
		driver.OperatorID = *input.OperatorID
	}
	if input.Toda != nil {
		driver.Toda = *input.Toda
	}
}

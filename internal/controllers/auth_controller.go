package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"tricypay/internal/auth"
	"tricypay/internal/config"
	"tricypay/internal/httperr"
	"tricypay/internal/middleware"
	"tricypay/internal/models"
)

type loginInput struct {
	DriverID uint   `json:"driver_id"`
	Password string `json:"password"`
}

// LoginDriver verifies driver credentials and issues a session token,
// delivered both as an http-only cookie and in the response body. Unknown
// driver and wrong password collapse to the same 401 so callers cannot
// enumerate driver IDs.
func LoginDriver(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil || input.DriverID == 0 || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Driver ID and password required"})
		return
	}

	var driver models.Driver
	if err := config.DB.Where("driver_id = ?", input.DriverID).First(&driver).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		} else {
			httperr.Respond(c, httperr.Storage("Login failed", err))
		}
		return
	}

	if !auth.CheckPassword(input.Password, driver.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(driver.DriverID)
	if err != nil {
		httperr.Respond(c, httperr.Storage("Could not generate token", err))
		return
	}

	setSessionCookie(c, token, 3600)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}

// LogoutDriver clears the session cookie. Tokens are stateless, so one that
// already leaked stays valid until its expiry.
func LogoutDriver(c *gin.Context) {
	setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// DriverQR renders a PNG QR code of the caller's public profile fields.
func DriverQR(c *gin.Context) {
	driverID := c.MustGet(middleware.ContextDriverID).(uint)

	var driver models.Driver
	if err := config.DB.Where("driver_id = ?", driverID).First(&driver).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.NotFound("Driver not found"))
		} else {
			httperr.Respond(c, httperr.Storage("Could not load driver", err))
		}
		return
	}

	payload, err := json.Marshal(gin.H{
		"driver_id":         driver.DriverID,
		"driver_name_clean": driver.DriverNameClean,
		"franchise_id":      driver.FranchiseID,
		"operator_id":       driver.OperatorID,
		"toda":              driver.Toda,
	})
	if err != nil {
		httperr.Respond(c, httperr.Storage("Failed to generate QR", err))
		return
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		httperr.Respond(c, httperr.Storage("Failed to generate QR", err))
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// Protected is a minimal gated endpoint echoing the resolved identity.
func Protected(c *gin.Context) {
	driverID := c.MustGet(middleware.ContextDriverID).(uint)
	c.JSON(http.StatusOK, gin.H{
		"message": "Authenticated as driver " + strconv.FormatUint(uint64(driverID), 10),
	})
}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	secure := config.C != nil && config.C.Env == "production"
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", secure, true)
}

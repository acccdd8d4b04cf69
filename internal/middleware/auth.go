package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "token"

// ContextDriverID is the gin context key holding the authenticated driver.
const ContextDriverID = "driver_id"

// tokenTTL keeps sessions short-lived; there is no server-side revocation,
// so a leaked token stays valid until this expires.
const tokenTTL = time.Hour

var secret []byte

// InitAuth sets the process-wide signing secret. Called once at startup;
// rotating the secret invalidates every outstanding token.
func InitAuth(s string) {
	secret = []byte(s)
}

// Token verification failures, mapped to 401 by RequireAuth.
var (
	ErrTokenMissing   = errors.New("no token supplied")
	ErrTokenMalformed = errors.New("token malformed or badly signed")
	ErrTokenExpired   = errors.New("token expired")
)

// GenerateToken signs a session token for the given driver.
func GenerateToken(driverID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"driver_id": driverID,
		"iat":       now.Unix(),
		"exp":       now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken verifies a session token and returns the driver it binds.
func ParseToken(tokenStr string) (uint, error) {
	if tokenStr == "" {
		return 0, ErrTokenMissing
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrTokenMalformed
	}
	id, ok := claims["driver_id"].(float64)
	if !ok {
		return 0, ErrTokenMalformed
	}
	return uint(id), nil
}

// RequireAuth gates a route behind a valid session token. The cookie is the
// primary transport; a bearer header serves clients that took the token from
// the login response body instead. On success the resolved driver_id is
// stored in the context for downstream handlers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		driverID, err := ParseToken(extractToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": authErrorMessage(err)})
			return
		}

		c.Set(ContextDriverID, driverID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrTokenMissing):
		return "Authentication required"
	case errors.Is(err, ErrTokenExpired):
		return "Token expired"
	default:
		return "Invalid token"
	}
}

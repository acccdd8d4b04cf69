// Package httperr maps the service's error taxonomy onto HTTP responses:
// validation 400, auth 401, not found 404, conflict 409, storage 500.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Kind int

const (
	KindValidation Kind = iota
	KindAuth
	KindNotFound
	KindConflict
	KindStorage
)

// Error carries a client-safe message plus the underlying cause for logging.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Message: msg} }

// Storage wraps an unexpected backend failure. The cause is logged by
// Respond, never returned to the client.
func Storage(msg string, err error) *Error {
	return &Error{Kind: KindStorage, Message: msg, Err: err}
}

// Respond writes err as a JSON error body and aborts the request.
func Respond(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = Storage("Unexpected server error", err)
	}
	if e.Kind == KindStorage && e.Err != nil {
		logrus.WithError(e.Err).Error(e.Message)
	}
	c.AbortWithStatusJSON(e.Status(), gin.H{"error": e.Message})
}

// IsDuplicate reports whether err is a unique-constraint violation. GORM's
// translated error covers the configured driver; the pq code path keeps
// deployments on the lib/pq driver covered too.
func IsDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

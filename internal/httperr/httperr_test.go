package httperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation("bad").Status())
	assert.Equal(t, http.StatusNotFound, NotFound("gone").Status())
	assert.Equal(t, http.StatusConflict, Conflict("dup").Status())
	assert.Equal(t, http.StatusUnauthorized, (&Error{Kind: KindAuth}).Status())
	assert.Equal(t, http.StatusInternalServerError, Storage("boom", errors.New("x")).Status())
}

func TestRespond_StorageHidesCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, Storage("Failed to save report to database.", errors.New("pq: relation missing")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to save report to database."}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "relation missing")
}

func TestRespond_WrapsUnknownErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, errors.New("raw driver error"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "raw driver error")
}

func TestIsDuplicate(t *testing.T) {
	assert.True(t, IsDuplicate(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicate(&pq.Error{Code: "23505"}))
	assert.False(t, IsDuplicate(&pq.Error{Code: "23503"}))
	assert.False(t, IsDuplicate(errors.New("other")))
	assert.False(t, IsDuplicate(nil))
}

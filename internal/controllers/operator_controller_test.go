package controllers_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOperator_DuplicateTranslated(t *testing.T) {
	r := setupTest(t)

	first := doJSON(t, r, http.MethodPost, "/operators/", map[string]interface{}{
		"operator_name": "R. Magbanua", "address": "Zone 4",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	// No pre-check here: the unique constraint is the backstop and its
	// violation must come back as a domain message, not a driver error.
	dup := doJSON(t, r, http.MethodPost, "/operators/", map[string]interface{}{
		"operator_name": "R. Magbanua",
	})
	assert.Equal(t, http.StatusConflict, dup.Code)
	assert.JSONEq(t, `{"error":"Operator already exists, try a new one."}`, dup.Body.String())
}

func TestCreateOperator_RequiresName(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/operators/", map[string]interface{}{"address": "Zone 4"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOperatorUpdateAndList(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/operators/", map[string]interface{}{
		"operator_name": "R. Magbanua",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	id := int(created["operator_id"].(float64))
	require.NotZero(t, id)

	w = doJSON(t, r, http.MethodPut, "/operators/"+strconv.Itoa(id), map[string]interface{}{
		"contact_num": "0917-555-0001",
	})
	require.Equal(t, http.StatusOK, w.Code)

	list := doJSON(t, r, http.MethodGet, "/operators/", nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "0917-555-0001")
}

func TestUpdateOperator_NotFound(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPut, "/operators/123", map[string]interface{}{"address": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateToda_DuplicateName(t *testing.T) {
	r := setupTest(t)

	first := doJSON(t, r, http.MethodPost, "/todas/", map[string]interface{}{
		"accredited_toda": "Poblacion TODA", "president": "A. Ramos",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	dup := doJSON(t, r, http.MethodPost, "/todas/", map[string]interface{}{
		"accredited_toda": "Poblacion TODA",
	})
	assert.Equal(t, http.StatusConflict, dup.Code)
	assert.JSONEq(t, `{"error":"TODA already exists, try a new one."}`, dup.Body.String())
}

func TestCreateToda_RequiresName(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/todas/", map[string]interface{}{"president": "A. Ramos"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTodaUpdateByName(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/todas/", map[string]interface{}{
		"accredited_toda": "Poblacion TODA",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/todas/Poblacion%20TODA", map[string]interface{}{
		"president": "B. Flores",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "B. Flores")

	w = doJSON(t, r, http.MethodPut, "/todas/Ghost%20TODA", map[string]interface{}{"area": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

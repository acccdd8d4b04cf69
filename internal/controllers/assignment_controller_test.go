package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tricypay/internal/config"
	"tricypay/internal/models"
)

func TestCreateAssignment(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/assignments/", map[string]interface{}{
		"driver_id": 5, "franchise_id": "0042", "vehicle_plate": "TRI-1234",
		"toda": "Poblacion TODA", "date_assigned": "2026-08-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.NotZero(t, body["assignment_id"])

	// driver_id is mandatory
	w = doJSON(t, r, http.MethodPost, "/assignments/", map[string]interface{}{
		"franchise_id": "0042",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssignmentUpdateAndDelete(t *testing.T) {
	r := setupTest(t)

	assignment := models.Assignment{DriverID: 5, FranchiseID: "0042"}
	require.NoError(t, config.DB.Create(&assignment).Error)
	path := fmt.Sprintf("/assignments/%d", assignment.AssignmentID)

	w := doJSON(t, r, http.MethodPut, path, map[string]interface{}{
		"vehicle_plate": "TRI-9999",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Assignment
	require.NoError(t, config.DB.First(&stored, "assignment_id = ?", assignment.AssignmentID).Error)
	assert.Equal(t, "TRI-9999", stored.VehiclePlate)
	assert.Equal(t, "0042", stored.FranchiseID, "untouched fields stay")

	w = doJSON(t, r, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, config.DB.Model(&models.Assignment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAssignmentsListedInOrder(t *testing.T) {
	r := setupTest(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, config.DB.Create(&models.Assignment{DriverID: uint(i + 1)}).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/assignments/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out []models.Assignment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 3)
	assert.True(t, out[0].AssignmentID < out[1].AssignmentID)
	assert.True(t, out[1].AssignmentID < out[2].AssignmentID)
}

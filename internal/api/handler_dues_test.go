package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateDueValidation(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, "PUT", "/api/dues", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Due ID is required"}`, w.Body.String())

	// An id with nothing to change is rejected before touching the row.
	w = doJSON(t, router, "PUT", "/api/dues", gin.H{"dueId": "7f9c24e8-3b12-4d71-90ab-1c2d3e4f5a6b"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"No fields to update"}`, w.Body.String())

	w = doJSON(t, router, "PUT", "/api/dues", gin.H{
		"dueId": "7f9c24e8-3b12-4d71-90ab-1c2d3e4f5a6b",
		"paid":  true,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Due record not found"}`, w.Body.String())
}

func TestCreateDueValidation(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, "POST", "/api/dues", gin.H{"dueDate": "2025-02-01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Customer ID and due date are required"}`, w.Body.String())

	w = doJSON(t, router, "POST", "/api/dues", gin.H{
		"customerId": "7f9c24e8-3b12-4d71-90ab-1c2d3e4f5a6b",
		"dueDate":    "02/01/2025",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Well-formed request for a customer that does not exist.
	w = doJSON(t, router, "POST", "/api/dues", gin.H{
		"customerId": "7f9c24e8-3b12-4d71-90ab-1c2d3e4f5a6b",
		"dueDate":    "2025-02-01",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerValidation(t *testing.T) {
	router := setupTestRouter(t)

	// Customer creation needs a hostel id before anything else.
	w := doJSON(t, router, "POST", "/api/customers", gin.H{"name": "Asha"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Hostel ID is required"}`, w.Body.String())

	// Create a hostel so the id check passes, then omit required fields.
	w = doJSON(t, router, "POST", "/api/hostels", gin.H{"name": "Validation House"})
	require.Equal(t, http.StatusOK, w.Code)
	var created struct {
		Hostel struct {
			ID string `json:"id"`
		} `json:"hostel"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, "POST", "/api/customers", gin.H{
		"hostelId": created.Hostel.ID,
		"name":     "Asha",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Name and check-in date are required"}`, w.Body.String())

	w = doJSON(t, router, "POST", "/api/customers", gin.H{
		"hostelId":    created.Hostel.ID,
		"name":        "Asha",
		"checkinDate": "10-01-2025",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "PUT", "/api/customers/7f9c24e8-3b12-4d71-90ab-1c2d3e4f5a6b", gin.H{
		"name":        "Ghost",
		"checkinDate": "2025-01-10",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Customer not found"}`, w.Body.String())
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthWithoutDatabaseConfigured(t *testing.T) {
	handler := NewHealthHandler(nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	handler.Handle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response HealthResponse
	json.NewDecoder(w.Body).Decode(&response)
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "not configured", response.Dependencies["database"])
}

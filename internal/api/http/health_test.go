package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthRequest(t *testing.T, handler *HealthHandler, path string) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler.RegisterRoutes(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	return rr, response
}

func TestHealthCheck_NoDatabase(t *testing.T) {
	rr, response := healthRequest(t, NewHealthHandler("test-service", "1.0.0", nil), "/health")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "test-service", response.Service)
	assert.Equal(t, "1.0.0", response.Version)
	assert.Equal(t, "disabled", response.DB)
}

func TestHealthCheck_Database(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer mockDB.Close()
	handler := NewHealthHandler("test-service", "1.0.0", sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectPing()
	rr, response := healthRequest(t, handler, "/healthz")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "up", response.DB)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	rr, response = healthRequest(t, handler, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "degraded", response.Status)
	assert.Equal(t, "down", response.DB)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheckMethodNotAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	NewHealthHandler("test-service", "1.0.0", nil).RegisterRoutes(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

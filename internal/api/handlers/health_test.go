package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"sos-escalation-backend/internal/api/handlers"
	"sos-escalation-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

func setupHealthRouter(t *testing.T, deps map[string]handlers.Pinger) *testutils.HTTPTestSuite {
	h := testutils.SetupHTTPTest()
	handler := handlers.NewHealthHandler(testutils.NewSQLiteDB(t), deps)
	h.Router.GET("/health", handler.Health)
	h.Router.GET("/health/ready", handler.Ready)
	h.Router.GET("/health/live", handler.Live)
	return h
}

func TestHealth(t *testing.T) {
	h := setupHealthRouter(t, nil)

	var response handlers.HealthResponse
	testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &response)
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "healthy", response.Services["database"])
}

func TestHealthDatabaseClosed(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	_ = sqlDB.Close()

	h := testutils.SetupHTTPTest()
	h.Router.GET("/health", handlers.NewHealthHandler(db, nil).Health)

	var response handlers.HealthResponse
	testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, &response)
	assert.Equal(t, "unhealthy", response.Status)
}

func TestReady(t *testing.T) {
	h := setupHealthRouter(t, map[string]handlers.Pinger{"redis": stubPinger{}})

	var response map[string]interface{}
	testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusOK, &response)
	assert.Equal(t, true, response["ready"])
	assert.Equal(t, map[string]interface{}{"database": "ready", "redis": "ready"}, response["services"])
}

func TestReadyDependencyDown(t *testing.T) {
	h := setupHealthRouter(t, map[string]handlers.Pinger{"redis": stubPinger{err: errors.New("connection refused")}})

	var response map[string]interface{}
	testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusServiceUnavailable, &response)
	assert.Equal(t, false, response["ready"])
	services := response["services"].(map[string]interface{})
	assert.Equal(t, "ready", services["database"])
	assert.Contains(t, services["redis"], "connection refused")
}

func TestLive(t *testing.T) {
	h := setupHealthRouter(t, nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK, &response)
	assert.Equal(t, true, response["alive"])
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-lab/portfolio-backend/internal/metrics"
)

func serveHealth(t *testing.T, h *HealthHandler, method string) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true
	h.RegisterRoutes(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(method, "/health", nil))

	var response HealthResponse
	if rr.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	}
	return rr, response
}

func TestHealthCheck(t *testing.T) {
	metrics.Reset()
	metrics.RecordCall("translate_content", 20*time.Millisecond, nil)
	metrics.RecordCall("translate_content", 40*time.Millisecond, errors.New("boom"))

	rr, response := serveHealth(t, NewHealthHandler("test-service", "1.0.0", nil, nil), http.MethodGet)
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "test-service", response.Service)
	assert.Equal(t, "1.0.0", response.Version)
	assert.Equal(t, "disabled", response.Redis)
	assert.Equal(t, "disabled", response.Firestore)
	require.Len(t, response.Model, 1)
	assert.Equal(t, int64(2), response.Model[0].Calls)
	assert.InDelta(t, 30.0, response.Model[0].AverageLatencyMs, 0.01)
	assert.InDelta(t, 50.0, response.Model[0].ErrorRate, 0.01)
}

func TestHealthCheck_Redis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()

	_, response := serveHealth(t, NewHealthHandler("svc", "1", client, nil), http.MethodGet)
	assert.Equal(t, "up", response.Redis)

	mr.Close()
	_, response = serveHealth(t, NewHealthHandler("svc", "1", client, nil), http.MethodGet)
	assert.Equal(t, "down", response.Redis)
	assert.Equal(t, "healthy", response.Status)
}

func TestHealthCheckMethodNotAllowed(t *testing.T) {
	rr, _ := serveHealth(t, NewHealthHandler("test-service", "1.0.0", nil, nil), http.MethodPost)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

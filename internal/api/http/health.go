package http

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/folio-lab/portfolio-backend/internal/metrics"
)

type HealthResponse struct {
	Status    string               `json:"status"`
	Timestamp time.Time            `json:"timestamp"`
	Service   string               `json:"service"`
	Version   string               `json:"version"`
	Redis     string               `json:"redis"`
	Firestore string               `json:"firestore"`
	Model     []metrics.OpSnapshot `json:"model_calls"`
}

type HealthHandler struct {
	serviceName string
	version     string
	redis       *redis.Client
	firestore   *firestore.Client
}

func NewHealthHandler(serviceName, version string, redisClient *redis.Client, fs *firestore.Client) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		redis:       redisClient,
		firestore:   fs,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	redisStatus := "disabled"
	if h.redis != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.redis.Ping(pingCtx).Err(); err != nil {
			redisStatus = "down"
		} else {
			redisStatus = "up"
		}
	}

	firestoreStatus := "disabled"
	if h.firestore != nil {
		firestoreStatus = "configured"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Redis:     redisStatus,
		Firestore: firestoreStatus,
		Model:     metrics.Snapshot(),
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}

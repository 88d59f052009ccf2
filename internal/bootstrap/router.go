package bootstrap

import (
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/folio-lab/portfolio-backend/config"
	httpapi "github.com/folio-lab/portfolio-backend/internal/api/http"
	"github.com/folio-lab/portfolio-backend/internal/api/http/middleware"
	"github.com/folio-lab/portfolio-backend/internal/api/http/routes"
	"github.com/folio-lab/portfolio-backend/internal/session"
)

type RouterDeps struct {
	ServiceName string
	Config      *config.Config
	Services    *Services
	Redis       *redis.Client
	Firestore   *firestore.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.Config.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader, session.HeaderName},
		ExposeHeaders:    []string{middleware.RequestIDHeader, session.HeaderName},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Config.App.Version, dep.Redis, dep.Firestore)
	healthHandler.RegisterRoutes(r)

	routes.RegisterV1(r, routes.V1Deps{
		Content:      dep.Services.Content,
		Translator:   dep.Services.Translator,
		Themes:       dep.Services.Themes,
		Assistant:    dep.Services.Assistant,
		Contact:      dep.Services.Contact,
		Guard:        dep.Services.Guard,
		ModelLimiter: middleware.NewIPRateLimiter(dep.Config.RateLimit.PerMinute, dep.Config.RateLimit.Burst),
	})

	return r
}

package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/civichero/civichero-backend/internal/api/http"
	"github.com/civichero/civichero-backend/internal/api/http/middleware"
	"github.com/civichero/civichero-backend/internal/api/http/routes"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string

	// nil pingers are reported as disabled
	DBPinger    httpapi.Pinger
	CachePinger httpapi.Pinger

	API routes.APIDeps

	Logger *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DBPinger, dep.CachePinger)
	healthHandler.RegisterRoutes(r)

	if dep.API.Logger == nil {
		dep.API.Logger = dep.Logger
	}
	routes.RegisterAPI(r, dep.API)

	return r
}

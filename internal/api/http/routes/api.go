package routes

import (
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	httpapi "github.com/civichero/civichero-backend/internal/api/http"
	apimiddleware "github.com/civichero/civichero-backend/internal/api/http/middleware"
	authhttp "github.com/civichero/civichero-backend/internal/auth/http"
	authmiddleware "github.com/civichero/civichero-backend/internal/auth/middleware"
	"github.com/civichero/civichero-backend/internal/backend"
	depthttp "github.com/civichero/civichero-backend/internal/departments/http"
	deptrepo "github.com/civichero/civichero-backend/internal/departments/repository"
	deptservice "github.com/civichero/civichero-backend/internal/departments/service"
	lochttp "github.com/civichero/civichero-backend/internal/locations/http"
	locrepo "github.com/civichero/civichero-backend/internal/locations/repository"
	locservice "github.com/civichero/civichero-backend/internal/locations/service"
)

type APIDeps struct {
	DB       *sql.DB
	Redis    *redis.Client
	CacheTTL time.Duration

	WebConfig backend.WebConfig
	Verifier  authmiddleware.TokenVerifier
	Live      locservice.LivePublisher

	AuthRequiredForWrites bool
	RateLimitPerMinute    int

	Logger *zap.Logger
}

// RegisterAPI mounts everything under /api. Redis and Live are optional.
func RegisterAPI(r *gin.Engine, dep APIDeps) {
	api := r.Group("/api")

	api.GET("/", httpapi.Welcome)
	api.GET("/hello/", httpapi.Hello)

	requireAuth := authmiddleware.FirebaseAuthMiddleware(dep.Verifier, dep.Logger)
	write := []gin.HandlerFunc{apimiddleware.RateLimitMiddleware(dep.RateLimitPerMinute, dep.Logger)}
	if dep.AuthRequiredForWrites {
		write = append(write, requireAuth)
	} else {
		write = append(write, authmiddleware.OptionalFirebaseAuthMiddleware(dep.Verifier, dep.Logger))
	}

	authhttp.New(dep.WebConfig).Register(api, requireAuth)

	var departments deptrepo.Repository = deptrepo.NewDepartmentRepository(dep.DB)
	if dep.Redis != nil {
		departments = deptrepo.NewCachedRepository(departments, dep.Redis, dep.CacheTTL, dep.Logger)
	}
	depthttp.New(deptservice.NewDepartmentService(departments, dep.Logger)).Register(api, write...)

	locations := locrepo.NewLocationRepository(dep.DB)
	lochttp.New(locservice.NewLocationService(locations, dep.Live, dep.Logger)).Register(api, write...)
}

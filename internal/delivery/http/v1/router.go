package v1

import (
	"net/http"
	"time"

	"go-careers-backend/config"
	"go-careers-backend/internal/delivery/http/middleware"
	"go-careers-backend/internal/delivery/http/response"
	"go-careers-backend/internal/domain"
	"go-careers-backend/pkg/auth"
	"go-careers-backend/pkg/blob"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	Tokens        *auth.TokenService
	BlobStore     blob.Store // nil when not configured
	Validate      *validator.Validate
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	// Authorization choke point: classifies every path and verifies tokens
	r.Use(middleware.Gate(deps.Tokens))

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public careers surface
	careers := api.Group("/careers")

	// Admin auth, throttled per client IP
	adminAuth := api.Group("/admins/auth")
	adminAuth.Use(middleware.LoginRateLimit(
		deps.Config.RateLimitLoginThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))
	NewAuthHandler(adminAuth, deps.AuthUC, deps.Validate)

	// Protected admin API; the gate has already authenticated these paths
	protected := api.Group("/admins/protected")

	NewJobHandler(careers, protected, deps.JobUC, deps.Validate)
	NewApplicationHandler(careers, protected, deps.ApplicationUC, deps.Validate)
	NewUploadHandler(api.Group("/uploads"), deps.BlobStore, deps.Config.UploadsDir)

	return r
}

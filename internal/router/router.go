package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resumely/internal/handler"
	"resumely/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	resumeH *handler.ResumeHandler,
	healthH *handler.HealthHandler,
	logger *zap.Logger,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	resumes := v1.Group("/resumes")
	resumes.POST("", resumeH.Upload)
	resumes.GET("", resumeH.List)
	resumes.GET("/export", resumeH.Export)
	resumes.GET("/:id", resumeH.GetByID)
	resumes.GET("/:id/profile", resumeH.GetProfile)
	resumes.DELETE("/:id", resumeH.Delete)

	return r
}

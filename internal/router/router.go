package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tglogin/internal/handler"
	"tglogin/internal/middleware"
	"tglogin/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	log *zap.Logger,
	allowedOrigins []string,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(handler.MethodNotAllowed)
	r.NoRoute(handler.NotFound)

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/telegram", authH.TelegramLogin)
	auth.GET("/me", middleware.AuthMiddleware(authSvc), authH.Me)

	return r
}

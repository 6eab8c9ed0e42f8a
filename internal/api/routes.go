package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ajharbinger/line-survival-mock/internal/logger"
	"github.com/ajharbinger/line-survival-mock/internal/middleware"
	"github.com/ajharbinger/line-survival-mock/internal/services"
	"github.com/ajharbinger/line-survival-mock/pkg/config"
)

// NewRouter builds the gin engine with the middleware chain and routes
func NewRouter(cfg *config.Config, svc *services.Services, log logger.Logger) *gin.Engine {
	r := gin.New()
	// /predict/ is a different path, not a redirect
	r.RedirectTrailingSlash = false

	r.Use(middleware.LoggingMiddleware(log))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.BodyLimitMiddleware(cfg.MaxRequestSize))
	r.Use(gin.Recovery())

	SetupRoutes(r, svc, log)
	return r
}

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, svc *services.Services, log logger.Logger) {
	predictHandler := NewPredictHandler(svc.Prediction, log)

	r.POST("/predict", predictHandler.Predict)

	r.NoRoute(NotFound)
}

// NotFound answers unknown routes and methods with an empty 404
func NotFound(c *gin.Context) {
	c.AbortWithStatus(http.StatusNotFound)
}

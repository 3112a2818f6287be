package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"strategy-backend/internal/shared/config"
	"strategy-backend/internal/shared/metrics"
	"strategy-backend/internal/shared/server/middleware"
	"strategy-backend/internal/shared/server/respond"
)

// RouteRegistrar attaches feature routes to an API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	StrategyHandler RouteRegistrar
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.StrategyHandler != nil {
		deps.StrategyHandler.RegisterRoutes(api)
	}

	return r
}

// Addr renders the listen address for the configured port.
func Addr(port string) string {
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

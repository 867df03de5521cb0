package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/McFranco99/ToolHR/internal/companies"
	"github.com/McFranco99/ToolHR/internal/plans"
	"github.com/McFranco99/ToolHR/internal/seed"
	"github.com/McFranco99/ToolHR/internal/services/health"
	"github.com/McFranco99/ToolHR/internal/shared/config"
	"github.com/McFranco99/ToolHR/internal/shared/server/middleware"
	"github.com/McFranco99/ToolHR/internal/shared/server/respond"
	"github.com/McFranco99/ToolHR/internal/users"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config           config.Config
	HealthService    *health.Service
	PlansHandler     *plans.Handler
	CompaniesHandler *companies.Handler
	UsersHandler     *users.Handler
	SeedHandler      *seed.Handler
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
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: "WRITE",
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodGet {
					return "READ"
				}
				return "WRITE"
			},
			Rules: map[string]middleware.RateLimitRule{
				"READ":  {Rate: 50, Burst: 100},
				"WRITE": {Rate: 10, Burst: 20},
			},
		}),
	)

	// Routes live at the root, matching what the status pill and the
	// dashboard call.
	root := r.Group("")
	root.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.HealthService.Status())
	})
	deps.SeedHandler.RegisterRoutes(root)
	deps.PlansHandler.RegisterRoutes(root)
	deps.CompaniesHandler.RegisterRoutes(root)
	deps.UsersHandler.RegisterRoutes(root)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

package server

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobmatch-backend/internal/analysis"
	googleauth "jobmatch-backend/internal/auth"
	"jobmatch-backend/internal/jobs"
	"jobmatch-backend/internal/resumes"
	"jobmatch-backend/internal/shared/config"
	"jobmatch-backend/internal/shared/metrics"
	"jobmatch-backend/internal/shared/server/middleware"
	"jobmatch-backend/internal/shared/server/respond"
	"jobmatch-backend/internal/users"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	DB              *sql.DB
	JobsHandler     *jobs.Handler
	ResumesHandler  *resumes.Handler
	UsersHandler    *users.Handler
	AnalysisHandler *analysis.Handler
	GoogleAuth      *googleauth.GoogleService
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
		middleware.Auth(),
	)

	api := r.Group("/api/v1")
	api.GET("/health", healthHandler(deps.DB))
	api.GET("/metrics", metrics.Handler())

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	if deps.JobsHandler != nil {
		deps.JobsHandler.RegisterRoutes(api)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
	}
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}

	return r
}

func healthHandler(sqlDB *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{"ok": true, "db": "none"}
		if sqlDB != nil {
			if err := sqlDB.PingContext(c.Request.Context()); err != nil {
				status["ok"] = false
				status["db"] = "down"
				respond.JSON(c, http.StatusServiceUnavailable, status)
				return
			}
			status["db"] = "up"
		}
		respond.JSON(c, http.StatusOK, status)
	}
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

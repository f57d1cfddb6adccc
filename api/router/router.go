package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"clip-letter/api/handlers"
	"clip-letter/api/middleware"
	"clip-letter/auth"
	"clip-letter/broadcast"
	"clip-letter/config"
	"clip-letter/db"
	_ "clip-letter/docs"
	"clip-letter/ratelimit"
	"clip-letter/services"
)

// Deps carries the wired components the routes are built from.
type Deps struct {
	Query   *services.QueryService
	Ingest  *services.IngestService
	Audio   *services.AudioService
	Hub     *broadcast.Hub
	Limiter *ratelimit.Limiter
	JWT     *auth.JWTManager
	Config  config.AppConfig
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLoggingMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public read routes
	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(deps.Limiter, deps.JWT, deps.Config.RateLimit))
	{
		api.GET("/reports", handlers.ListReportsHandler(deps.Query))
		api.GET("/reports/:video_id", handlers.GetReportHandler(deps.Query))
		api.GET("/filters", handlers.ListFiltersHandler(deps.Query))
		api.GET("/report-events", handlers.ReportEventsHandler(deps.Hub))
	}

	// Producer pipeline routes, shared-secret protected and rate limited
	ingest := r.Group("/ingest")
	ingest.Use(middleware.RateLimitMiddleware(deps.Limiter, deps.JWT, deps.Config.RateLimit))
	ingest.Use(middleware.IngestAuthMiddleware(config.IngestSecret()))
	{
		ingest.POST("/report", handlers.IngestReportHandler(deps.Ingest))
		ingest.POST("/audio", handlers.UploadAudioHandler(deps.Audio))
	}

	// Stored narration files
	r.Static(deps.Config.Audio.PublicURL, deps.Config.Audio.Dir)

	return r
}

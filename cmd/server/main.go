package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/cors"

	"clip-letter/api/router"
	"clip-letter/auth"
	"clip-letter/broadcast"
	"clip-letter/config"
	"clip-letter/db"
	_ "clip-letter/docs" // swag will generate this package
	"clip-letter/internal/logger"
	"clip-letter/ratelimit"
	"clip-letter/repositories"
	"clip-letter/services"
)

// @title           Clip-Letter API
// @version         1.0
// @description     API for browsing summarized video reports
// @BasePath        /api
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MongoDB 초기화
	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	reportsRepo := repositories.NewReportRepository(db.Database())
	summariesRepo := repositories.NewReportSummaryRepository(db.Database())

	hub := broadcast.NewHub()
	limiter := ratelimit.NewLimiter()

	// JWT 는 rate limit 사용자 식별용으로만 쓰인다. 시크릿이 없으면
	// 모든 요청을 익명(IP) 카운터로만 제한한다.
	jwtMgr, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		logger.Log.Infof("JWT disabled: %v", err)
		jwtMgr = nil
	}

	deps := router.Deps{
		Query:   services.NewQueryService(reportsRepo),
		Ingest:  services.NewIngestService(reportsRepo, summariesRepo, hub),
		Audio:   services.NewAudioService(reportsRepo, cfg.Audio.Dir, cfg.Audio.PublicURL),
		Hub:     hub,
		Limiter: limiter,
		JWT:     jwtMgr,
		Config:  cfg,
	}

	r := router.New(deps)

	corsWrapper := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})

	logger.Log.Infof("starting api server on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, corsWrapper.Handler(r)); err != nil && err != http.ErrServerClosed {
		logger.Log.Errorf("api server stopped: %v", err)
		os.Exit(1)
	}
}

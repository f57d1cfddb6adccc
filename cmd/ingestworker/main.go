package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"clip-letter/broadcast"
	"clip-letter/config"
	"clip-letter/db"
	"clip-letter/dto"
	"clip-letter/eventbus"
	"clip-letter/internal/logger"
	"clip-letter/repositories"
	"clip-letter/services"
)

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

	// EventBus 초기화 및 토픽 보장
	brokers := eventbus.GetBrokers()
	if err := eventbus.EnsureTopics(brokers, eventbus.TopicReportIngest, 3); err != nil {
		logger.Log.Errorf("failed to ensure eventbus topics: %v", err)
	}

	bus, err := eventbus.NewKafkaEventBus(brokers)
	if err != nil {
		logger.Log.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	reportsRepo := repositories.NewReportRepository(db.Database())
	summariesRepo := repositories.NewReportSummaryRepository(db.Database())

	// 워커 프로세스의 허브에는 구독자가 없다. 이벤트는 프로세스 내
	// advisory 알림이므로 API 서버의 SSE 독자에게는 전달되지 않는다.
	ingestSvc := services.NewIngestService(reportsRepo, summariesRepo, broadcast.NewHub())

	groupID := eventbus.GetGroupID()

	// 재주입기 시작 (지연 토픽 -> 기본 토픽)
	go func() {
		reinjectorGroupID := groupID + "-retry-reinjector"
		if err := bus.StartRetryReinjector(ctx, reinjectorGroupID, eventbus.TopicReportIngest); err != nil && err != context.Canceled {
			logger.Log.Errorf("eventbus retry reinjector error: %v", err)
		}
	}()

	// 메인 구독 러너
	go func() {
		err := eventbus.SubscribeJSON(ctx, bus, groupID, eventbus.TopicReportIngest,
			func(ctx context.Context, payload dto.IngestReportRequest, meta eventbus.Event) error {
				_, err := ingestSvc.Ingest(ctx, payload)
				if errors.Is(err, services.ErrValidation) {
					// 포이즌 메시지: 재시도해도 달라지지 않으므로 커밋하고 넘어간다
					logger.Log.Errorf("invalid ingest payload (event %s): %v", meta.ID, err)
					return nil
				}
				return err
			})
		if err != nil && err != context.Canceled {
			logger.Log.Errorf("eventbus subscribe error: %v", err)
		}
	}()

	logger.Log.Info("starting ingest worker service with eventbus...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Log.Info("received shutdown signal, shutting down ingest worker service...")
	cancel()
	logger.Log.Info("ingest worker service stopped")
}

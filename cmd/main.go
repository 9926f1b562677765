package main

import (
	"context"
	"fmt"
	"os"

	"github.com/admaagape/studyapi/internal/clients/gemini"
	redisbus "github.com/admaagape/studyapi/internal/clients/redis"
	"github.com/admaagape/studyapi/internal/db"
	"github.com/admaagape/studyapi/internal/handlers"
	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/server"
	"github.com/admaagape/studyapi/internal/services"
	"github.com/admaagape/studyapi/internal/sse"
	"github.com/admaagape/studyapi/internal/store"
	"github.com/admaagape/studyapi/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tuning
	log.Info("Loading pipeline tuning...")
	tuning, err := services.LoadTuning(log)
	if err != nil {
		log.Fatal("Tuning invalid", "error", err)
	}

	// Postgres (primary tier)
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}

	// Content store, with the local sqlite cache when enabled and openable.
	contentStore := store.NewService(store.NewTier(postgresService.DB(), log), log)
	if utils.GetEnvAsBool("FALLBACK_ENABLED", true, log) {
		fallbackService, err := db.NewFallbackService(log)
		if err != nil {
			log.Warn("Fallback cache unavailable, running on the primary tier only", "error", err)
		} else {
			contentStore = contentStore.WithFallback(store.NewTier(fallbackService.DB(), log))
		}
	}

	// Generation client
	aiClient := gemini.NewClient(log)

	// SSE hub, bridged over redis when configured.
	log.Info("Setting up SSE hub now...")
	sseHub := sse.NewHub(log)
	var bus redisbus.EventBus
	if os.Getenv("REDIS_ADDR") != "" {
		bus, err = redisbus.NewEventBus(log)
		if err != nil {
			log.Warn("Redis event bus unavailable, events stay instance-local", "error", err)
			bus = nil
		} else {
			defer bus.Close()
			if err := bus.StartForwarder(context.Background(), sseHub.Broadcast); err != nil {
				log.Warn("Redis forwarder failed to start", "error", err)
			}
		}
	}
	events := services.NewPublisher(log, sseHub, bus)

	// Services
	log.Info("Setting up Services from main...")
	studyService := services.NewStudyService(log, contentStore, aiClient, events, tuning)
	chapterService := services.NewChapterService(log, contentStore, aiClient, events)
	verseService := services.NewVerseService(log, contentStore, aiClient, events, tuning)
	devotionalService := services.NewDevotionalService(log, contentStore, aiClient, events, tuning)
	progressService := services.NewProgressService(log, contentStore, tuning)
	reportService := services.NewReportService(log, contentStore)

	// Handlers
	log.Info("Setting up Handlers from main...")
	router := server.NewRouter(server.RouterConfig{
		Log:               log,
		StudyHandler:      handlers.NewStudyHandler(log, studyService),
		ChapterHandler:    handlers.NewChapterHandler(log, chapterService),
		VerseHandler:      handlers.NewVerseHandler(log, verseService),
		DevotionalHandler: handlers.NewDevotionalHandler(log, devotionalService),
		ProgressHandler:   handlers.NewProgressHandler(log, progressService),
		ReportHandler:     handlers.NewReportHandler(log, reportService),
		AdminHandler:      handlers.NewAdminHandler(log, aiClient),
		StreamHandler:     handlers.NewStreamHandler(log, sseHub),
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Starting server...", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}

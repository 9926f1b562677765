package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/admaagape/studyapi/internal/handlers"
	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/middleware"
	"github.com/admaagape/studyapi/internal/utils"
)

type RouterConfig struct {
	Log               *logger.Logger
	StudyHandler      *handlers.StudyHandler
	ChapterHandler    *handlers.ChapterHandler
	VerseHandler      *handlers.VerseHandler
	DevotionalHandler *handlers.DevotionalHandler
	ProgressHandler   *handlers.ProgressHandler
	ReportHandler     *handlers.ReportHandler
	AdminHandler      *handlers.AdminHandler
	StreamHandler     *handlers.StreamHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Log, "/api/stream"))

	// Cors
	origins := utils.GetEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173", cfg.Log)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(origins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Canon and chapter epigraphs
		api.GET("/canon", cfg.ChapterHandler.Canon)
		api.GET("/chapters/:book/:chapter/epigraph", cfg.ChapterHandler.Epigraph)

		// Panorama studies
		api.GET("/studies/:book/:chapter", cfg.StudyHandler.Get)
		api.POST("/studies/:book/:chapter/generate", cfg.StudyHandler.Generate)
		api.PUT("/studies/:book/:chapter/content", cfg.StudyHandler.SetContent)
		api.DELETE("/studies/:book/:chapter/pages/:page", cfg.StudyHandler.DeletePage)

		// Per-verse content
		api.POST("/verses/:book/:chapter/:verse/commentary", cfg.VerseHandler.Commentary)
		api.POST("/verses/:book/:chapter/:verse/dictionary", cfg.VerseHandler.Dictionary)

		// Devotionals
		api.GET("/devotionals/:date", cfg.DevotionalHandler.Get)
		api.POST("/devotionals/:date/regenerate", cfg.DevotionalHandler.Regenerate)

		// Reading progress
		api.GET("/progress/:email", cfg.ProgressHandler.Get)
		api.POST("/progress", cfg.ProgressHandler.MarkChapter)
		api.GET("/leaderboard", cfg.ProgressHandler.Leaderboard)

		// Content reports
		api.POST("/reports", cfg.ReportHandler.Submit)
		api.GET("/reports", cfg.ReportHandler.List)

		// Admin
		api.POST("/admin/emergency-key", cfg.AdminHandler.SetEmergencyKey)

		// SSE
		api.GET("/stream", cfg.StreamHandler.Stream)
	}

	return router
}

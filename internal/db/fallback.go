package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/utils"
)

// FallbackService is the local cache tier: a sqlite file holding the last
// known copy of each collection. Reads degrade to it when the primary tier is
// unreachable; it is never authoritative.
type FallbackService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFallbackService(log *logger.Logger) (*FallbackService, error) {
	serviceLog := log.With("service", "FallbackService")

	path := utils.GetEnv("FALLBACK_DB_PATH", "adma_fallback.db", log)

	serviceLog.Info("Opening local fallback cache...", "path", path)
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		serviceLog.Error("Failed to open fallback cache", "error", err)
		return nil, fmt.Errorf("failed to open fallback cache: %w", err)
	}

	if err := gdb.AutoMigrate(AllModels()...); err != nil {
		serviceLog.Error("Auto migration failed for fallback cache", "error", err)
		return nil, err
	}

	return &FallbackService{db: gdb, log: serviceLog}, nil
}

func (s *FallbackService) DB() *gorm.DB {
	return s.db
}

package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/admaagape/studyapi/internal/db"
	"github.com/admaagape/studyapi/internal/generr"
	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/types"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(db.AllModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func TestGetFallsBackWhenPrimaryFails(t *testing.T) {
	log := testLogger(t)
	primaryDB := testDB(t)
	svc := NewService(NewTier(primaryDB, log), log).WithFallback(NewTier(testDB(t), log))
	ctx := context.Background()

	want, err := svc.ReplaceCommentary(ctx, &types.Commentary{
		Book:           "Gênesis",
		Chapter:        1,
		Verse:          1,
		VerseKey:       "gênesis_1_1",
		CommentaryText: "No princípio de tudo está o Criador.",
	})
	if err != nil {
		t.Fatalf("ReplaceCommentary: %v", err)
	}

	// A successful primary read refreshes the fallback cache.
	if _, err := svc.GetCommentary(ctx, "gênesis_1_1"); err != nil {
		t.Fatalf("warm read: %v", err)
	}

	// Break the primary tier; reads must degrade to the fallback copy.
	if err := primaryDB.Migrator().DropTable(&types.Commentary{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}
	got, err := svc.GetCommentary(ctx, "gênesis_1_1")
	if err != nil {
		t.Fatalf("degraded read: %v", err)
	}
	if got == nil || got.ID != want.ID {
		t.Fatalf("degraded read returned %+v, want cached record", got)
	}
}

func TestGetWithoutFallbackSurfacesTransient(t *testing.T) {
	log := testLogger(t)
	primaryDB := testDB(t)
	svc := NewService(NewTier(primaryDB, log), log)

	if err := primaryDB.Migrator().DropTable(&types.Commentary{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}
	_, err := svc.GetCommentary(context.Background(), "gênesis_1_1")
	if !errors.Is(err, generr.ErrTransient) {
		t.Fatalf("err = %v, want transient", err)
	}
}

func TestReplaceIsWholesale(t *testing.T) {
	log := testLogger(t)
	svc := NewService(NewTier(testDB(t), log), log)
	ctx := context.Background()

	first, err := svc.ReplaceCommentary(ctx, &types.Commentary{
		Book: "Rute", Chapter: 1, Verse: 1, VerseKey: "rute_1_1",
		CommentaryText: "Primeira versão do comentário.",
	})
	if err != nil {
		t.Fatalf("first replace: %v", err)
	}
	second, err := svc.ReplaceCommentary(ctx, &types.Commentary{
		Book: "Rute", Chapter: 1, Verse: 1, VerseKey: "rute_1_1",
		CommentaryText: "Segunda versão do comentário.",
	})
	if err != nil {
		t.Fatalf("second replace: %v", err)
	}
	if second.ID == first.ID {
		t.Errorf("replace must create a new record")
	}

	got, err := svc.GetCommentary(ctx, "rute_1_1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(got.CommentaryText, "Segunda") {
		t.Errorf("old record survived the replace: %q", got.CommentaryText)
	}
}

func TestGetAbsentKeyIsNilNotError(t *testing.T) {
	log := testLogger(t)
	svc := NewService(NewTier(testDB(t), log), log)

	got, err := svc.GetCommentary(context.Background(), "inexistente_1_1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("absent key must be nil, got %+v", got)
	}
}

func TestValidationRejectsIncompleteRecords(t *testing.T) {
	log := testLogger(t)
	svc := NewService(NewTier(testDB(t), log), log)
	ctx := context.Background()

	if _, err := svc.ReplaceCommentary(ctx, &types.Commentary{VerseKey: "x_1_1"}); !errors.Is(err, generr.ErrValidation) {
		t.Errorf("missing text: err = %v", err)
	}
	if _, err := svc.ReplaceDevotional(ctx, &types.Devotional{Date: "2024-01-01"}); !errors.Is(err, generr.ErrValidation) {
		t.Errorf("missing body: err = %v", err)
	}
	if _, err := svc.CreateReport(ctx, &types.Report{}); !errors.Is(err, generr.ErrValidation) {
		t.Errorf("missing description: err = %v", err)
	}
}

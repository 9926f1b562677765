package services

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/admaagape/studyapi/internal/db"
	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/store"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func testTier(t *testing.T, log *logger.Logger) store.Tier {
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
	return store.NewTier(gdb, log)
}

func testStore(t *testing.T) *store.Service {
	t.Helper()
	log := testLogger(t)
	return store.NewService(testTier(t, log), log).WithFallback(testTier(t, log))
}

// fakeAI scripts the generation client. Each call appends its prompt to
// prompts so tests can assert on what was asked for.
type fakeAI struct {
	prompts []string

	textResult string
	textErr    error
	textFn     func(prompt string) (string, error)

	jsonFn  func(prompt string, out any) error
	jsonErr error
}

func (f *fakeAI) GenerateText(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.textFn != nil {
		return f.textFn(prompt)
	}
	if f.textErr != nil {
		return "", f.textErr
	}
	return f.textResult, nil
}

func (f *fakeAI) GenerateJSON(_ context.Context, prompt string, _ map[string]any, out any) error {
	f.prompts = append(f.prompts, prompt)
	if f.jsonErr != nil {
		return f.jsonErr
	}
	if f.jsonFn != nil {
		return f.jsonFn(prompt, out)
	}
	return fmt.Errorf("fakeAI: no json handler")
}

func (f *fakeAI) SetEmergencyKey(string) {}

func testPublisher(t *testing.T) *Publisher {
	t.Helper()
	return NewPublisher(testLogger(t), nil, nil)
}

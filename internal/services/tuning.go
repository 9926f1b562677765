package services

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/utils"
)

// Tuning holds the pipeline's behavioral constants. The defaults reproduce
// the observed behavior of the production app; they are configuration, not
// literals, so a product decision can change them without touching code.
type Tuning struct {
	// ContextWindowChars bounds the trailing slice of accumulated text fed
	// back as continuation context.
	ContextWindowChars int `yaml:"context_window_chars"`
	// TailQuoteChars is how much of the window's very end gets quoted
	// verbatim inside the continuation prompt.
	TailQuoteChars int `yaml:"tail_quote_chars"`
	// StudentContextChars bounds the student content injected into teacher
	// prompts.
	StudentContextChars int `yaml:"student_context_chars"`
	// MinContentChars is both the generation validity threshold and the
	// minimum page length for pagination.
	MinContentChars int `yaml:"min_content_chars"`
	// RetentionDays is the devotional availability window.
	RetentionDays int `yaml:"retention_days"`
	// LeaderboardLimit caps the reading progress ranking.
	LeaderboardLimit int `yaml:"leaderboard_limit"`
	// DevotionalThemes is the pool a random theme is drawn from when no
	// custom instruction is given.
	DevotionalThemes []string `yaml:"devotional_themes"`
}

func defaultTuning() Tuning {
	return Tuning{
		ContextWindowChars:  3000,
		TailQuoteChars:      500,
		StudentContextChars: 4000,
		MinContentChars:     50,
		RetentionDays:       365,
		LeaderboardLimit:    50,
		DevotionalThemes: []string{
			"santidade", "arrebatamento", "perseverança", "amor a Deus",
			"conversão", "arrependimento", "avivamento", "fé", "esperança", "oração",
		},
	}
}

// LoadTuning builds the tuning from defaults, an optional YAML file
// (TUNING_FILE) and env overrides, in that order.
func LoadTuning(log *logger.Logger) (Tuning, error) {
	t := defaultTuning()

	if path := utils.GetEnv("TUNING_FILE", "", log); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return t, fmt.Errorf("read tuning file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &t); err != nil {
			return t, fmt.Errorf("parse tuning file: %w", err)
		}
	}

	t.ContextWindowChars = utils.GetEnvAsInt("STUDY_CONTEXT_WINDOW", t.ContextWindowChars, log)
	t.MinContentChars = utils.GetEnvAsInt("MIN_CONTENT_CHARS", t.MinContentChars, log)
	t.RetentionDays = utils.GetEnvAsInt("DEVOTIONAL_RETENTION_DAYS", t.RetentionDays, log)
	t.LeaderboardLimit = utils.GetEnvAsInt("LEADERBOARD_LIMIT", t.LeaderboardLimit, log)

	if t.ContextWindowChars <= 0 || t.MinContentChars <= 0 || t.RetentionDays <= 0 {
		return t, fmt.Errorf("tuning values must be positive")
	}
	if len(t.DevotionalThemes) == 0 {
		t.DevotionalThemes = defaultTuning().DevotionalThemes
	}
	return t, nil
}

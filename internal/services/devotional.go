package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/admaagape/studyapi/internal/availability"
	"github.com/admaagape/studyapi/internal/clients/gemini"
	"github.com/admaagape/studyapi/internal/generr"
	"github.com/admaagape/studyapi/internal/keys"
	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/sse"
	"github.com/admaagape/studyapi/internal/store"
	"github.com/admaagape/studyapi/internal/types"
)

// DevotionalResult pairs the record with the window state the date key fell
// into. Devotional is nil for locked and expired dates.
type DevotionalResult struct {
	State      availability.State `json:"-"`
	StateLabel string             `json:"state"`
	Devotional *types.Devotional  `json:"devotional,omitempty"`
}

type DevotionalService interface {
	// Get returns the devotional for the date key. Dates out of the
	// availability window are answered without touching the store or the
	// generator; an in-window miss triggers lazy generation on a random
	// theme.
	Get(ctx context.Context, dateKey string) (*DevotionalResult, error)
	// Regenerate replaces the date's devotional using the admin's custom
	// instruction. The window still applies: locked and expired dates
	// cannot be generated for.
	Regenerate(ctx context.Context, dateKey, instruction string) (*types.Devotional, error)
}

type devotionalService struct {
	log    *logger.Logger
	store  *store.Service
	ai     gemini.Client
	events *Publisher
	tuning Tuning

	// now and pickTheme are swappable for tests.
	now       func() time.Time
	pickTheme func(themes []string) string
}

func NewDevotionalService(log *logger.Logger, st *store.Service, ai gemini.Client, events *Publisher, tuning Tuning) DevotionalService {
	return &devotionalService{
		log:    log.With("service", "DevotionalService"),
		store:  st,
		ai:     ai,
		events: events,
		tuning: tuning,
		now:    time.Now,
		pickTheme: func(themes []string) string {
			return themes[rand.IntN(len(themes))]
		},
	}
}

func (s *devotionalService) Get(ctx context.Context, dateKey string) (*DevotionalResult, error) {
	date, err := keys.ParseDate(dateKey)
	if err != nil {
		return nil, generr.Validation("invalid date key %q", dateKey)
	}

	state := availability.Evaluate(date, s.now(), s.tuning.RetentionDays)
	if state != availability.Available {
		return &DevotionalResult{State: state, StateLabel: state.String()}, nil
	}

	existing, err := s.store.GetDevotional(ctx, dateKey)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		theme := s.pickTheme(s.tuning.DevotionalThemes)
		existing, err = s.generate(ctx, dateKey, date, "TEMA CENTRAL: "+theme)
		if err != nil {
			return nil, err
		}
	}
	return &DevotionalResult{State: state, StateLabel: state.String(), Devotional: existing}, nil
}

func (s *devotionalService) Regenerate(ctx context.Context, dateKey, instruction string) (*types.Devotional, error) {
	date, err := keys.ParseDate(dateKey)
	if err != nil {
		return nil, generr.Validation("invalid date key %q", dateKey)
	}
	if strings.TrimSpace(instruction) == "" {
		return nil, generr.Validation("regeneration requires an instruction")
	}
	state := availability.Evaluate(date, s.now(), s.tuning.RetentionDays)
	if state != availability.Available {
		return nil, generr.Validation("date %s is %s", dateKey, state)
	}
	return s.generate(ctx, dateKey, date, instruction)
}

func (s *devotionalService) generate(ctx context.Context, dateKey string, date time.Time, instruction string) (*types.Devotional, error) {
	s.events.Emit(ctx, dateKey, sse.EventGenerationStarted, map[string]any{"collection": "devotional"})

	var out struct {
		Title     string `json:"title"`
		Reference string `json:"reference"`
		VerseText string `json:"verse_text"`
		Body      string `json:"body"`
		Prayer    string `json:"prayer"`
	}
	display := date.Format("02/01/2006")
	if err := s.ai.GenerateJSON(ctx, devotionalPrompt(display, instruction), devotionalSchema(), &out); err != nil {
		s.events.Emit(ctx, dateKey, sse.EventGenerationFailed, map[string]any{"collection": "devotional", "code": generr.Code(err)})
		return nil, err
	}
	if strings.TrimSpace(out.Title) == "" || len(out.Body) < s.tuning.MinContentChars {
		err := generr.Validation("devotional generation returned empty content")
		s.events.Emit(ctx, dateKey, sse.EventGenerationFailed, map[string]any{"collection": "devotional", "code": generr.Code(err)})
		return nil, err
	}

	saved, err := s.store.ReplaceDevotional(ctx, &types.Devotional{
		Date:        dateKey,
		Title:       out.Title,
		Reference:   out.Reference,
		VerseText:   out.VerseText,
		Body:        out.Body,
		Prayer:      out.Prayer,
		IsPublished: true,
	})
	if err != nil {
		s.events.Emit(ctx, dateKey, sse.EventGenerationFailed, map[string]any{"collection": "devotional", "code": generr.Code(err)})
		return nil, fmt.Errorf("persist devotional: %w", err)
	}
	s.events.Emit(ctx, dateKey, sse.EventGenerationFinished, map[string]any{"collection": "devotional"})
	return saved, nil
}

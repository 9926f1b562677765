package services

import (
	"context"
	"strings"

	"github.com/admaagape/studyapi/internal/clients/gemini"
	"github.com/admaagape/studyapi/internal/generr"
	"github.com/admaagape/studyapi/internal/keys"
	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/sse"
	"github.com/admaagape/studyapi/internal/store"
	"github.com/admaagape/studyapi/internal/types"
)

type ChapterService interface {
	// Epigraph returns the chapter's title/subtitle pair, generating it on
	// first access. A chapter's epigraph is created once and never replaced.
	Epigraph(ctx context.Context, book string, chapter int) (*types.ChapterMetadata, error)
}

type chapterService struct {
	log    *logger.Logger
	store  *store.Service
	ai     gemini.Client
	events *Publisher
}

func NewChapterService(log *logger.Logger, st *store.Service, ai gemini.Client, events *Publisher) ChapterService {
	return &chapterService{
		log:    log.With("service", "ChapterService"),
		store:  st,
		ai:     ai,
		events: events,
	}
}

func (s *chapterService) Epigraph(ctx context.Context, book string, chapter int) (*types.ChapterMetadata, error) {
	if err := validateReference(book, chapter); err != nil {
		return nil, err
	}
	chapterKey := keys.Chapter(book, chapter)

	existing, err := s.store.GetChapterMetadata(ctx, chapterKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	var out struct {
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
	}
	if err := s.ai.GenerateJSON(ctx, epigraphPrompt(book, chapter), epigraphSchema(), &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.Title) == "" {
		return nil, generr.Validation("epigraph generation returned no title")
	}

	created, err := s.store.CreateChapterMetadata(ctx, &types.ChapterMetadata{
		ChapterKey: chapterKey,
		Title:      strings.TrimSpace(out.Title),
		Subtitle:   strings.TrimSpace(out.Subtitle),
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Epigraph generated", "chapter_key", chapterKey)
	s.events.Emit(ctx, chapterKey, sse.EventContentUpdated, map[string]any{"collection": "chapter_metadata"})
	return created, nil
}

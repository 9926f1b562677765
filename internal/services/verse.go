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

type VerseService interface {
	// Commentary returns the verse's commentary, generating it when absent.
	// With regenerate true the cached record is discarded and replaced.
	Commentary(ctx context.Context, book string, chapter, verse int, verseText string, regenerate bool) (*types.Commentary, error)
	// Dictionary returns the verse's original-language analysis, generating
	// it when absent. The source language follows the testament: Hebrew for
	// the old, Greek for the new.
	Dictionary(ctx context.Context, book string, chapter, verse int, verseText string, regenerate bool) (*types.DictionaryEntry, error)
}

type verseService struct {
	log    *logger.Logger
	store  *store.Service
	ai     gemini.Client
	events *Publisher
	tuning Tuning
}

func NewVerseService(log *logger.Logger, st *store.Service, ai gemini.Client, events *Publisher, tuning Tuning) VerseService {
	return &verseService{
		log:    log.With("service", "VerseService"),
		store:  st,
		ai:     ai,
		events: events,
		tuning: tuning,
	}
}

func validateVerse(book string, chapter, verse int, verseText string) error {
	if err := validateReference(book, chapter); err != nil {
		return err
	}
	if verse < 1 {
		return generr.Validation("verse must be positive")
	}
	if strings.TrimSpace(verseText) == "" {
		return generr.Validation("verse text is required for generation")
	}
	return nil
}

func (s *verseService) Commentary(ctx context.Context, book string, chapter, verse int, verseText string, regenerate bool) (*types.Commentary, error) {
	if err := validateVerse(book, chapter, verse, verseText); err != nil {
		return nil, err
	}
	verseKey := keys.Verse(book, chapter, verse)

	if !regenerate {
		existing, err := s.store.GetCommentary(ctx, verseKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	text, err := s.ai.GenerateText(ctx, commentaryPrompt(book, chapter, verse, verseText))
	if err != nil {
		return nil, err
	}
	if err := validateGenerated(text, s.tuning.MinContentChars); err != nil {
		return nil, err
	}

	saved, err := s.store.ReplaceCommentary(ctx, &types.Commentary{
		Book:           book,
		Chapter:        chapter,
		Verse:          verse,
		VerseKey:       verseKey,
		CommentaryText: strings.TrimSpace(text),
	})
	if err != nil {
		return nil, err
	}
	s.events.Emit(ctx, verseKey, sse.EventContentUpdated, map[string]any{"collection": "commentary"})
	return saved, nil
}

func (s *verseService) Dictionary(ctx context.Context, book string, chapter, verse int, verseText string, regenerate bool) (*types.DictionaryEntry, error) {
	if err := validateVerse(book, chapter, verse, verseText); err != nil {
		return nil, err
	}
	verseKey := keys.Verse(book, chapter, verse)

	if !regenerate {
		existing, err := s.store.GetDictionary(ctx, verseKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	language := "grego"
	if keys.IsOldTestament(book) {
		language = "hebraico"
	}

	var out struct {
		HebrewGreekText string                 `json:"hebrewGreekText"`
		PhoneticText    string                 `json:"phoneticText"`
		Words           []types.DictionaryWord `json:"words"`
	}
	if err := s.ai.GenerateJSON(ctx, dictionaryPrompt(book, chapter, verse, verseText, language), dictionarySchema(), &out); err != nil {
		return nil, err
	}
	if len(out.Words) == 0 {
		return nil, generr.Validation("lexical analysis returned no words")
	}

	saved, err := s.store.ReplaceDictionary(ctx, &types.DictionaryEntry{
		VerseKey:        verseKey,
		Book:            book,
		Chapter:         chapter,
		Verse:           verse,
		OriginalText:    strings.TrimSpace(out.HebrewGreekText),
		Transliteration: strings.TrimSpace(out.PhoneticText),
		KeyWords:        out.Words,
	})
	if err != nil {
		return nil, err
	}
	s.events.Emit(ctx, verseKey, sse.EventContentUpdated, map[string]any{"collection": "dictionary"})
	return saved, nil
}

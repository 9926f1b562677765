package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/admaagape/studyapi/internal/clients/gemini"
	"github.com/admaagape/studyapi/internal/generr"
	"github.com/admaagape/studyapi/internal/keys"
	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/pagination"
	"github.com/admaagape/studyapi/internal/render"
	"github.com/admaagape/studyapi/internal/sse"
	"github.com/admaagape/studyapi/internal/store"
	"github.com/admaagape/studyapi/internal/types"
)

const (
	ModeStart    = "start"
	ModeContinue = "continue"
)

// StudyPage is one paginated slice of accumulated study content, with the
// block classification the client renders from.
type StudyPage struct {
	Raw    string         `json:"raw"`
	Blocks []render.Block `json:"blocks"`
}

// StudyView is the read model for one chapter study and one audience target.
type StudyView struct {
	StudyKey          string      `json:"study_key"`
	Book              string      `json:"book"`
	Chapter           int         `json:"chapter"`
	Title             string      `json:"title"`
	Outline           []string    `json:"outline"`
	Target            string      `json:"target"`
	Pages             []StudyPage `json:"pages"`
	LastGeneratedPart int         `json:"last_generated_part"`
	Generating        bool        `json:"generating"`
}

type StudyService interface {
	// Get returns the paginated, classified study for one chapter and
	// audience target. A chapter with no study yet yields an empty view,
	// not an error.
	Get(ctx context.Context, book string, chapter int, target string) (*StudyView, error)
	// Generate runs one step of the composition pipeline: mode "start"
	// replaces the target's content, mode "continue" appends a new part
	// written against the trailing context of what exists.
	Generate(ctx context.Context, book string, chapter int, target, mode, instruction string) (*StudyView, error)
	// SetContent overwrites the target's accumulated text with a manual
	// edit, bypassing generation entirely.
	SetContent(ctx context.Context, book string, chapter int, target, text string) (*StudyView, error)
	// DeletePage removes one page from the target's accumulated text and
	// persists the rejoined remainder.
	DeletePage(ctx context.Context, book string, chapter int, target string, pageIndex int) (*StudyView, error)
}

type studyService struct {
	log    *logger.Logger
	store  *store.Service
	ai     gemini.Client
	events *Publisher
	tuning Tuning

	mu         sync.Mutex
	generating map[string]bool
}

func NewStudyService(log *logger.Logger, st *store.Service, ai gemini.Client, events *Publisher, tuning Tuning) StudyService {
	return &studyService{
		log:        log.With("service", "StudyService"),
		store:      st,
		ai:         ai,
		events:     events,
		tuning:     tuning,
		generating: make(map[string]bool),
	}
}

func validateTarget(target string) error {
	if target != types.StudyTargetStudent && target != types.StudyTargetTeacher {
		return generr.Validation("unknown study target %q", target)
	}
	return nil
}

func validateReference(book string, chapter int) error {
	b, ok := keys.FindBook(book)
	if !ok {
		return generr.Validation("unknown book %q", book)
	}
	if chapter < 1 || chapter > b.Chapters {
		return generr.Validation("%s has no chapter %d", book, chapter)
	}
	return nil
}

func (s *studyService) Get(ctx context.Context, book string, chapter int, target string) (*StudyView, error) {
	if err := validateReference(book, chapter); err != nil {
		return nil, err
	}
	if err := validateTarget(target); err != nil {
		return nil, err
	}
	study, err := s.store.GetStudy(ctx, keys.Chapter(book, chapter))
	if err != nil {
		return nil, err
	}
	return s.view(book, chapter, target, study), nil
}

func (s *studyService) Generate(ctx context.Context, book string, chapter int, target, mode, instruction string) (*StudyView, error) {
	if err := validateReference(book, chapter); err != nil {
		return nil, err
	}
	if err := validateTarget(target); err != nil {
		return nil, err
	}
	if mode != ModeStart && mode != ModeContinue {
		return nil, generr.Validation("unknown generation mode %q", mode)
	}

	studyKey := keys.Chapter(book, chapter)
	flag := studyKey + "/" + target
	if !s.tryAcquire(flag) {
		return nil, fmt.Errorf("%w: %s", generr.ErrGenerationInProgress, flag)
	}
	defer s.release(flag)

	s.events.Emit(ctx, studyKey, sse.EventGenerationStarted, map[string]any{"target": target, "mode": mode})

	view, err := s.generateLocked(ctx, book, chapter, studyKey, target, mode, instruction)
	if err != nil {
		s.events.Emit(ctx, studyKey, sse.EventGenerationFailed, map[string]any{"target": target, "code": generr.Code(err)})
		return nil, err
	}
	s.events.Emit(ctx, studyKey, sse.EventGenerationFinished, map[string]any{"target": target, "part": view.LastGeneratedPart})
	return view, nil
}

func (s *studyService) generateLocked(ctx context.Context, book string, chapter int, studyKey, target, mode, instruction string) (*StudyView, error) {
	existing, err := s.store.GetStudy(ctx, studyKey)
	if err != nil {
		return nil, err
	}

	currentText := ""
	studentBase := ""
	if existing != nil {
		currentText = existing.ContentFor(target)
		studentBase = existing.StudentContent
	}

	// Part numbering follows the page count the member sees, not an
	// internal counter.
	currentPages := pagination.Paginate(currentText, s.tuning.MinContentChars)
	nextPart := len(currentPages) + 1

	continuation := ""
	if mode == ModeContinue && currentText != "" {
		tail := currentText
		if len(tail) > s.tuning.ContextWindowChars {
			tail = tail[len(tail)-s.tuning.ContextWindowChars:]
		}
		continuation = continuationBlock(tail, s.tuning.TailQuoteChars, nextPart)
	}

	var prompt string
	if target == types.StudyTargetTeacher {
		base := studentBase
		if len(base) > s.tuning.StudentContextChars {
			base = base[:s.tuning.StudentContextChars]
		}
		prompt = teacherStudyPrompt(book, chapter, base, instruction, continuation)
	} else {
		prompt = studentStudyPrompt(book, chapter, instruction, continuation)
	}

	result, err := s.ai.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if err := validateGenerated(result, s.tuning.MinContentChars); err != nil {
		return nil, err
	}

	// Start replaces; continue appends behind a fresh page break. The
	// separator is skipped when there is nothing to separate from.
	newTotal := result
	if mode == ModeContinue {
		separator := ""
		if currentText != "" {
			separator = pagination.Delimiter
		}
		newTotal = currentText + separator + result
	}

	var saved *types.StudyContent
	if existing == nil {
		study := &types.StudyContent{
			StudyKey:          studyKey,
			Book:              book,
			Chapter:           chapter,
			Title:             fmt.Sprintf("Estudo de %s %d", book, chapter),
			LastGeneratedPart: nextPart,
		}
		study.SetContentFor(target, newTotal)
		saved, err = s.store.CreateStudy(ctx, study)
	} else {
		existing.SetContentFor(target, newTotal)
		existing.LastGeneratedPart = nextPart
		saved, err = s.store.UpdateStudy(ctx, existing)
	}
	if err != nil {
		return nil, err
	}
	return s.view(book, chapter, target, saved), nil
}

func (s *studyService) SetContent(ctx context.Context, book string, chapter int, target, text string) (*StudyView, error) {
	if err := validateReference(book, chapter); err != nil {
		return nil, err
	}
	if err := validateTarget(target); err != nil {
		return nil, err
	}
	studyKey := keys.Chapter(book, chapter)
	existing, err := s.store.GetStudy(ctx, studyKey)
	if err != nil {
		return nil, err
	}

	var saved *types.StudyContent
	if existing == nil {
		study := &types.StudyContent{
			StudyKey: studyKey,
			Book:     book,
			Chapter:  chapter,
			Title:    fmt.Sprintf("Estudo de %s %d", book, chapter),
		}
		study.SetContentFor(target, text)
		saved, err = s.store.CreateStudy(ctx, study)
	} else {
		existing.SetContentFor(target, text)
		saved, err = s.store.UpdateStudy(ctx, existing)
	}
	if err != nil {
		return nil, err
	}
	s.events.Emit(ctx, studyKey, sse.EventContentUpdated, map[string]any{"target": target})
	return s.view(book, chapter, target, saved), nil
}

func (s *studyService) DeletePage(ctx context.Context, book string, chapter int, target string, pageIndex int) (*StudyView, error) {
	if err := validateReference(book, chapter); err != nil {
		return nil, err
	}
	if err := validateTarget(target); err != nil {
		return nil, err
	}
	studyKey := keys.Chapter(book, chapter)
	existing, err := s.store.GetStudy(ctx, studyKey)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: study %s", generr.ErrNotFound, studyKey)
	}

	remaining := pagination.DeletePage(existing.ContentFor(target), pageIndex, s.tuning.MinContentChars)
	existing.SetContentFor(target, remaining)
	saved, err := s.store.UpdateStudy(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.events.Emit(ctx, studyKey, sse.EventContentUpdated, map[string]any{"target": target})
	return s.view(book, chapter, target, saved), nil
}

func (s *studyService) view(book string, chapter int, target string, study *types.StudyContent) *StudyView {
	studyKey := keys.Chapter(book, chapter)
	v := &StudyView{
		StudyKey:   studyKey,
		Book:       book,
		Chapter:    chapter,
		Target:     target,
		Generating: s.isGenerating(studyKey + "/" + target),
	}
	if study == nil {
		return v
	}
	v.Title = study.Title
	v.Outline = study.Outline
	v.LastGeneratedPart = study.LastGeneratedPart
	for _, raw := range pagination.Paginate(study.ContentFor(target), s.tuning.MinContentChars) {
		v.Pages = append(v.Pages, StudyPage{Raw: raw, Blocks: render.ClassifyPage(raw)})
	}
	return v
}

func (s *studyService) tryAcquire(flag string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generating[flag] {
		return false
	}
	s.generating[flag] = true
	return true
}

func (s *studyService) release(flag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.generating, flag)
}

func (s *studyService) isGenerating(flag string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generating[flag]
}

// validateGenerated rejects the known failure shapes of the model: empty
// output, the literal string "undefined", or a fragment too short to be a
// real part. Nothing is written when this fails.
func validateGenerated(text string, minChars int) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == "undefined" || len(text) < minChars {
		return generr.Validation("generated content is empty or too short")
	}
	return nil
}

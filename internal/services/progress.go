package services

import (
	"context"
	"strings"

	"github.com/admaagape/studyapi/internal/generr"
	"github.com/admaagape/studyapi/internal/keys"
	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/store"
	"github.com/admaagape/studyapi/internal/types"
)

type ProgressService interface {
	// Get returns the member's reading progress, or nil when they have
	// never marked a chapter.
	Get(ctx context.Context, userEmail string) (*types.ReadingProgress, error)
	// MarkChapter toggles one chapter in the member's completed set and
	// keeps the aggregate fields consistent.
	MarkChapter(ctx context.Context, userEmail, userName, book string, chapter int, read bool) (*types.ReadingProgress, error)
	// Leaderboard ranks members by chapters completed.
	Leaderboard(ctx context.Context) ([]*types.ReadingProgress, error)
}

type progressService struct {
	log    *logger.Logger
	store  *store.Service
	tuning Tuning
}

func NewProgressService(log *logger.Logger, st *store.Service, tuning Tuning) ProgressService {
	return &progressService{
		log:    log.With("service", "ProgressService"),
		store:  st,
		tuning: tuning,
	}
}

func (s *progressService) Get(ctx context.Context, userEmail string) (*types.ReadingProgress, error) {
	if strings.TrimSpace(userEmail) == "" {
		return nil, generr.Validation("user email is required")
	}
	return s.store.GetProgress(ctx, userEmail)
}

func (s *progressService) MarkChapter(ctx context.Context, userEmail, userName, book string, chapter int, read bool) (*types.ReadingProgress, error) {
	if strings.TrimSpace(userEmail) == "" || strings.TrimSpace(userName) == "" {
		return nil, generr.Validation("user email and name are required")
	}
	if err := validateReference(book, chapter); err != nil {
		return nil, err
	}
	chapterKey := keys.Chapter(book, chapter)

	progress, err := s.store.GetProgress(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		if !read {
			return nil, nil
		}
		return s.store.CreateProgress(ctx, &types.ReadingProgress{
			UserEmail:     userEmail,
			UserName:      userName,
			ChaptersRead:  []string{chapterKey},
			TotalChapters: 1,
			LastBook:      book,
			LastChapter:   chapter,
		})
	}

	if read {
		if !progress.HasRead(chapterKey) {
			progress.ChaptersRead = append(progress.ChaptersRead, chapterKey)
		}
		progress.LastBook = book
		progress.LastChapter = chapter
	} else {
		kept := progress.ChaptersRead[:0]
		for _, k := range progress.ChaptersRead {
			if k != chapterKey {
				kept = append(kept, k)
			}
		}
		progress.ChaptersRead = kept
	}
	progress.TotalChapters = len(progress.ChaptersRead)
	progress.UserName = userName

	return s.store.UpdateProgress(ctx, progress)
}

func (s *progressService) Leaderboard(ctx context.Context) ([]*types.ReadingProgress, error) {
	return s.store.ListTopProgress(ctx, s.tuning.LeaderboardLimit)
}

// Package store is the keyed content store shared by every generated
// collection. Reads go through the primary (shared, durable) tier and degrade
// to the local fallback cache when the primary is unreachable; a stale read is
// not an error. Writes go to the primary only and are never retried — a
// failed write surfaces to the caller as a transient error.
package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/admaagape/studyapi/internal/generr"
	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/repos"
	"github.com/admaagape/studyapi/internal/types"
)

// Tier bundles the per-collection repos over one backing database.
type Tier struct {
	ChapterMetadata repos.ChapterMetadataRepo
	Commentary      repos.CommentaryRepo
	Dictionary      repos.DictionaryRepo
	StudyContent    repos.StudyContentRepo
	Devotional      repos.DevotionalRepo
	ReadingProgress repos.ReadingProgressRepo
	Report          repos.ReportRepo
}

func NewTier(db *gorm.DB, baseLog *logger.Logger) Tier {
	return Tier{
		ChapterMetadata: repos.NewChapterMetadataRepo(db, baseLog),
		Commentary:      repos.NewCommentaryRepo(db, baseLog),
		Dictionary:      repos.NewDictionaryRepo(db, baseLog),
		StudyContent:    repos.NewStudyContentRepo(db, baseLog),
		Devotional:      repos.NewDevotionalRepo(db, baseLog),
		ReadingProgress: repos.NewReadingProgressRepo(db, baseLog),
		Report:          repos.NewReportRepo(db, baseLog),
	}
}

// Service is the two-tier content store. fallback may be missing (hasFallback
// false), in which case degraded reads fail with a transient error instead.
type Service struct {
	log         *logger.Logger
	primary     Tier
	fallback    Tier
	hasFallback bool
}

func NewService(primary Tier, log *logger.Logger) *Service {
	return &Service{
		log:     log.With("service", "ContentStore"),
		primary: primary,
	}
}

// WithFallback attaches the local cache tier.
func (s *Service) WithFallback(fallback Tier) *Service {
	s.fallback = fallback
	s.hasFallback = true
	return s
}

// --- ChapterMetadata ---

func (s *Service) GetChapterMetadata(ctx context.Context, chapterKey string) (*types.ChapterMetadata, error) {
	records, err := s.primary.ChapterMetadata.GetByKey(ctx, nil, chapterKey)
	if err != nil {
		if !s.hasFallback {
			return nil, generr.Transient(err)
		}
		s.log.Warn("Primary read failed, serving fallback cache", "collection", "chapter_metadata", "key", chapterKey, "error", err)
		records, err = s.fallback.ChapterMetadata.GetByKey(ctx, nil, chapterKey)
		if err != nil {
			return nil, generr.Transient(err)
		}
		return firstOrNil(records), nil
	}
	if s.hasFallback && len(records) > 0 {
		if err := s.fallback.ChapterMetadata.ReplaceAll(ctx, nil, records); err != nil {
			s.log.Debug("Fallback cache refresh failed", "collection", "chapter_metadata", "error", err)
		}
	}
	return firstOrNil(records), nil
}

func (s *Service) CreateChapterMetadata(ctx context.Context, meta *types.ChapterMetadata) (*types.ChapterMetadata, error) {
	if meta.ChapterKey == "" || meta.Title == "" {
		return nil, generr.Validation("chapter metadata requires chapter_key and title")
	}
	created, err := s.primary.ChapterMetadata.Create(ctx, nil, meta)
	if err != nil {
		return nil, generr.Transient(err)
	}
	return created, nil
}

// --- Commentary ---

func (s *Service) GetCommentary(ctx context.Context, verseKey string) (*types.Commentary, error) {
	records, err := s.primary.Commentary.GetByKey(ctx, nil, verseKey)
	if err != nil {
		if !s.hasFallback {
			return nil, generr.Transient(err)
		}
		s.log.Warn("Primary read failed, serving fallback cache", "collection", "commentary", "key", verseKey, "error", err)
		records, err = s.fallback.Commentary.GetByKey(ctx, nil, verseKey)
		if err != nil {
			return nil, generr.Transient(err)
		}
		return firstOrNil(records), nil
	}
	if s.hasFallback && len(records) > 0 {
		if err := s.fallback.Commentary.ReplaceAll(ctx, nil, records); err != nil {
			s.log.Debug("Fallback cache refresh failed", "collection", "commentary", "error", err)
		}
	}
	return firstOrNil(records), nil
}

// ReplaceCommentary is the wholesale upsert: delete the existing record for
// the key, then create the new one. Not atomic — concurrent regeneration of
// the same verse can race, last writer wins.
func (s *Service) ReplaceCommentary(ctx context.Context, commentary *types.Commentary) (*types.Commentary, error) {
	if commentary.VerseKey == "" || commentary.CommentaryText == "" {
		return nil, generr.Validation("commentary requires verse_key and commentary_text")
	}
	existing, err := s.primary.Commentary.GetByKey(ctx, nil, commentary.VerseKey)
	if err != nil {
		return nil, generr.Transient(err)
	}
	for _, old := range existing {
		if err := s.primary.Commentary.DeleteByID(ctx, nil, old.ID); err != nil {
			return nil, generr.Transient(err)
		}
	}
	created, err := s.primary.Commentary.Create(ctx, nil, commentary)
	if err != nil {
		return nil, generr.Transient(err)
	}
	return created, nil
}

// --- Dictionary ---

func (s *Service) GetDictionary(ctx context.Context, verseKey string) (*types.DictionaryEntry, error) {
	records, err := s.primary.Dictionary.GetByKey(ctx, nil, verseKey)
	if err != nil {
		if !s.hasFallback {
			return nil, generr.Transient(err)
		}
		s.log.Warn("Primary read failed, serving fallback cache", "collection", "dictionary", "key", verseKey, "error", err)
		records, err = s.fallback.Dictionary.GetByKey(ctx, nil, verseKey)
		if err != nil {
			return nil, generr.Transient(err)
		}
		return firstOrNil(records), nil
	}
	if s.hasFallback && len(records) > 0 {
		if err := s.fallback.Dictionary.ReplaceAll(ctx, nil, records); err != nil {
			s.log.Debug("Fallback cache refresh failed", "collection", "dictionary", "error", err)
		}
	}
	return firstOrNil(records), nil
}

func (s *Service) ReplaceDictionary(ctx context.Context, entry *types.DictionaryEntry) (*types.DictionaryEntry, error) {
	if entry.VerseKey == "" || len(entry.KeyWords) == 0 {
		return nil, generr.Validation("dictionary entry requires verse_key and key_words")
	}
	existing, err := s.primary.Dictionary.GetByKey(ctx, nil, entry.VerseKey)
	if err != nil {
		return nil, generr.Transient(err)
	}
	for _, old := range existing {
		if err := s.primary.Dictionary.DeleteByID(ctx, nil, old.ID); err != nil {
			return nil, generr.Transient(err)
		}
	}
	created, err := s.primary.Dictionary.Create(ctx, nil, entry)
	if err != nil {
		return nil, generr.Transient(err)
	}
	return created, nil
}

// --- StudyContent ---

func (s *Service) GetStudy(ctx context.Context, studyKey string) (*types.StudyContent, error) {
	records, err := s.primary.StudyContent.GetByKey(ctx, nil, studyKey)
	if err != nil {
		if !s.hasFallback {
			return nil, generr.Transient(err)
		}
		s.log.Warn("Primary read failed, serving fallback cache", "collection", "study_content", "key", studyKey, "error", err)
		records, err = s.fallback.StudyContent.GetByKey(ctx, nil, studyKey)
		if err != nil {
			return nil, generr.Transient(err)
		}
		return firstOrNil(records), nil
	}
	if s.hasFallback && len(records) > 0 {
		if err := s.fallback.StudyContent.ReplaceAll(ctx, nil, records); err != nil {
			s.log.Debug("Fallback cache refresh failed", "collection", "study_content", "error", err)
		}
	}
	return firstOrNil(records), nil
}

func (s *Service) CreateStudy(ctx context.Context, study *types.StudyContent) (*types.StudyContent, error) {
	if study.StudyKey == "" || study.Title == "" {
		return nil, generr.Validation("study content requires study_key and title")
	}
	created, err := s.primary.StudyContent.Create(ctx, nil, study)
	if err != nil {
		return nil, generr.Transient(err)
	}
	return created, nil
}

// UpdateStudy merge-writes the accumulated fields. The caller supplies the
// full field values (read-modify-write); the record itself is never replaced.
func (s *Service) UpdateStudy(ctx context.Context, study *types.StudyContent) (*types.StudyContent, error) {
	updated, err := s.primary.StudyContent.Update(ctx, nil, study)
	if err != nil {
		return nil, generr.Transient(err)
	}
	return updated, nil
}

// --- Devotional ---

func (s *Service) GetDevotional(ctx context.Context, dateKey string) (*types.Devotional, error) {
	records, err := s.primary.Devotional.GetByDate(ctx, nil, dateKey)
	if err != nil {
		if !s.hasFallback {
			return nil, generr.Transient(err)
		}
		s.log.Warn("Primary read failed, serving fallback cache", "collection", "devotional", "key", dateKey, "error", err)
		records, err = s.fallback.Devotional.GetByDate(ctx, nil, dateKey)
		if err != nil {
			return nil, generr.Transient(err)
		}
		return firstOrNil(records), nil
	}
	if s.hasFallback && len(records) > 0 {
		if err := s.fallback.Devotional.ReplaceAll(ctx, nil, records); err != nil {
			s.log.Debug("Fallback cache refresh failed", "collection", "devotional", "error", err)
		}
	}
	return firstOrNil(records), nil
}

func (s *Service) ReplaceDevotional(ctx context.Context, devotional *types.Devotional) (*types.Devotional, error) {
	if devotional.Date == "" || devotional.Title == "" || devotional.Body == "" {
		return nil, generr.Validation("devotional requires date, title and body")
	}
	existing, err := s.primary.Devotional.GetByDate(ctx, nil, devotional.Date)
	if err != nil {
		return nil, generr.Transient(err)
	}
	for _, old := range existing {
		if err := s.primary.Devotional.DeleteByID(ctx, nil, old.ID); err != nil {
			return nil, generr.Transient(err)
		}
	}
	created, err := s.primary.Devotional.Create(ctx, nil, devotional)
	if err != nil {
		return nil, generr.Transient(err)
	}
	return created, nil
}

// --- ReadingProgress ---

func (s *Service) GetProgress(ctx context.Context, userEmail string) (*types.ReadingProgress, error) {
	records, err := s.primary.ReadingProgress.GetByEmail(ctx, nil, userEmail)
	if err != nil {
		if !s.hasFallback {
			return nil, generr.Transient(err)
		}
		s.log.Warn("Primary read failed, serving fallback cache", "collection", "reading_progress", "user_email", userEmail, "error", err)
		records, err = s.fallback.ReadingProgress.GetByEmail(ctx, nil, userEmail)
		if err != nil {
			return nil, generr.Transient(err)
		}
		return firstOrNil(records), nil
	}
	return firstOrNil(records), nil
}

func (s *Service) CreateProgress(ctx context.Context, progress *types.ReadingProgress) (*types.ReadingProgress, error) {
	if progress.UserEmail == "" || progress.UserName == "" {
		return nil, generr.Validation("reading progress requires user_email and user_name")
	}
	created, err := s.primary.ReadingProgress.Create(ctx, nil, progress)
	if err != nil {
		return nil, generr.Transient(err)
	}
	return created, nil
}

func (s *Service) UpdateProgress(ctx context.Context, progress *types.ReadingProgress) (*types.ReadingProgress, error) {
	updated, err := s.primary.ReadingProgress.Update(ctx, nil, progress)
	if err != nil {
		return nil, generr.Transient(err)
	}
	return updated, nil
}

func (s *Service) ListTopProgress(ctx context.Context, limit int) ([]*types.ReadingProgress, error) {
	records, err := s.primary.ReadingProgress.ListTop(ctx, nil, limit)
	if err != nil {
		return nil, generr.Transient(err)
	}
	return records, nil
}

// --- Report ---

func (s *Service) CreateReport(ctx context.Context, report *types.Report) (*types.Report, error) {
	if report.Description == "" {
		return nil, generr.Validation("report requires a description")
	}
	if report.Status == "" {
		report.Status = "pending"
	}
	created, err := s.primary.Report.Create(ctx, nil, report)
	if err != nil {
		return nil, generr.Transient(err)
	}
	return created, nil
}

func (s *Service) ListReports(ctx context.Context, status string) ([]*types.Report, error) {
	records, err := s.primary.Report.ListByStatus(ctx, nil, status)
	if err != nil {
		return nil, generr.Transient(err)
	}
	return records, nil
}

func firstOrNil[T any](records []*T) *T {
	if len(records) == 0 {
		return nil
	}
	return records[0]
}

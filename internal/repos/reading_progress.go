package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/types"
)

type ReadingProgressRepo interface {
	GetByEmail(ctx context.Context, tx *gorm.DB, userEmail string) ([]*types.ReadingProgress, error)
	Create(ctx context.Context, tx *gorm.DB, progress *types.ReadingProgress) (*types.ReadingProgress, error)
	Update(ctx context.Context, tx *gorm.DB, progress *types.ReadingProgress) (*types.ReadingProgress, error)
	// ListTop returns records ordered by total_chapters descending, limited.
	ListTop(ctx context.Context, tx *gorm.DB, limit int) ([]*types.ReadingProgress, error)
}

type readingProgressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReadingProgressRepo(db *gorm.DB, baseLog *logger.Logger) ReadingProgressRepo {
	return &readingProgressRepo{db: db, log: baseLog.With("repo", "ReadingProgressRepo")}
}

func (r *readingProgressRepo) GetByEmail(ctx context.Context, tx *gorm.DB, userEmail string) ([]*types.ReadingProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ReadingProgress
	if err := transaction.WithContext(ctx).
		Where("user_email = ?", userEmail).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *readingProgressRepo) Create(ctx context.Context, tx *gorm.DB, progress *types.ReadingProgress) (*types.ReadingProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

func (r *readingProgressRepo) Update(ctx context.Context, tx *gorm.DB, progress *types.ReadingProgress) (*types.ReadingProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).
		Model(&types.ReadingProgress{}).
		Where("id = ?", progress.ID).
		Updates(map[string]any{
			"chapters_read":  progress.ChaptersRead,
			"total_chapters": progress.TotalChapters,
			"last_book":      progress.LastBook,
			"last_chapter":   progress.LastChapter,
		}).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

func (r *readingProgressRepo) ListTop(ctx context.Context, tx *gorm.DB, limit int) ([]*types.ReadingProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ReadingProgress
	q := transaction.WithContext(ctx).Order("total_chapters DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/types"
)

type ChapterMetadataRepo interface {
	GetByKey(ctx context.Context, tx *gorm.DB, chapterKey string) ([]*types.ChapterMetadata, error)
	Create(ctx context.Context, tx *gorm.DB, meta *types.ChapterMetadata) (*types.ChapterMetadata, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	ReplaceAll(ctx context.Context, tx *gorm.DB, records []*types.ChapterMetadata) error
}

type chapterMetadataRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChapterMetadataRepo(db *gorm.DB, baseLog *logger.Logger) ChapterMetadataRepo {
	return &chapterMetadataRepo{db: db, log: baseLog.With("repo", "ChapterMetadataRepo")}
}

func (r *chapterMetadataRepo) GetByKey(ctx context.Context, tx *gorm.DB, chapterKey string) ([]*types.ChapterMetadata, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ChapterMetadata
	if err := transaction.WithContext(ctx).
		Where("chapter_key = ?", chapterKey).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *chapterMetadataRepo) Create(ctx context.Context, tx *gorm.DB, meta *types.ChapterMetadata) (*types.ChapterMetadata, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(meta).Error; err != nil {
		return nil, err
	}
	return meta, nil
}

func (r *chapterMetadataRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.ChapterMetadata{}).Error
}

// ReplaceAll refreshes the local cache copy of one key's records: existing
// rows for the key are dropped and the given rows written in their place.
func (r *chapterMetadataRepo) ReplaceAll(ctx context.Context, tx *gorm.DB, records []*types.ChapterMetadata) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(records) == 0 {
		return nil
	}
	if err := transaction.WithContext(ctx).
		Where("chapter_key = ?", records[0].ChapterKey).
		Delete(&types.ChapterMetadata{}).Error; err != nil {
		return err
	}
	return transaction.WithContext(ctx).Create(&records).Error
}

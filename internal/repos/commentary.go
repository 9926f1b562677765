package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/types"
)

type CommentaryRepo interface {
	GetByKey(ctx context.Context, tx *gorm.DB, verseKey string) ([]*types.Commentary, error)
	Create(ctx context.Context, tx *gorm.DB, commentary *types.Commentary) (*types.Commentary, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	ReplaceAll(ctx context.Context, tx *gorm.DB, records []*types.Commentary) error
}

type commentaryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCommentaryRepo(db *gorm.DB, baseLog *logger.Logger) CommentaryRepo {
	return &commentaryRepo{db: db, log: baseLog.With("repo", "CommentaryRepo")}
}

func (r *commentaryRepo) GetByKey(ctx context.Context, tx *gorm.DB, verseKey string) ([]*types.Commentary, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Commentary
	if err := transaction.WithContext(ctx).
		Where("verse_key = ?", verseKey).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *commentaryRepo) Create(ctx context.Context, tx *gorm.DB, commentary *types.Commentary) (*types.Commentary, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(commentary).Error; err != nil {
		return nil, err
	}
	return commentary, nil
}

func (r *commentaryRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Commentary{}).Error
}

func (r *commentaryRepo) ReplaceAll(ctx context.Context, tx *gorm.DB, records []*types.Commentary) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(records) == 0 {
		return nil
	}
	if err := transaction.WithContext(ctx).
		Where("verse_key = ?", records[0].VerseKey).
		Delete(&types.Commentary{}).Error; err != nil {
		return err
	}
	return transaction.WithContext(ctx).Create(&records).Error
}

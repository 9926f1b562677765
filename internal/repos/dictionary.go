package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/types"
)

type DictionaryRepo interface {
	GetByKey(ctx context.Context, tx *gorm.DB, verseKey string) ([]*types.DictionaryEntry, error)
	Create(ctx context.Context, tx *gorm.DB, entry *types.DictionaryEntry) (*types.DictionaryEntry, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	ReplaceAll(ctx context.Context, tx *gorm.DB, records []*types.DictionaryEntry) error
}

type dictionaryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDictionaryRepo(db *gorm.DB, baseLog *logger.Logger) DictionaryRepo {
	return &dictionaryRepo{db: db, log: baseLog.With("repo", "DictionaryRepo")}
}

func (r *dictionaryRepo) GetByKey(ctx context.Context, tx *gorm.DB, verseKey string) ([]*types.DictionaryEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.DictionaryEntry
	if err := transaction.WithContext(ctx).
		Where("verse_key = ?", verseKey).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *dictionaryRepo) Create(ctx context.Context, tx *gorm.DB, entry *types.DictionaryEntry) (*types.DictionaryEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *dictionaryRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.DictionaryEntry{}).Error
}

func (r *dictionaryRepo) ReplaceAll(ctx context.Context, tx *gorm.DB, records []*types.DictionaryEntry) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(records) == 0 {
		return nil
	}
	if err := transaction.WithContext(ctx).
		Where("verse_key = ?", records[0].VerseKey).
		Delete(&types.DictionaryEntry{}).Error; err != nil {
		return err
	}
	return transaction.WithContext(ctx).Create(&records).Error
}

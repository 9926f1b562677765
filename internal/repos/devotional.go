package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/types"
)

type DevotionalRepo interface {
	GetByDate(ctx context.Context, tx *gorm.DB, dateKey string) ([]*types.Devotional, error)
	Create(ctx context.Context, tx *gorm.DB, devotional *types.Devotional) (*types.Devotional, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	ReplaceAll(ctx context.Context, tx *gorm.DB, records []*types.Devotional) error
}

type devotionalRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDevotionalRepo(db *gorm.DB, baseLog *logger.Logger) DevotionalRepo {
	return &devotionalRepo{db: db, log: baseLog.With("repo", "DevotionalRepo")}
}

func (r *devotionalRepo) GetByDate(ctx context.Context, tx *gorm.DB, dateKey string) ([]*types.Devotional, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Devotional
	if err := transaction.WithContext(ctx).
		Where("date = ?", dateKey).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *devotionalRepo) Create(ctx context.Context, tx *gorm.DB, devotional *types.Devotional) (*types.Devotional, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(devotional).Error; err != nil {
		return nil, err
	}
	return devotional, nil
}

func (r *devotionalRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Devotional{}).Error
}

func (r *devotionalRepo) ReplaceAll(ctx context.Context, tx *gorm.DB, records []*types.Devotional) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(records) == 0 {
		return nil
	}
	if err := transaction.WithContext(ctx).
		Where("date = ?", records[0].Date).
		Delete(&types.Devotional{}).Error; err != nil {
		return err
	}
	return transaction.WithContext(ctx).Create(&records).Error
}
